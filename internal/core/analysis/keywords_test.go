package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{
			name:  "three letter words never qualify",
			input: "the cat sat on the mat",
			n:     1,
			want:  []string{},
		},
		{
			name:  "frequency dominates",
			input: "Programming in Go: programming is fun, golang programming.",
			n:     5,
			want:  []string{"programming", "golang"},
		},
		{
			name:  "length breaks frequency ties",
			input: "tiny enormous",
			n:     5,
			want:  []string{"enormous", "tiny"},
		},
		{
			name:  "equal scores sort alphabetically",
			input: "gamma alpha delta",
			n:     5,
			want:  []string{"alpha", "delta", "gamma"},
		},
		{
			name:  "ties sort alphabetically after score",
			input: "zeta beta alpha gamma delta",
			n:     5,
			want:  []string{"alpha", "delta", "gamma", "beta", "zeta"},
		},
		{
			name:  "truncated to n",
			input: "alpha alpha alpha bravo bravo charlie",
			n:     2,
			want:  []string{"alpha", "bravo"},
		},
		{
			name:  "stop words are not filtered",
			input: "would would could",
			n:     5,
			want:  []string{"would", "could"},
		},
		{
			name:  "zero requested",
			input: "something meaningful",
			n:     0,
			want:  []string{},
		},
		{
			name:  "empty",
			input: "",
			n:     5,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractKeywords(tt.input, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractKeywords_ScoreCombinesLengthAndFrequency(t *testing.T) {
	// "word" scores 3 * 1.4 = 4.2, "lengthier" scores 2 * 1.9 = 3.8.
	got, err := ExtractKeywords("word word word lengthier lengthier", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"word", "lengthier"}, got)
}

func TestExtractKeywords_NegativeCount(t *testing.T) {
	got, err := ExtractKeywords("some text", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Nil(t, got)
}
