package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/textstat/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
)

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
	err error
}

func (f *failingConfigStore) Set(_ string, _ any) error {
	return f.err
}

// mockSettingsService returns fixed settings or an error.
type mockSettingsService struct {
	settings domain.AppSettings
	getErr   error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }
func (m *mockSettingsService) Set(_, _ string) error            { return nil }
func (m *mockSettingsService) Keys() []string                   { return nil }
func (m *mockSettingsService) Path() string                     { return "" }

// mockRegistry records the documents it normalises.
type mockRegistry struct {
	doc   *domain.Document
	err   error
	calls []*domain.RawDocument
}

func (m *mockRegistry) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	m.calls = append(m.calls, raw)
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

func (m *mockRegistry) Register(_ driven.Normaliser) {}

func (m *mockRegistry) SupportedMIMETypes() []string { return []string{"text/plain"} }

// suffixStemmer strips a few English suffixes; enough to group
// fox/foxes and jumps/jumping.
type suffixStemmer struct{}

func (suffixStemmer) Stem(word string) string {
	for _, suffix := range []string{"ing", "es", "s"} {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			return strings.TrimSuffix(word, suffix)
		}
	}
	return word
}
