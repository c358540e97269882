package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui"
)

// stubTUI replaces the program runner for the duration of the test and
// returns a pointer to the app it was given.
func stubTUI(t *testing.T, err error) **tui.App {
	t.Helper()

	var got *tui.App
	original := runTUIApp
	runTUIApp = func(app *tui.App) error {
		got = app
		return err
	}
	t.Cleanup(func() { runTUIApp = original })
	return &got
}

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Runs(t *testing.T) {
	useServices(t, newTestServices())
	app := stubTUI(t, nil)

	_, _, err := executeCommand(t, "", "tui")
	require.NoError(t, err)

	require.NotNil(t, *app)
	assert.Empty(t, (*app).Text())
}

func TestTUICmd_LoadsFile(t *testing.T) {
	useServices(t, newTestServices())
	app := stubTUI(t, nil)
	path := writeTempFile(t, "draft.txt", "Hello there.\r\nSecond line.")

	_, _, err := executeCommand(t, "", "--file", path, "tui")
	require.NoError(t, err)

	require.NotNil(t, *app)
	assert.Equal(t, "Hello there.\nSecond line.", (*app).Text())
}

func TestTUICmd_MissingFile(t *testing.T) {
	useServices(t, newTestServices())
	app := stubTUI(t, nil)

	_, _, err := executeCommand(t, "", "--file", "/nonexistent/draft.txt", "tui")
	assert.Error(t, err)
	assert.Nil(t, *app)
}

func TestTUICmd_RunError(t *testing.T) {
	useServices(t, newTestServices())
	stubTUI(t, errors.New("no tty"))

	_, _, err := executeCommand(t, "", "tui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI error")
}

func TestTUICmd_RejectsArguments(t *testing.T) {
	useServices(t, newTestServices())
	stubTUI(t, nil)

	_, _, err := executeCommand(t, "", "tui", "extra")
	assert.Error(t, err)
}
