package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	useServices(t, nil)

	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	stdout, _, err := executeCommand(t, "", "version")

	assert.NoError(t, err)
	assert.Equal(t, "textstat version test-version-1.0.0\n", stdout)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	useServices(t, nil)

	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	stdout, _, err := executeCommand(t, "", "version")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "textstat version dev")
}
