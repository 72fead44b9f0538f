package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_Shells(t *testing.T) {
	for _, shell := range supportedShells() {
		t.Run(shell, func(t *testing.T) {
			isolateCLI(t)

			out, _, err := runCLI(t, Deps{}, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "signet")
		})
	}
}

func TestCompletion_DetectsShell(t *testing.T) {
	isolateCLI(t)
	t.Setenv("SHELL", "/usr/local/bin/fish")

	out, _, err := runCLI(t, Deps{}, "completion")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -c signet")
}

func TestCompletion_Errors(t *testing.T) {
	t.Run("unsupported shell", func(t *testing.T) {
		isolateCLI(t)

		_, _, err := runCLI(t, Deps{}, "completion", "tcsh")
		require.ErrorIs(t, err, errUnsupportedShell)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("no shell detected", func(t *testing.T) {
		isolateCLI(t)
		t.Setenv("SHELL", "/bin/csh")

		_, _, err := runCLI(t, Deps{}, "completion")
		require.ErrorIs(t, err, errNoShellDetected)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestSupportedShells(t *testing.T) {
	assert.Equal(t, []string{"bash", "fish", "powershell", "zsh"}, supportedShells())
}
