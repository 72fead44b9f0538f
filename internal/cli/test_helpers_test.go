package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 8032 test vector 1 in the base64 form the CLI exchanges, its
// signature over the empty message, and a few known digests.
const (
	rfcPrivateKeyB64 = "nWGxne/9WmC6hEr0kuwsxERJxWl7MmkZcDusAxyuf2DXWpgBgrEKt9VL/tPJZAc6DuFy89qmIyWvAhpo9wdRGg=="
	rfcPublicKeyB64  = "11qYAYKxCrfVS/7TyWQHOg7hcvPapiMlrwIaaPcHURo="
	rfcEmptySigB64   = "5VZDAMNgrHKQhuLMgG6CioSHfx645dl02HPgZSJJAVVfuIIVkKM7rMYeOXAc+bRr0lv18FlbviRlUUFDjnoQCw=="
	rfcFingerprint   = "21fe31dfa154a261626b"
	sha256EmptyHex   = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	sha256HelloHex   = "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969"
	signScreenText   = "Hello from SignScreen!"
	signScreenB64    = "SGVsbG8gZnJvbSBTaWduU2NyZWVuIQ=="
)

// isolateCLI points HOME and the working directory at temp dirs, turns off
// the log file and clears SIGNET_* variables the commands read.
// Tests using it cannot run in parallel.
func isolateCLI(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SIGNET_LOG_FILE", "false")
	for _, name := range []string{
		"SIGNET_PRIVATE_KEY",
		"SIGNET_OUTPUT_FORMAT",
		"SIGNET_DIGEST_PROVIDER",
		"SIGNET_DIGEST_TIMEOUT",
		"SIGNET_VERBOSE",
		"SIGNET_QUIET",
	} {
		t.Setenv(name, "")
	}
}

// runCLI executes the command tree with args and returns what it wrote to
// stdout and stderr.
func runCLI(t *testing.T, deps Deps, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmdWithDeps(flags, BuildInfo{Version: "test"}, deps)

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

// decodeJSON unmarshals command output into v.
func decodeJSON(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), "output should be JSON: %s", out)
}
