package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"scryptkey"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestAppShort(t *testing.T) {
	stdout, _, err := runApp(t, "test   secret\nignored\n", "-S", "-s", "test passphrase", "-L", "9")
	require.NoError(t, err)
	require.Equal(t, "f9b9450a44c185a5f7ef0ba3f19e2943\n", stdout)
}

func TestAppFull(t *testing.T) {
	stdout, _, err := runApp(t, " test secret \n", "--salt", "test passphrase", "--logn", "9", "-r", "8", "-p", "2", "--len", "16")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, `Input | Salt: "test passphrase"`, lines[0])
	require.Equal(t, `Input | Normalized passphrase: "test secret"`, lines[1])
	require.Equal(t, "Input | Scrypt parameters: cost factor 9 - blocksize 8 - parallelization 2 - key length in bytes 16", lines[2])
	require.Equal(t, "Output| Scrypt derived key in hexadecimal: f9b9450a44c185a5f7ef0ba3f19e2943", lines[3])
	require.Equal(t, "Output| Scrypt derived key in base64: +blFCkTBhaX37wuj8Z4pQw==", lines[4])
	require.True(t, strings.HasPrefix(lines[5], "Output| Scrypt BIP39 words list representation: "))
	require.Len(t, strings.Fields(strings.TrimPrefix(lines[5], "Output| Scrypt BIP39 words list representation: ")), 12)
}

func TestAppMnemonicUnavailable(t *testing.T) {
	stdout, stderr, err := runApp(t, "test secret\n", "-s", "test passphrase", "-L", "9", "-l", "15")
	require.NoError(t, err)
	require.Contains(t, stdout, "Output| Scrypt derived key in hexadecimal: f9b9450a44c185a5f7ef0ba3f19e29\n")
	require.Contains(t, stdout, "Output| Scrypt BIP39: Unable to generate words list\n")
	require.Contains(t, stderr, "mnemonic unavailable")
}

func TestAppKeyset(t *testing.T) {
	stdout, _, err := runApp(t, "test secret\n", "-L", "9", "-l", "32", "--keyset")
	require.NoError(t, err)
	require.Contains(t, stdout, "Output| Tink streaming AEAD keyset: ")
	require.Contains(t, stdout, aesGcmHkdfStreamingTypeURL)

	stdout, _, err = runApp(t, "test secret\n", "-L", "9", "-l", "32", "--keyset", "-S")
	require.NoError(t, err)
	require.Len(t, strings.TrimSuffix(stdout, "\n"), 64)
}

func TestAppEnvironment(t *testing.T) {
	t.Setenv("SCRYPTKEY_SALT", "test passphrase")
	t.Setenv("SCRYPTKEY_LOGN", "9")

	stdout, _, err := runApp(t, "test secret\n", "-S")
	require.NoError(t, err)
	require.Equal(t, "f9b9450a44c185a5f7ef0ba3f19e2943\n", stdout)
}

func TestAppDebugLogging(t *testing.T) {
	_, stderr, err := runApp(t, "test secret\n", "-S", "-L", "9", "--log-debug", "--log-json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"deriving key"`)
	require.Contains(t, stderr, `"memoryBytes":524288`)
	require.NotContains(t, stderr, "f9b9450a44c185a5f7ef0ba3f19e2943")
	require.NotContains(t, stderr, "test secret")
}

func TestAppFailures(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{name: "no input", stdin: "", args: []string{"-L", "9"}, want: ErrNoInput},
		{name: "invalid logN", stdin: "x\n", args: []string{"-L", "0"}, want: ErrInvalidParameter},
		{name: "negative r", stdin: "x\n", args: []string{"-L", "9", "-r=-1"}, want: ErrInvalidParameter},
		{name: "zero length", stdin: "x\n", args: []string{"-L", "9", "-l", "0"}, want: ErrInvalidParameter},
		{name: "memory overflow", stdin: "x\n", args: []string{"-L", "62"}, want: ErrMemoryOverflow},
		{name: "beyond allocation limit", stdin: "x\n", args: []string{"-L", "40"}, want: ErrMemoryOverflow},
		{name: "length too large", stdin: "x\n", args: []string{"-L", "9", "-l", "1048577"}, want: ErrInvalidParameter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := runApp(t, tc.stdin, tc.args...)
			require.ErrorIs(t, err, tc.want)
			require.Empty(t, stdout)
		})
	}

	_, _, err := runApp(t, "x\n", "-L", "9", "--language", "klingon")
	require.Error(t, err)

	_, _, err = runApp(t, "x\n", "-L", "nine")
	require.Error(t, err)
}
