package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// zeroBytes overwrites a byte slice with zeros
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// normalizePassphrase collapses every run of whitespace into a single
// space and trims the ends.
func normalizePassphrase(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// readPassphraseLine returns the first line of in. A terminal is read
// without echo after printing prompt to errOut.
func readPassphraseLine(in io.Reader, errOut io.Writer, prompt string) ([]byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(errOut, prompt)
		line, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(errOut) // Print newline after password input
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		return line, nil
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			zeroBytes(line)
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		if len(line) == 0 {
			return nil, ErrNoInput
		}
	}
	return line, nil
}
