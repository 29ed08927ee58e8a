package main

import (
	"fmt"
	"io"
)

// writeShort prints the hex encoded derived key and nothing else
func writeShort(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintln(w, r.Encodings.Hex); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeFull echoes the inputs and prints every encoding
func writeFull(w io.Writer, r *Report) error {
	lines := []string{
		fmt.Sprintf("Input | Salt: \"%s\"", r.Salt),
		fmt.Sprintf("Input | Normalized passphrase: \"%s\"", r.Passphrase),
		fmt.Sprintf("Input | Scrypt parameters: %s", r.Params),
		fmt.Sprintf("Output| Scrypt derived key in hexadecimal: %s", r.Encodings.Hex),
		fmt.Sprintf("Output| Scrypt derived key in base64: %s", r.Encodings.Base64),
	}

	if r.Encodings.MnemonicErr == nil {
		lines = append(lines, fmt.Sprintf("Output| Scrypt BIP39 words list representation: %s", r.Encodings.Mnemonic))
	} else {
		lines = append(lines, "Output| Scrypt BIP39: Unable to generate words list")
	}

	if r.WithKeyset {
		if r.Encodings.KeysetErr == nil {
			lines = append(lines, fmt.Sprintf("Output| Tink streaming AEAD keyset: %s", r.Encodings.Keyset))
		} else {
			lines = append(lines, "Output| Tink streaming AEAD keyset: Unable to build keyset (key length must be 16 or 32)")
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func writeReport(w io.Writer, r *Report, short bool) error {
	if short {
		return writeShort(w, r)
	}
	return writeFull(w, r)
}
