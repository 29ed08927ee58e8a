package main

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInput is returned when standard input holds no passphrase line
	ErrNoInput = errors.New("no passphrase on standard input")

	// ErrInvalidParameter marks a scrypt parameter outside its supported range
	ErrInvalidParameter = errors.New("invalid scrypt parameter")

	// ErrMemoryOverflow marks a parameter combination whose memory use
	// cannot be represented on this platform
	ErrMemoryOverflow = errors.New("scrypt memory requirement overflows")

	// ErrDerivation wraps failures of the scrypt primitive itself
	ErrDerivation = errors.New("key derivation failed")

	ErrMnemonicUnavailable = errors.New("unable to generate words list")
	ErrKeysetUnavailable   = errors.New("unable to build keyset")
)

// ParamError reports which parameter was rejected
type ParamError struct {
	Name  string
	Value int
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s=%d", e.Err, e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// EncodingSet holds every rendering of a derived key. Mnemonic and Keyset
// are only meaningful when their error is nil.
type EncodingSet struct {
	Hex         string
	Base64      string
	Mnemonic    string
	MnemonicErr error
	Keyset      string
	KeysetErr   error
}

// Report is everything the output formatter needs for one run
type Report struct {
	Salt       string
	Passphrase string
	Params     ParameterSet
	Encodings  EncodingSet
	WithKeyset bool
}
