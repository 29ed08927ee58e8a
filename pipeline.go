package main

import (
	"io"
	"log/slog"
)

// Pipeline runs one passphrase through normalization, scrypt and the
// encoders. It holds no state between runs.
type Pipeline struct {
	Deriver    KeyDeriver
	Mnemonic   MnemonicEncoder
	Log        *slog.Logger
	WithKeyset bool
}

// Run derives the key for raw and returns the rendered report. The derived
// key itself is zeroed before Run returns.
func (p *Pipeline) Run(raw []byte, salt string, params ParameterSet) (*Report, error) {
	log := p.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pass := normalizePassphrase(string(raw))
	secret := []byte(pass)
	defer zeroBytes(secret)

	attrs := []any{"logN", params.LogN, "r", params.R, "p", params.P, "keyLen", params.KeyLen}
	if memory, err := params.MemoryBytes(); err == nil {
		attrs = append(attrs, "memoryBytes", memory)
	}
	log.Debug("deriving key", attrs...)

	dk, err := p.Deriver.DeriveKey(secret, []byte(salt), params)
	if err != nil {
		log.Error("key derivation failed", "err", err)
		return nil, err
	}
	defer zeroBytes(dk)

	encodings := encodeKey(dk, p.Mnemonic, p.WithKeyset)
	if encodings.MnemonicErr != nil {
		log.Warn("mnemonic unavailable", "keyLen", params.KeyLen, "err", encodings.MnemonicErr)
	}
	if p.WithKeyset && encodings.KeysetErr != nil {
		log.Warn("keyset unavailable", "keyLen", params.KeyLen, "err", encodings.KeysetErr)
	}

	return &Report{
		Salt:       salt,
		Passphrase: pass,
		Params:     params,
		Encodings:  encodings,
		WithKeyset: p.WithKeyset,
	}, nil
}
