package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	Version = "1.0.0"

	// Prefix of the environment variables mirroring the flags
	EnvPrefix = "SCRYPTKEY_"
)

var flagShort = &cli.BoolFlag{
	Name:    "short",
	Aliases: []string{"S"},
	Usage:   "Return hex encoded scrypt derived key only",
}

var flagSalt = &cli.StringFlag{
	Name:    "salt",
	Aliases: []string{"s"},
	Value:   "",
	EnvVars: []string{EnvPrefix + "SALT"},
	Usage:   "Set salt",
}

var flagLogN = &cli.IntFlag{
	Name:    "logn",
	Aliases: []string{"L"},
	Value:   DefaultLogN,
	EnvVars: []string{EnvPrefix + "LOGN"},
	Usage:   "log₂N (CPU/memory cost) param for scrypt",
}

var flagR = &cli.IntFlag{
	Name:    "r",
	Value:   DefaultR,
	EnvVars: []string{EnvPrefix + "R"},
	Usage:   "r (blocksize) param for scrypt",
}

var flagP = &cli.IntFlag{
	Name:    "p",
	Value:   DefaultP,
	EnvVars: []string{EnvPrefix + "P"},
	Usage:   "p (parallelization) param for scrypt",
}

var flagLen = &cli.IntFlag{
	Name:    "len",
	Aliases: []string{"l"},
	Value:   DefaultKeyLen,
	EnvVars: []string{EnvPrefix + "LEN"},
	Usage:   "Derived key length in bytes",
}

var flagLanguage = &cli.StringFlag{
	Name:  "language",
	Value: DefaultLanguage,
	Usage: "BIP39 wordlist: " + strings.Join(Languages(), ", "),
}

var flagKeyset = &cli.BoolFlag{
	Name:  "keyset",
	Usage: "Also print the derived key as a Tink streaming AEAD keyset (16 or 32 byte keys)",
}

var flagLogDebug = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}

var flagLogJSON = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}

const usage = "Read passphrase (first line from stdin), normalize it (drop extra whitespace) and pass it to scrypt"

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "scryptkey",
		Usage:     usage,
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			flagShort,
			flagSalt,
			flagLogN,
			flagR,
			flagP,
			flagLen,
			flagLanguage,
			flagKeyset,
			flagLogDebug,
			flagLogJSON,
		},
		HideHelpCommand: true,
		Action:          run,
	}
}

func run(cCtx *cli.Context) error {
	log := setupLogger(cCtx.App.ErrWriter, cCtx.Bool(flagLogDebug.Name), cCtx.Bool(flagLogJSON.Name))

	// Validate everything before touching stdin or allocating scrypt memory
	params, err := NewParameterSet(
		cCtx.Int(flagLogN.Name),
		cCtx.Int(flagR.Name),
		cCtx.Int(flagP.Name),
		cCtx.Int(flagLen.Name),
	)
	if err != nil {
		return err
	}

	mnemonic, err := NewBIP39Encoder(cCtx.String(flagLanguage.Name))
	if err != nil {
		return err
	}

	line, err := readPassphraseLine(cCtx.App.Reader, cCtx.App.ErrWriter, "Enter passphrase: ")
	if err != nil {
		return err
	}
	defer zeroBytes(line)

	pipeline := &Pipeline{
		Deriver:    ScryptDeriver{},
		Mnemonic:   mnemonic,
		Log:        log,
		WithKeyset: cCtx.Bool(flagKeyset.Name),
	}

	report, err := pipeline.Run(line, cCtx.String(flagSalt.Name), params)
	if err != nil {
		return err
	}

	return writeReport(cCtx.App.Writer, report, cCtx.Bool(flagShort.Name))
}

func setupLogger(w io.Writer, debug, json bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", "scryptkey", "version", Version)
}
