package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

const DefaultLanguage = "english"

var bip39Wordlists = map[string][]string{
	"english":             wordlists.English,
	"japanese":            wordlists.Japanese,
	"korean":              wordlists.Korean,
	"spanish":             wordlists.Spanish,
	"french":              wordlists.French,
	"italian":             wordlists.Italian,
	"czech":               wordlists.Czech,
	"chinese-simplified":  wordlists.ChineseSimplified,
	"chinese-traditional": wordlists.ChineseTraditional,
}

// go-bip39 keeps its active wordlist in package state
var bip39Mu sync.Mutex

// MnemonicEncoder turns entropy into a checksummed word sequence
type MnemonicEncoder interface {
	EntropyToMnemonic(entropy []byte) (string, error)
}

// BIP39Encoder encodes entropy as a BIP39 mnemonic in one language
type BIP39Encoder struct {
	wordlist []string
}

func NewBIP39Encoder(language string) (*BIP39Encoder, error) {
	list, ok := bip39Wordlists[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("unsupported wordlist language %q (supported: %s)",
			language, strings.Join(Languages(), ", "))
	}
	return &BIP39Encoder{wordlist: list}, nil
}

// Languages lists the accepted wordlist names
func Languages() []string {
	names := make([]string, 0, len(bip39Wordlists))
	for name := range bip39Wordlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EntropyToMnemonic accepts 16, 20, 24, 28 or 32 bytes of entropy
func (e *BIP39Encoder) EntropyToMnemonic(entropy []byte) (string, error) {
	bip39Mu.Lock()
	defer bip39Mu.Unlock()

	bip39.SetWordList(e.wordlist)
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMnemonicUnavailable, err)
	}
	return mnemonic, nil
}

// encodeKey renders dk in every supported encoding. An unavailable
// mnemonic or keyset is recorded in the set, never returned as an error.
func encodeKey(dk []byte, mnemonic MnemonicEncoder, withKeyset bool) EncodingSet {
	set := EncodingSet{
		Hex:    hex.EncodeToString(dk),
		Base64: base64.StdEncoding.EncodeToString(dk),
	}

	set.Mnemonic, set.MnemonicErr = mnemonic.EntropyToMnemonic(dk)

	if withKeyset {
		set.Keyset, set.KeysetErr = keysetJSON(dk)
		set.Keyset = strings.TrimSpace(set.Keyset)
	} else {
		set.KeysetErr = ErrKeysetUnavailable
	}
	return set
}
