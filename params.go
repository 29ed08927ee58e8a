package main

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	DefaultLogN   = 19
	DefaultR      = 8
	DefaultP      = 2
	DefaultKeyLen = 16

	// MaxLogN keeps N = 2^logN representable as a 64-bit integer. Values
	// well below it already fail the memory check.
	MaxLogN = 63

	// r*p must stay below 2^30 (RFC 7914)
	maxRP = 1 << 30

	// MaxKeyLen bounds the PBKDF2 output scrypt has to hold in memory
	MaxKeyLen = 1 << 20

	// maxAllocBytes is the largest single buffer the Go runtime can
	// allocate on 64-bit platforms, capped at MaxInt on 32-bit ones
	maxAllocBytes = min(1<<47, math.MaxInt)
)

// ParameterSet is a validated set of scrypt parameters. Build it with
// NewParameterSet; the zero value is not usable.
type ParameterSet struct {
	LogN   uint8
	R      uint32
	P      uint32
	KeyLen int
}

// NewParameterSet validates the scrypt cost parameters and the output length.
// It never allocates the scrypt working memory; combinations that could not
// be allocated fail here with ErrMemoryOverflow.
func NewParameterSet(logN, r, p, keyLen int) (ParameterSet, error) {
	if logN < 1 || logN > MaxLogN {
		return ParameterSet{}, &ParamError{Name: "logN", Value: logN, Err: ErrInvalidParameter}
	}
	if r < 1 || uint64(r) > math.MaxUint32 {
		return ParameterSet{}, &ParamError{Name: "r", Value: r, Err: ErrInvalidParameter}
	}
	if p < 1 || uint64(p) > math.MaxUint32 {
		return ParameterSet{}, &ParamError{Name: "p", Value: p, Err: ErrInvalidParameter}
	}
	if keyLen < 1 || keyLen > MaxKeyLen {
		return ParameterSet{}, &ParamError{Name: "len", Value: keyLen, Err: ErrInvalidParameter}
	}
	if uint64(r)*uint64(p) >= maxRP {
		return ParameterSet{}, &ParamError{Name: "r*p", Value: int(min(uint64(r)*uint64(p), math.MaxInt)), Err: ErrInvalidParameter}
	}

	params := ParameterSet{
		LogN:   uint8(logN),
		R:      uint32(r),
		P:      uint32(p),
		KeyLen: keyLen,
	}
	if _, err := params.MemoryBytes(); err != nil {
		return ParameterSet{}, err
	}
	return params, nil
}

// N returns the CPU/memory cost 2^logN
func (ps ParameterSet) N() uint64 {
	return uint64(1) << ps.LogN
}

// MemoryBytes returns the size of the largest scrypt buffer, 128*r*N bytes.
// Every buffer scrypt allocates (128*r*N, 128*r*p and 256*r) must be
// allocatable in one piece; anything larger fails with ErrMemoryOverflow.
func (ps ParameterSet) MemoryBytes() (uint64, error) {
	blockLen := 128 * uint64(ps.R)

	hi, v := bits.Mul64(blockLen, ps.N())
	if hi != 0 || v > maxAllocBytes {
		return 0, &ParamError{Name: "logN", Value: int(ps.LogN), Err: ErrMemoryOverflow}
	}
	hi, b := bits.Mul64(blockLen, uint64(ps.P))
	if hi != 0 || b > maxAllocBytes {
		return 0, &ParamError{Name: "p", Value: int(ps.P), Err: ErrMemoryOverflow}
	}
	if 2*blockLen > maxAllocBytes {
		return 0, &ParamError{Name: "r", Value: int(ps.R), Err: ErrMemoryOverflow}
	}
	return v, nil
}

func (ps ParameterSet) String() string {
	return fmt.Sprintf("cost factor %d - blocksize %d - parallelization %d - key length in bytes %d",
		ps.LogN, ps.R, ps.P, ps.KeyLen)
}
