package argon2

import (
	"context"

	"github.com/mooncloak/argon2/internal/core"
)

// Variant selects Argon2's memory-addressing mode.
type Variant = core.Variant

// Variant values, matching the "type" ordinal used in RFC 9106's H0
// prelude and in PHC-string identifiers ($argon2d$, $argon2i$, $argon2id$).
const (
	VariantD  = core.VariantD
	VariantI  = core.VariantI
	VariantID = core.VariantID
)

// Version selects the Argon2 version. Version13 is recommended; Version10
// is retained for compatibility with tags produced before the fix that
// made passes after the first XOR into the existing block.
type Version = core.Version

const (
	Version10 = core.Version10
	Version13 = core.Version13
)

// Params bundles the cost and input parameters of one Argon2 computation.
// MemoryKiB is the memory parameter as RFC 9106 defines it, in
// kibibytes; Hash converts it to 1024-byte blocks internally.
type Params struct {
	Variant     Variant
	Version     Version
	Time        uint32 // iterations, t >= 1
	MemoryKiB   uint32 // memory cost in KiB, m
	Parallelism uint32 // lanes, p >= 1
	KeyLength   uint32 // tag length in bytes, tau >= 4
}

// DefaultParams returns RFC 9106's second recommended option: suitable
// when a side channel is not a concern and more iterations than memory
// are affordable.
func DefaultParams() Params {
	return Params{
		Variant:     VariantID,
		Version:     Version13,
		Time:        3,
		MemoryKiB:   64 * 1024,
		Parallelism: 4,
		KeyLength:   32,
	}
}

// Hash derives a key from password and salt using the given parameters,
// with no secret (pepper) or associated data. It is equivalent to
// HashContext(context.Background(), ...).
func Hash(password, salt []byte, p Params) ([]byte, error) {
	return HashWithSecret(password, salt, nil, nil, p)
}

// HashWithSecret derives a key from password and salt, optionally keyed
// by secret and bound to associated data ad. Both may be nil.
func HashWithSecret(password, salt, secret, ad []byte, p Params) ([]byte, error) {
	return HashContext(context.Background(), password, salt, secret, ad, p)
}

// HashContext is the general Argon2 entry point (spec section 6). ctx is
// checked at each of the fill schedule's slice barriers; canceling it
// stops the computation early and zeroizes the working memory before
// returning.
func HashContext(ctx context.Context, password, salt, secret, ad []byte, p Params) ([]byte, error) {
	cp := &core.Params{
		Variant:     p.Variant,
		Version:     p.Version,
		Password:    password,
		Salt:        salt,
		Secret:      secret,
		AD:          ad,
		Time:        p.Time,
		Memory:      p.MemoryKiB,
		Parallelism: p.Parallelism,
		TagLength:   p.KeyLength,
	}

	tag, _, err := core.Derive(ctx, cp)
	if err != nil {
		return nil, classify(err)
	}
	return tag, nil
}

// Key derives a key using Argon2i, version 0x13. It mirrors the
// signature of golang.org/x/crypto/argon2.Key.
func Key(password, salt []byte, time, memoryKiB uint32, parallelism uint8, keyLen uint32) ([]byte, error) {
	return Hash(password, salt, Params{
		Variant:     VariantI,
		Version:     Version13,
		Time:        time,
		MemoryKiB:   memoryKiB,
		Parallelism: uint32(parallelism),
		KeyLength:   keyLen,
	})
}

// IDKey derives a key using Argon2id, version 0x13. It mirrors the
// signature of golang.org/x/crypto/argon2.IDKey.
func IDKey(password, salt []byte, time, memoryKiB uint32, parallelism uint8, keyLen uint32) ([]byte, error) {
	return Hash(password, salt, Params{
		Variant:     VariantID,
		Version:     Version13,
		Time:        time,
		MemoryKiB:   memoryKiB,
		Parallelism: uint32(parallelism),
		KeyLength:   keyLen,
	})
}

// DKey derives a key using Argon2d, version 0x13. Argon2d is faster than
// Argon2i/id and resistant to GPU cracking, but its data-dependent
// addressing makes it unsuitable for anything an attacker can influence
// with timing side channels.
func DKey(password, salt []byte, time, memoryKiB uint32, parallelism uint8, keyLen uint32) ([]byte, error) {
	return Hash(password, salt, Params{
		Variant:     VariantD,
		Version:     Version13,
		Time:        time,
		MemoryKiB:   memoryKiB,
		Parallelism: uint32(parallelism),
		KeyLength:   keyLen,
	})
}
