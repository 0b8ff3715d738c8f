package core

import (
	"encoding/binary"

	"github.com/mooncloak/argon2/internal/blake2b"
)

// hPrime is Argon2's variable-length hash H', built by chaining fixed-width
// BLAKE2b digests (RFC 9106 section 3.2). For tau <= 64 it is a single
// BLAKE2b call; longer outputs are produced by repeatedly hashing the
// previous 64-byte digest and keeping the first half of each intermediate
// result, with the final segment sized to land exactly on tau bytes.
func hPrime(x []byte, tau int) []byte {
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(tau))

	if tau <= blake2b.MaxDigestSize {
		h, err := blake2b.New(tau, nil)
		if err != nil {
			panic("argon2: H' with invalid digest size: " + err.Error())
		}
		h.Write(lenPrefix[:])
		h.Write(x)
		return h.Sum(nil)
	}

	out := make([]byte, tau)

	h, _ := blake2b.New(blake2b.MaxDigestSize, nil)
	h.Write(lenPrefix[:])
	h.Write(x)
	v := h.Sum(nil)

	pos := copy(out, v[:32])

	for tau-pos > blake2b.MaxDigestSize {
		h, _ = blake2b.New(blake2b.MaxDigestSize, nil)
		h.Write(v)
		v = h.Sum(nil)
		pos += copy(out[pos:], v[:32])
	}

	last, _ := blake2b.New(tau-pos, nil)
	last.Write(v)
	copy(out[pos:], last.Sum(nil))

	return out
}
