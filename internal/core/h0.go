package core

import (
	"encoding/binary"

	"github.com/mooncloak/argon2/internal/blake2b"
)

// Variant selects Argon2's memory-addressing mode.
type Variant uint32

// Variant ordinals match RFC 9106's "type" field, which also feeds H0.
const (
	VariantD  Variant = 0
	VariantI  Variant = 1
	VariantID Variant = 2
)

// Version selects the Argon2 version; it changes whether passes after the
// first XOR into the existing block or overwrite it.
type Version uint32

const (
	Version10 Version = 0x10
	Version13 Version = 0x13
)

// Params fully describes one Argon2 computation. Geometry (MemoryBlocks,
// SegmentLength, LaneLength) is derived from these by NewGeometry.
type Params struct {
	Variant     Variant
	Version     Version
	Password    []byte
	Salt        []byte
	Secret      []byte
	AD          []byte
	Time        uint32 // iterations, t
	Memory      uint32 // memory blocks, m (already in 1024-byte units)
	Parallelism uint32 // lanes, p
	TagLength   uint32 // tau
}

// initialHash computes H0 = BLAKE2b-512 of the encoded parameter prelude
// (RFC 9106 section 3.2). All integers are 32-bit little-endian.
func initialHash(p *Params) [64]byte {
	h, _ := blake2b.New(64, nil)

	var u32 [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}
	putField := func(b []byte) {
		putU32(uint32(len(b)))
		h.Write(b)
	}

	putU32(p.Parallelism)
	putU32(p.TagLength)
	putU32(p.Memory)
	putU32(p.Time)
	putU32(uint32(p.Version))
	putU32(uint32(p.Variant))
	putField(p.Password)
	putField(p.Salt)
	putField(p.Secret)
	putField(p.AD)

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// seedLane writes the first two blocks of a lane from H0, per RFC 9106
// section 3.3:
//
//	B[l][0] = H'(H0 || LE32(0) || LE32(l), 1024)
//	B[l][1] = H'(H0 || LE32(1) || LE32(l), 1024)
func seedLane(h0 [64]byte, lane uint32, b0, b1 *Block) {
	buf := make([]byte, 64+4+4)
	copy(buf, h0[:])

	binary.LittleEndian.PutUint32(buf[64:68], 0)
	binary.LittleEndian.PutUint32(buf[68:72], lane)
	b0.setBytes(hPrime(buf, BlockSize))

	binary.LittleEndian.PutUint32(buf[64:68], 1)
	b1.setBytes(hPrime(buf, BlockSize))
}
