package core

import "context"

// State is a hash computation's position in its lifecycle. Every exit
// path after the working memory is allocated — success or failure — ends
// in Zeroed; a parameter-validation failure returns Created.
type State int

const (
	Created State = iota
	Seeded
	Filling
	Finalized
	Zeroed
)

// Derive runs one complete Argon2 computation: seed memory from H0 via
// H', fill it according to the pass/slice/lane schedule, and finalize by
// XOR-folding the last column of every lane through H'. The working
// memory is allocated fresh for this call and is zeroized before Derive
// returns on every path, including ctx cancellation and worker panics.
func Derive(ctx context.Context, p *Params) (tag []byte, state State, err error) {
	state = Created

	if err := validate(p); err != nil {
		return nil, Created, err
	}

	g := NewGeometry(p.Memory, p.Parallelism)
	mem := NewMemory(g)
	defer func() {
		mem.Zero()
		state = Zeroed
	}()

	h0 := initialHash(p)
	for lane := uint32(0); lane < g.Lanes; lane++ {
		seedLane(h0, lane, mem.at(lane, 0), mem.at(lane, 1))
	}
	state = Seeded

	state = Filling
	if err := Fill(ctx, mem, p.Variant, p.Version, p.Time); err != nil {
		return nil, state, err
	}

	tag = finalize(mem, int(p.TagLength))
	state = Finalized
	return tag, state, nil
}

// finalize XORs the last column of every lane together and stretches the
// result to tagLength bytes via H' (RFC 9106 section 3.4, step 14).
func finalize(mem *Memory, tagLength int) []byte {
	g := mem.Geometry

	var c Block
	c = *mem.at(0, g.LaneLength-1)
	for lane := uint32(1); lane < g.Lanes; lane++ {
		c.xor(mem.at(lane, g.LaneLength-1))
	}

	return hPrime(c.bytes(), tagLength)
}
