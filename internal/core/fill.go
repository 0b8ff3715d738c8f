package core

import (
	"context"
	"sync"
)

// Memory is the flattened lanes*laneLength working array shared by every
// lane's fill worker during one computation. Each worker owns the
// segment it is currently writing; cross-lane reads only ever touch
// positions written in a strictly earlier slice, which the barrier in
// Fill enforces.
type Memory struct {
	Geometry Geometry
	Blocks   []Block
}

// NewMemory allocates working memory for the given geometry.
func NewMemory(g Geometry) *Memory {
	return &Memory{Geometry: g, Blocks: make([]Block, g.MemoryBlocks)}
}

func (m *Memory) at(lane, column uint32) *Block {
	return &m.Blocks[m.Geometry.offset(lane, column)]
}

// Zero overwrites every block with zero. Called on every terminal exit
// from Derive, success or failure.
func (m *Memory) Zero() {
	for i := range m.Blocks {
		m.Blocks[i].zero()
	}
}

// Fill runs the full pass/slice/lane schedule over mem, synchronizing
// lanes at every slice boundary (RFC 9106 section 3.4). Within a slice
// each lane's segment is filled by its own goroutine; goroutines only
// read blocks from other lanes that were written in a prior slice or
// pass, so the barrier between slices is sufficient to avoid data races
// without per-block locking.
//
// ctx is checked at each barrier; a cancellation propagates as ctx.Err()
// without corrupting the caller's ability to zeroize mem afterward. A
// worker panic is recovered and re-surfaced as a PanicError once every
// lane in the slice has finished, so sibling goroutines are never left
// running past the barrier.
func Fill(ctx context.Context, mem *Memory, variant Variant, version Version, passes uint32) error {
	g := mem.Geometry

	for pass := uint32(0); pass < passes; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var wg sync.WaitGroup
			panics := make([]any, g.Lanes)

			for lane := uint32(0); lane < g.Lanes; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					defer func() {
						if r := recover(); r != nil {
							panics[lane] = r
						}
					}()
					fillSegment(mem, variant, version, pass, passes, slice, lane)
				}(lane)
			}
			wg.Wait()

			for _, p := range panics {
				if p != nil {
					return &PanicError{Value: p}
				}
			}
		}
	}
	return nil
}

// fillSegment fills the segmentLength columns owned by (pass, slice,
// lane). i is the position within the segment (RFC 9106 section 3.4);
// the absolute column is slice*segmentLength + i.
func fillSegment(mem *Memory, variant Variant, version Version, pass, passes, slice, lane uint32) {
	g := mem.Geometry

	startI := uint32(0)
	if pass == 0 && slice == 0 {
		startI = 2 // columns 0 and 1 are already seeded
	}

	dataIndependent := usesDataIndependentAddressing(variant, pass, slice)
	var addr addressGenerator
	if dataIndependent {
		addr.init(pass, lane, slice, g.MemoryBlocks, passes, variant)
		if startI > 0 {
			// The loop below only refreshes on indices that are multiples
			// of WordsPerBlock; since this segment starts past index 0, it
			// needs an initial address block before its first iteration.
			addr.refresh()
		}
	}

	for i := startI; i < g.SegmentLength; i++ {
		column := slice*g.SegmentLength + i
		prevColumn := (column - 1 + g.LaneLength) % g.LaneLength

		var j uint64
		if dataIndependent {
			j = addr.next(i)
		} else {
			j = mem.at(lane, prevColumn)[0]
		}

		refLane, refColumn := g.referenceIndices(pass, slice, lane, i, j)

		x := mem.at(lane, prevColumn)
		y := mem.at(refLane, refColumn)
		dst := mem.at(lane, column)

		if pass == 0 || version == Version10 {
			compressInto(dst, x, y)
		} else {
			var z Block
			compressInto(&z, x, y)
			dst.xor(&z)
		}
	}
}

// addressGenerator produces the data-independent pseudo-random stream
// used by Argon2i (and the first half of Argon2id's first pass). It
// refreshes its 128-word address block every 128 indices by compressing
// a counter block twice: address = G(0, G(0, input)).
type addressGenerator struct {
	input   Block
	address Block
	zero    Block
}

func (a *addressGenerator) init(pass, lane, slice, memoryBlocks, iterations uint32, variant Variant) {
	a.input[0] = uint64(pass)
	a.input[1] = uint64(lane)
	a.input[2] = uint64(slice)
	a.input[3] = uint64(memoryBlocks)
	a.input[4] = uint64(iterations)
	a.input[5] = uint64(variant)
	a.input[6] = 0
}

func (a *addressGenerator) refresh() {
	a.input[6]++
	compressInto(&a.address, &a.zero, &a.input)
	compressInto(&a.address, &a.zero, &a.address)
}

func (a *addressGenerator) next(i uint32) uint64 {
	if i%WordsPerBlock == 0 {
		a.refresh()
	}
	return a.address[i%WordsPerBlock]
}
