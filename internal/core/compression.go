package core

// The Argon2 compression function G(X, Y) -> Z and its building blocks.
//
// G differs from plain BLAKE2b compression in two ways: the quarter-round
// uses the BlaMka nonlinear step instead of plain addition, and the
// permutation P is applied twice per call — once over the 8 rows of the
// 128-word block, once over the 8 "columns" formed by a fixed stride — with
// no repeated rounds. It is easy to mistake this for BLAKE2b's 12-round
// schedule; Argon2's P runs exactly once per direction.

// gb is the BlaMka quarter-round (RFC 9106 section 3.5). lo32 multiplies
// only the low halves of a and b, which is what makes this differ from the
// BLAKE2b G function and gives Argon2 its name (BlAke2 + blaMKA).
func gb(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + 2*lo32(a)*lo32(b)
	d = rotr64(d^a, 32)
	c = c + d + 2*lo32(c)*lo32(d)
	b = rotr64(b^c, 24)

	a = a + b + 2*lo32(a)*lo32(b)
	d = rotr64(d^a, 16)
	c = c + d + 2*lo32(c)*lo32(d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

func lo32(x uint64) uint64 { return x & 0xFFFFFFFF }

func rotr64(x uint64, n uint) uint64 { return (x >> n) | (x << (64 - n)) }

// permute applies P — four column GB applications followed by four
// diagonal GB applications — to a 16-word group in place.
func permute(v []uint64) {
	v[0], v[4], v[8], v[12] = gb(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = gb(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = gb(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = gb(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = gb(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = gb(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = gb(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = gb(v[3], v[4], v[9], v[14])
}

// compressInto computes Z = G(x, y) and stores it in dst, applying P to
// the 8 rows and then the 8 strided columns of R = x XOR y exactly once
// each, per the Argon2 specification. dst may alias x or y.
func compressInto(dst, x, y *Block) {
	var r Block
	for i := range r {
		r[i] = x[i] ^ y[i]
	}
	z := r

	for row := 0; row < 8; row++ {
		permute(z[row*16 : row*16+16])
	}

	columnPermute(&z)

	for i := range z {
		z[i] ^= r[i]
	}
	*dst = z
}

// columnPermute applies P to the 8 column-groups of a 128-word block. The
// i-th column group gathers words at offsets {2i, 2i+1} from each of the
// 8 row-groups: indices 2i, 2i+1, 2i+16, 2i+17, ..., 2i+112, 2i+113.
func columnPermute(z *Block) {
	var v [16]uint64
	for i := 0; i < 8; i++ {
		base := 2 * i
		for row := 0; row < 8; row++ {
			v[2*row] = z[row*16+base]
			v[2*row+1] = z[row*16+base+1]
		}

		permute(v[:])

		for row := 0; row < 8; row++ {
			z[row*16+base] = v[2*row]
			z[row*16+base+1] = v[2*row+1]
		}
	}
}
