package narrowway

import (
	"math/bits"
	"sync"
)

// gfModulus is the reduction polynomial x^8+x^6+x^5+x^4+1 without its x^8 term.
const gfModulus = 0x71

var (
	tablesOnce sync.Once
	gfInvTable [256]byte
	baseSBox   sbox
)

// loadTables builds the field inverse table and the unkeyed S-box once.
// Both are read-only afterwards.
func loadTables() {
	tablesOnce.Do(func() {
		for i := 0; i < 256; i++ {
			gfInvTable[i] = gfPow(byte(i), 254)
		}
		for i := 0; i < 256; i++ {
			baseSBox[i] = affine(gfInvTable[i])
		}
	})
}

// gfMul multiplies a and b in GF(2^8).
func gfMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= gfModulus
		}
		b >>= 1
	}
	return p
}

// gfPow raises a to the power e. a^254 is the multiplicative inverse of a,
// and maps 0 to 0.
func gfPow(a byte, e int) byte {
	r := byte(1)
	for e > 0 {
		if e&1 == 1 {
			r = gfMul(r, a)
		}
		a = gfMul(a, a)
		e >>= 1
	}
	return r
}

// gfInv returns the multiplicative inverse of a, with gfInv(0) == 0.
// loadTables must have run.
func gfInv(a byte) byte {
	return gfInvTable[a]
}

// affine is the circulant bit mixing used to build the base S-box:
// out_i = b_i ^ b_(i+2) ^ b_(i+4) ^ b_(i+6) ^ b_(i+7), indices mod 8.
func affine(b byte) byte {
	return b ^ bits.RotateLeft8(b, -2) ^ bits.RotateLeft8(b, -4) ^
		bits.RotateLeft8(b, -6) ^ bits.RotateLeft8(b, -7)
}
