package narrowway

import (
	"fmt"
	"math/bits"
)

// subkey holds everything one round consumes: a block-sized round key, read
// as one 8-byte key per state row, and the keyed S-box of each row together
// with its precomputed inverse.
type subkey struct {
	key      []byte
	sboxes   []sbox
	inverses []sbox
}

// rowKey returns the 8-byte key of the given state row.
func (k *subkey) rowKey(row int) *[rowSize]byte {
	return (*[rowSize]byte)(k.key[row*rowSize : (row+1)*rowSize])
}

// schedule is the expanded key of one cipher instance. It is never modified
// after expand returns, so any number of goroutines may read it.
type schedule struct {
	variant Variant
	subkeys []subkey
}

// expand derives the round subkeys of variant v from key.
// It is a pure function of the key bytes.
func expand(key []byte, v Variant) (*schedule, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if len(key) != v.KeySize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %s",
			ErrInvalidKeyLength, len(key), v.KeySize(), v)
	}
	loadTables()

	rounds, rows := v.Rounds(), v.rows()
	s := &schedule{
		variant: v,
		subkeys: make([]subkey, rounds),
	}

	// Working copy of the key; every round key is derived from the previous one.
	prev := make([]byte, len(key))
	copy(prev, key)
	defer clear(prev)

	for r := 0; r < rounds; r++ {
		sk := &s.subkeys[r]
		sk.key = make([]byte, len(key))
		nextRoundKey(sk.key, prev, r)
		sk.sboxes = make([]sbox, rows)
		sk.inverses = make([]sbox, rows)
		for j := 0; j < rows; j++ {
			sk.sboxes[j] = keyedSBox(digestRow(sk.rowKey(j)))
			sk.inverses[j] = sk.sboxes[j].inverse()
		}
		copy(prev, sk.key)
	}
	return s, nil
}

// nextRoundKey derives round key r from the previous round key: each byte
// has its nibbles swapped and is inverted in GF(2^8), then the bytes are
// chained with a running xor seeded by the round constant.
func nextRoundKey(dst, prev []byte, r int) {
	acc := roundConstant(r)
	for i, b := range prev {
		acc ^= gfInv(bits.RotateLeft8(b, 4))
		dst[i] = acc
	}
}

// roundConstant returns 2^(r+3) in GF(2^8).
func roundConstant(r int) byte {
	c := byte(2)
	for i := 0; i < r+2; i++ {
		c = gfMul(c, 2)
	}
	return c
}

// digestRow folds a row key into the single byte that keys the row's S-box.
// Zero bytes after the first are treated as one so they do not annihilate the product.
func digestRow(k *[rowSize]byte) byte {
	d := k[0]
	for _, b := range k[1:] {
		d = gfMul(d, max(b, 1))
	}
	return d
}
