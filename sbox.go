package narrowway

// sbox is a bijective byte substitution table.
type sbox [256]byte

// keyedSBox returns the base S-box with every output xored with d.
// Xoring a permutation's outputs with a constant keeps it a permutation.
func keyedSBox(d byte) sbox {
	loadTables()
	s := baseSBox
	for i := range s {
		s[i] ^= d
	}
	return s
}

// inverse computes the inverse permutation: inv[s[i]] = i.
func (s *sbox) inverse() sbox {
	var inv sbox
	for i := 0; i < 256; i++ {
		inv[s[i]] = byte(i)
	}
	return inv
}
