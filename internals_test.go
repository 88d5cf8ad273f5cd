package narrowway

import (
	"bytes"
	"testing"
)

func TestGFArithmetic(t *testing.T) {
	loadTables()

	mulCases := []struct{ a, b, want byte }{
		{0x00, 0x57, 0x00},
		{0x01, 0x57, 0x57},
		{0x57, 0x83, 0x9d},
		{0x80, 0x02, 0x71},
	}
	for _, tc := range mulCases {
		if got := gfMul(tc.a, tc.b); got != tc.want {
			t.Errorf("gfMul(%#02x, %#02x) = %#02x, want %#02x", tc.a, tc.b, got, tc.want)
		}
		if got := gfMul(tc.b, tc.a); got != tc.want {
			t.Errorf("gfMul is not commutative for %#02x, %#02x", tc.a, tc.b)
		}
	}

	if got := gfInv(0); got != 0 {
		t.Errorf("gfInv(0) = %#02x, want 0", got)
	}
	if got := gfInv(2); got != 0xb8 {
		t.Errorf("gfInv(2) = %#02x, want 0xb8", got)
	}
	if got := gfInv(0x53); got != 0x13 {
		t.Errorf("gfInv(0x53) = %#02x, want 0x13", got)
	}
	for a := 1; a < 256; a++ {
		if p := gfMul(byte(a), gfInv(byte(a))); p != 1 {
			t.Fatalf("%#02x * gfInv(%#02x) = %#02x, want 1", a, a, p)
		}
	}
}

func TestBaseSBox(t *testing.T) {
	loadTables()

	prefix := []byte{0x00, 0x57, 0x8e, 0x0b, 0x47, 0xc0, 0x85, 0x58, 0xa3, 0xf1, 0x45, 0xe8, 0xc2, 0x9f, 0x2c, 0x40}
	if !bytes.Equal(baseSBox[:16], prefix) {
		t.Errorf("S0[:16] = %x, want %x", baseSBox[:16], prefix)
	}

	for _, d := range []byte{0x00, 0x01, 0x52, 0xff} {
		s := keyedSBox(d)
		var seen [256]bool
		for _, v := range s {
			if seen[v] {
				t.Fatalf("keyed S-box %#02x is not a permutation", d)
			}
			seen[v] = true
		}
		inv := s.inverse()
		for x := 0; x < 256; x++ {
			if inv[s[x]] != byte(x) {
				t.Fatalf("inverse of keyed S-box %#02x fails at %#02x", d, x)
			}
		}
	}
}

func TestRoundConstants(t *testing.T) {
	want := []byte{8, 16, 32, 64, 128, 113, 226, 181, 27, 54, 108, 216, 193, 243, 151, 95, 190, 13, 26, 52}
	for r, w := range want {
		if got := roundConstant(r); got != w {
			t.Errorf("roundConstant(%d) = %d, want %d", r, got, w)
		}
	}
}

func TestDigestRow(t *testing.T) {
	var zeros [rowSize]byte
	if got := digestRow(&zeros); got != 0 {
		t.Errorf("digestRow(zeros) = %#02x, want 0", got)
	}
	seq := [rowSize]byte{1, 2, 3, 4, 5, 6, 7, 8}
	if got := digestRow(&seq); got != 0x52 {
		t.Errorf("digestRow(1..8) = %#02x, want 0x52", got)
	}
	// Zero bytes after the first count as one.
	withZero := [rowSize]byte{7, 0, 0, 0, 0, 0, 0, 0}
	if got := digestRow(&withZero); got != 7 {
		t.Errorf("digestRow(7,0,...) = %#02x, want 7", got)
	}
}

func TestMixRow(t *testing.T) {
	var zero [rowSize]byte

	p := zero
	mixRow(&p, &zero)
	if p != zero {
		t.Errorf("mixRow(zeros) = %v, want zeros", p)
	}

	p = [rowSize]byte{0, 1, 2, 3, 4, 5, 6, 7}
	mixRow(&p, &zero)
	if want := [rowSize]byte{88, 14, 24, 24, 1, 9, 24, 92}; p != want {
		t.Errorf("mixRow(0..7) = %v, want %v", p, want)
	}

	for i := 0; i < 256; i++ {
		var k, orig [rowSize]byte
		for j := range orig {
			orig[j] = byte(i*31 + j*17)
			k[j] = byte(i*7 ^ j*59)
		}
		p := orig
		mixRow(&p, &k)
		unmixRow(&p, &k)
		if p != orig {
			t.Fatalf("unmixRow(mixRow(%v)) = %v", orig, p)
		}
	}
}

func TestApplyRoundInverse(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			key := make([]byte, v.KeySize())
			for i := range key {
				key[i] = byte(i*13 + 1)
			}
			s, err := expand(key, v)
			if err != nil {
				t.Fatalf("expand: %v", err)
			}
			if len(s.subkeys) != v.Rounds() {
				t.Fatalf("got %d subkeys, want %d", len(s.subkeys), v.Rounds())
			}

			block := make([]byte, v.BlockSize())
			for i := range block {
				block[i] = byte(255 - i)
			}
			for r := range s.subkeys {
				st := state{rows: v.rows()}
				st.load(block)
				applyRound(&st, &s.subkeys[r], forward)
				applyRound(&st, &s.subkeys[r], backward)
				out := make([]byte, len(block))
				st.store(out)
				if !bytes.Equal(out, block) {
					t.Fatalf("round %d: backward(forward(x)) = %x, want %x", r, out, block)
				}
			}
		})
	}
}

func TestShiftColumns(t *testing.T) {
	st := state{rows: 4}
	for r := 0; r < st.rows; r++ {
		for c := 0; c < rowSize; c++ {
			st.m[r][c] = byte(r*rowSize + c)
		}
	}
	orig := st
	st.shiftColumns()

	// Column 0 stays, column 1 moves down one row, column 4 comes back to place.
	for r := 0; r < st.rows; r++ {
		if st.m[r][0] != orig.m[r][0] {
			t.Errorf("column 0 moved at row %d", r)
		}
		if st.m[(r+1)%4][1] != orig.m[r][1] {
			t.Errorf("column 1 row %d did not shift by one", r)
		}
		if st.m[r][4] != orig.m[r][4] {
			t.Errorf("column 4 moved at row %d", r)
		}
	}

	st.unshiftColumns()
	if st != orig {
		t.Error("unshiftColumns did not undo shiftColumns")
	}
}

func TestExpandIsPure(t *testing.T) {
	key := bytes.Repeat([]byte{0x3c}, KeySize384)
	s1, err := expand(key, Variant384)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	s2, _ := expand(key, Variant384)
	for r := range s1.subkeys {
		if !bytes.Equal(s1.subkeys[r].key, s2.subkeys[r].key) {
			t.Fatalf("round %d keys differ between expansions", r)
		}
		if len(s1.subkeys[r].key) != BlockSize384 {
			t.Fatalf("round %d key is %d bytes, want %d", r, len(s1.subkeys[r].key), BlockSize384)
		}
	}
	if !bytes.Equal(key, bytes.Repeat([]byte{0x3c}, KeySize384)) {
		t.Error("expand modified the caller's key")
	}
	if _, err := expand(key, Variant(128)); err == nil {
		t.Error("expand accepted an unknown variant")
	}
}
