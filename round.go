package narrowway

import "math/bits"

// direction selects the forward or the inverse round transformation.
type direction int

const (
	forward direction = iota
	backward
)

// state is the block viewed as a matrix of rows x 8 bytes, row-major.
// It lives on the caller's stack; the engine keeps no scratch buffers.
type state struct {
	rows int
	m    [maxRows][rowSize]byte
}

func (st *state) load(src []byte) {
	for j := 0; j < st.rows; j++ {
		copy(st.m[j][:], src[j*rowSize:])
	}
}

func (st *state) store(dst []byte) {
	for j := 0; j < st.rows; j++ {
		copy(dst[j*rowSize:], st.m[j][:])
	}
}

// applyRound runs one round on st with subkey sk. The backward direction is
// the exact inverse of the forward one for every subkey.
func applyRound(st *state, sk *subkey, dir direction) {
	if dir == forward {
		st.shiftColumns()
		st.substitute(sk.sboxes)
		for j := 0; j < st.rows; j++ {
			mixRow(&st.m[j], sk.rowKey(j))
		}
		return
	}
	for j := 0; j < st.rows; j++ {
		unmixRow(&st.m[j], sk.rowKey(j))
	}
	st.substitute(sk.inverses)
	st.unshiftColumns()
}

// shiftColumns rotates column c (c >= 1) down by c mod rows positions.
func (st *state) shiftColumns() {
	for col := 1; col < rowSize; col++ {
		st.rotateColumn(col, col%st.rows)
	}
}

func (st *state) unshiftColumns() {
	for col := 1; col < rowSize; col++ {
		st.rotateColumn(col, (st.rows-col%st.rows)%st.rows)
	}
}

// rotateColumn moves the byte at row r of column col to row (r+step) mod rows.
func (st *state) rotateColumn(col, step int) {
	if step == 0 {
		return
	}
	var tmp [maxRows]byte
	n := st.rows
	for r := 0; r < n; r++ {
		tmp[(r+step)%n] = st.m[r][col]
	}
	for r := 0; r < n; r++ {
		st.m[r][col] = tmp[r]
	}
}

// substitute passes every byte of row j through boxes[j].
func (st *state) substitute(boxes []sbox) {
	for j := 0; j < st.rows; j++ {
		s := &boxes[j]
		row := &st.m[j]
		for c := range row {
			row[c] = s[row[c]]
		}
	}
}

// mixRow is the row function F: an xor/rotate network over the eight bytes,
// the row key xor, then the byte permutation (4,5,0,1,6,7,2,3).
func mixRow(p *[rowSize]byte, k *[rowSize]byte) {
	p[1] ^= p[0] ^ p[2]
	p[6] ^= p[5] ^ p[7]

	p[1] = bits.RotateLeft8(p[1], 3)
	p[2] ^= p[4]
	p[6] = bits.RotateLeft8(p[6], -2)

	p[2] = bits.RotateLeft8(p[2], 2)
	p[5] ^= p[3] ^ p[6]

	p[4] = bits.RotateLeft8(p[4], -4)
	p[4] ^= p[1]
	p[3] ^= p[4] ^ p[7]

	p[5] = bits.RotateLeft8(p[5], 1)

	p[0] ^= p[2]
	p[7] ^= p[5]

	for i := range p {
		p[i] ^= k[i]
	}

	p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7] =
		p[4], p[5], p[0], p[1], p[6], p[7], p[2], p[3]
}

// unmixRow is F^-1: every step of mixRow undone in reverse order.
func unmixRow(p *[rowSize]byte, k *[rowSize]byte) {
	p[4], p[5], p[0], p[1], p[6], p[7], p[2], p[3] =
		p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]

	for i := range p {
		p[i] ^= k[i]
	}

	p[7] ^= p[5]
	p[0] ^= p[2]

	p[5] = bits.RotateLeft8(p[5], -1)

	p[3] ^= p[4] ^ p[7]
	p[4] ^= p[1]
	p[4] = bits.RotateLeft8(p[4], 4)

	p[5] ^= p[3] ^ p[6]
	p[2] = bits.RotateLeft8(p[2], -2)

	p[6] = bits.RotateLeft8(p[6], 2)
	p[2] ^= p[4]
	p[1] = bits.RotateLeft8(p[1], -3)

	p[6] ^= p[5] ^ p[7]
	p[1] ^= p[0] ^ p[2]
}
