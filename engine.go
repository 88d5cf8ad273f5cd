package narrowway

import "fmt"

// checkBlocks validates dst and src against the schedule's block size before
// anything is written, so a failing call leaves dst untouched.
func (s *schedule) checkBlocks(dst, src []byte) error {
	bs := s.variant.BlockSize()
	if len(src) != bs {
		return fmt.Errorf("%w: input is %d bytes, want %d for %s",
			ErrInvalidBlockLength, len(src), bs, s.variant)
	}
	if len(dst) != bs {
		return fmt.Errorf("%w: output is %d bytes, want %d for %s",
			ErrInvalidBlockLength, len(dst), bs, s.variant)
	}
	return nil
}

// encryptBlock applies rounds 0..R-1 forward. dst and src may overlap entirely.
// Lengths must already be checked.
func (s *schedule) encryptBlock(dst, src []byte) {
	st := state{rows: s.variant.rows()}
	st.load(src)
	for r := range s.subkeys {
		applyRound(&st, &s.subkeys[r], forward)
	}
	st.store(dst)
}

// decryptBlock applies rounds R-1..0 backward, undoing encryptBlock.
func (s *schedule) decryptBlock(dst, src []byte) {
	st := state{rows: s.variant.rows()}
	st.load(src)
	for r := len(s.subkeys) - 1; r >= 0; r-- {
		applyRound(&st, &s.subkeys[r], backward)
	}
	st.store(dst)
}
