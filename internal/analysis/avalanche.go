package analysis

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/narrowway/go-narrowway"
)

// Input kinds flipped by the avalanche measurements.
const (
	FlipPlaintext = "plaintext"
	FlipKey       = "key"
)

// Report is the outcome of one avalanche measurement.
type Report struct {
	Variant   string  `json:"variant"`
	Flip      string  `json:"flip"`
	Trials    int     `json:"trials"`
	BlockBits int     `json:"block_bits"`
	Flips     []int   `json:"flips"`
	Summary   Summary `json:"summary"`
	// Ratio is the mean fraction of ciphertext bits that changed.
	Ratio float64 `json:"ratio"`
}

func newReport(v narrowway.Variant, flip string, flips []int) Report {
	blockBits := v.BlockSize() * 8
	vals := make([]float64, len(flips))
	for i, f := range flips {
		vals[i] = float64(f)
	}
	sum := Summarize(vals)
	return Report{
		Variant:   v.String(),
		Flip:      flip,
		Trials:    len(flips),
		BlockBits: blockBits,
		Flips:     flips,
		Summary:   sum,
		Ratio:     sum.Mean / float64(blockBits),
	}
}

// Avalanche encrypts trials random blocks under c, each once as drawn and
// once with a single random bit flipped, and records how many ciphertext
// bits differ.
func Avalanche(c narrowway.Cipher, s *Sampler, trials int) (Report, error) {
	if c == nil {
		return Report{}, narrowway.ErrNilCipher
	}
	if trials <= 0 {
		return Report{}, errors.New("avalanche: trials must be > 0")
	}
	bs := c.BlockSize()
	pt := make([]byte, bs)
	flipped := make([]byte, bs)
	a := make([]byte, bs)
	b := make([]byte, bs)

	flips := make([]int, trials)
	for i := range flips {
		if err := s.Fill(pt); err != nil {
			return Report{}, err
		}
		bit, err := s.Intn(bs * 8)
		if err != nil {
			return Report{}, err
		}
		copy(flipped, pt)
		flipped[bit/8] ^= 1 << (bit % 8)

		if err := c.EncryptBlock(a, pt); err != nil {
			return Report{}, fmt.Errorf("trial %d: %w", i, err)
		}
		if err := c.EncryptBlock(b, flipped); err != nil {
			return Report{}, fmt.Errorf("trial %d: %w", i, err)
		}
		flips[i] = hamming(a, b)
	}
	return newReport(c.Variant(), FlipPlaintext, flips), nil
}

// KeyAvalanche is Avalanche with the bit flipped in a random key instead of
// the plaintext. Every trial expands two fresh keys.
func KeyAvalanche(v narrowway.Variant, s *Sampler, trials int) (Report, error) {
	if !v.Valid() {
		return Report{}, fmt.Errorf("%w: %d", narrowway.ErrUnknownVariant, int(v))
	}
	if trials <= 0 {
		return Report{}, errors.New("avalanche: trials must be > 0")
	}
	ks, bs := v.KeySize(), v.BlockSize()
	key := make([]byte, ks)
	other := make([]byte, ks)
	pt := make([]byte, bs)
	a := make([]byte, bs)
	b := make([]byte, bs)

	flips := make([]int, trials)
	for i := range flips {
		if err := s.Fill(key); err != nil {
			return Report{}, err
		}
		if err := s.Fill(pt); err != nil {
			return Report{}, err
		}
		bit, err := s.Intn(ks * 8)
		if err != nil {
			return Report{}, err
		}
		copy(other, key)
		other[bit/8] ^= 1 << (bit % 8)

		for _, run := range []struct {
			k   []byte
			out []byte
		}{{key, a}, {other, b}} {
			c, err := narrowway.NewCipher(v, run.k)
			if err != nil {
				return Report{}, err
			}
			if err := c.EncryptBlock(run.out, pt); err != nil {
				return Report{}, fmt.Errorf("trial %d: %w", i, err)
			}
		}
		flips[i] = hamming(a, b)
	}
	return newReport(v, FlipKey, flips), nil
}

func hamming(a, b []byte) int {
	d := 0
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}
