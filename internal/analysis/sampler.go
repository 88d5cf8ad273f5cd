package analysis

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Sampler draws reproducible bytes from a keyed PRNG. Two samplers built
// from the same seed produce the same stream.
type Sampler struct {
	prng utils.PRNG
}

// NewSampler returns a Sampler keyed with seed.
func NewSampler(seed []byte) (*Sampler, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("keyed prng: %w", err)
	}
	return &Sampler{prng: prng}, nil
}

// NewRandomSampler returns a Sampler keyed from the system randomness source.
func NewRandomSampler() (*Sampler, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("prng: %w", err)
	}
	return &Sampler{prng: prng}, nil
}

// Fill overwrites b with the next len(b) bytes of the stream.
func (s *Sampler) Fill(b []byte) error {
	if _, err := s.prng.Read(b); err != nil {
		return fmt.Errorf("sampler read: %w", err)
	}
	return nil
}

// Bytes returns n fresh bytes.
func (s *Sampler) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := s.Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Intn returns a value in [0, n) by rejection sampling.
func (s *Sampler) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("sampler: n must be > 0")
	}
	var buf [8]byte
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		if err := s.Fill(buf[:]); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % bound), nil
		}
	}
}
