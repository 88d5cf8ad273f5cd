package analysis

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/narrowway/go-narrowway"
)

// ErrMismatch is returned when a cipher output differs from a recorded vector.
var ErrMismatch = errors.New("analysis: vector mismatch")

//go:embed vectors.json
var defaultVectors []byte

// HexBytes is a byte slice encoded as a hex string in JSON.
type HexBytes []byte

// MarshalText encodes h as lowercase hex.
func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h)), nil
}

// UnmarshalText decodes hex text, with or without a 0x prefix.
func (h *HexBytes) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("hex: %w", err)
	}
	*h = b
	return nil
}

// String returns h as lowercase hex.
func (h HexBytes) String() string { return hex.EncodeToString(h) }

// Vector is a single-block known answer.
type Vector struct {
	Name       string   `json:"name"`
	Variant    string   `json:"variant"`
	Key        HexBytes `json:"key"`
	Plaintext  HexBytes `json:"plaintext"`
	Ciphertext HexBytes `json:"ciphertext"`
}

// MonteCarloVector pins the outcome of MonteCarlo for one key.
type MonteCarloVector struct {
	Name       string   `json:"name"`
	Variant    string   `json:"variant"`
	Key        HexBytes `json:"key"`
	Iterations int      `json:"iterations"`
	Digest     HexBytes `json:"digest"`
	Final      HexBytes `json:"final"`
}

// VectorSet is the content of a vector file.
type VectorSet struct {
	Vectors    []Vector           `json:"vectors"`
	MonteCarlo []MonteCarloVector `json:"monte_carlo"`
}

// Validate checks the variant and the key and block lengths.
func (v *Vector) Validate() error {
	variant, err := narrowway.ParseVariant(v.Variant)
	if err != nil {
		return err
	}
	if len(v.Key) != variant.KeySize() {
		return fmt.Errorf("key len=%d want %d", len(v.Key), variant.KeySize())
	}
	if len(v.Plaintext) != variant.BlockSize() {
		return fmt.Errorf("plaintext len=%d want %d", len(v.Plaintext), variant.BlockSize())
	}
	if len(v.Ciphertext) != variant.BlockSize() {
		return fmt.Errorf("ciphertext len=%d want %d", len(v.Ciphertext), variant.BlockSize())
	}
	return nil
}

// Check encrypts the plaintext and decrypts the ciphertext and compares both
// against the recorded values.
func (v *Vector) Check() error {
	variant, err := narrowway.ParseVariant(v.Variant)
	if err != nil {
		return err
	}
	c, err := narrowway.NewCipher(variant, v.Key)
	if err != nil {
		return err
	}
	out := make([]byte, c.BlockSize())
	if err := c.EncryptBlock(out, v.Plaintext); err != nil {
		return err
	}
	if !bytes.Equal(out, v.Ciphertext) {
		return fmt.Errorf("%w: %s encrypt got %x want %x", ErrMismatch, v.Name, out, []byte(v.Ciphertext))
	}
	if err := c.DecryptBlock(out, v.Ciphertext); err != nil {
		return err
	}
	if !bytes.Equal(out, v.Plaintext) {
		return fmt.Errorf("%w: %s decrypt got %x want %x", ErrMismatch, v.Name, out, []byte(v.Plaintext))
	}
	return nil
}

// Validate checks the variant, the lengths and the iteration count.
func (v *MonteCarloVector) Validate() error {
	variant, err := narrowway.ParseVariant(v.Variant)
	if err != nil {
		return err
	}
	if len(v.Key) != variant.KeySize() {
		return fmt.Errorf("key len=%d want %d", len(v.Key), variant.KeySize())
	}
	if v.Iterations <= 0 {
		return fmt.Errorf("iterations=%d must be > 0", v.Iterations)
	}
	if len(v.Digest) != DigestSize {
		return fmt.Errorf("digest len=%d want %d", len(v.Digest), DigestSize)
	}
	if len(v.Final) != variant.BlockSize() {
		return fmt.Errorf("final len=%d want %d", len(v.Final), variant.BlockSize())
	}
	return nil
}

// Check reruns the chain and compares digest and final block.
func (v *MonteCarloVector) Check() error {
	variant, err := narrowway.ParseVariant(v.Variant)
	if err != nil {
		return err
	}
	c, err := narrowway.NewCipher(variant, v.Key)
	if err != nil {
		return err
	}
	res, err := MonteCarlo(c, v.Iterations)
	if err != nil {
		return err
	}
	if !bytes.Equal(res.Digest, v.Digest) {
		return fmt.Errorf("%w: %s digest got %s want %s", ErrMismatch, v.Name, res.Digest, v.Digest)
	}
	if !bytes.Equal(res.Final, v.Final) {
		return fmt.Errorf("%w: %s final block got %s want %s", ErrMismatch, v.Name, res.Final, v.Final)
	}
	return nil
}

// Validate checks every vector of the set.
func (s *VectorSet) Validate() error {
	if len(s.Vectors) == 0 && len(s.MonteCarlo) == 0 {
		return errors.New("vector set is empty")
	}
	for i := range s.Vectors {
		if err := s.Vectors[i].Validate(); err != nil {
			return fmt.Errorf("vectors[%d] %s: %w", i, s.Vectors[i].Name, err)
		}
	}
	for i := range s.MonteCarlo {
		if err := s.MonteCarlo[i].Validate(); err != nil {
			return fmt.Errorf("monte_carlo[%d] %s: %w", i, s.MonteCarlo[i].Name, err)
		}
	}
	return nil
}

// Check runs every vector and returns the failures joined together.
func (s *VectorSet) Check() error {
	var errs []error
	for i := range s.Vectors {
		if err := s.Vectors[i].Check(); err != nil {
			errs = append(errs, err)
		}
	}
	for i := range s.MonteCarlo {
		if err := s.MonteCarlo[i].Check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadVectors decodes a vector set from JSON and validates it.
func LoadVectors(r io.Reader) (*VectorSet, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s VectorSet
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode vectors: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadVectorsFromFile opens path and decodes it with LoadVectors.
func LoadVectorsFromFile(path string) (*VectorSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vectors file: %w", err)
	}
	defer f.Close()
	return LoadVectors(f)
}

// DefaultVectors returns the vector set compiled into the package.
func DefaultVectors() (*VectorSet, error) {
	return LoadVectors(bytes.NewReader(defaultVectors))
}
