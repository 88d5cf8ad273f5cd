package analysis

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/narrowway/go-narrowway"
)

// DigestSize is the length of a Monte-Carlo digest in bytes.
const DigestSize = 32

// MonteCarloResult summarizes an encryption chain.
type MonteCarloResult struct {
	Iterations int      `json:"iterations"`
	Digest     HexBytes `json:"digest"`
	Final      HexBytes `json:"final"`
}

// MonteCarlo starts from the all-zero block and encrypts it in place
// iterations times. Every intermediate ciphertext is absorbed into SHAKE256;
// the result carries the squeezed digest and the last block.
func MonteCarlo(c narrowway.Cipher, iterations int) (MonteCarloResult, error) {
	if c == nil {
		return MonteCarloResult{}, narrowway.ErrNilCipher
	}
	if iterations <= 0 {
		return MonteCarloResult{}, errors.New("montecarlo: iterations must be > 0")
	}
	block := make([]byte, c.BlockSize())
	h := sha3.NewShake256()
	for i := 0; i < iterations; i++ {
		if err := c.EncryptBlock(block, block); err != nil {
			return MonteCarloResult{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		h.Write(block)
	}
	digest := make([]byte, DigestSize)
	if _, err := h.Read(digest); err != nil {
		return MonteCarloResult{}, fmt.Errorf("shake256: %w", err)
	}
	return MonteCarloResult{Iterations: iterations, Digest: digest, Final: block}, nil
}
