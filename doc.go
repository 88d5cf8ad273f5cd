// Package narrowway implements the NarrowWay family of block ciphers, which
// encrypt 256, 384 or 512-bit blocks under a key of the same width.
//
// Each variant is a substitution-permutation network over a state matrix of
// 8-byte rows (4, 6 or 8 rows). A round shifts the columns, passes every row
// through its own key-dependent S-box, then mixes each row with an
// xor/rotate function and the row's round key.
//
//	| Variant    | Key      | Block    | Rounds |
//	|------------|----------|----------|--------|
//	| Cipher256  | 32 bytes | 32 bytes | 16     |
//	| Cipher384  | 48 bytes | 48 bytes | 18     |
//	| Cipher512  | 64 bytes | 64 bytes | 20     |
//
// # Basic Usage
//
//	key := make([]byte, narrowway.KeySize256)
//	// Fill key with cryptographically secure random bytes
//
//	c, err := narrowway.NewCipher256(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext := make([]byte, c.BlockSize())
//	if err := c.EncryptBlock(ciphertext, plaintext); err != nil {
//	    log.Fatal(err) // plaintext was not exactly 32 bytes
//	}
//
// The variant can also be chosen at run time:
//
//	v, err := narrowway.ParseVariant("512")
//	c, err := narrowway.NewCipher(v, key)
//
// Every cipher implements crypto/cipher.Block, so the modes of the standard
// library can be layered on top. This package itself only encrypts single
// blocks: it provides no chaining modes, no padding and no key derivation.
//
// # Errors
//
// Keys and blocks are never truncated or padded. A key of the wrong length
// fails with ErrInvalidKeyLength and a block of the wrong length fails with
// ErrInvalidBlockLength; in the latter case nothing is written to dst.
// Errors wrap these sentinels, so test them with errors.Is.
//
// # Thread Safety
//
// The key schedule is expanded once at construction and never modified, and
// every call keeps its working state on its own stack. A cipher instance is
// therefore safe for concurrent use by multiple goroutines.
//
// # Side Channels
//
// S-box lookups are table driven and depend on secret data. The
// implementation makes no constant-time guarantee.
package narrowway
