package narrowway

import (
	"crypto/cipher"
	"fmt"
)

// Cipher is the capability set shared by Cipher256, Cipher384 and Cipher512.
//
// EncryptBlock and DecryptBlock require len(dst) == len(src) == BlockSize()
// and report ErrInvalidBlockLength otherwise, without writing to dst.
// Encrypt and Decrypt follow crypto/cipher.Block: they process the first
// block of src and panic if either buffer is shorter than a block.
// dst and src may point at the same memory.
type Cipher interface {
	cipher.Block
	Variant() Variant
	KeySize() int
	EncryptBlock(dst, src []byte) error
	DecryptBlock(dst, src []byte) error
}

var (
	_ Cipher = (*Cipher256)(nil)
	_ Cipher = (*Cipher384)(nil)
	_ Cipher = (*Cipher512)(nil)
)

// NewCipher returns the cipher of variant v keyed with key. On error the
// returned Cipher is nil.
func NewCipher(v Variant, key []byte) (Cipher, error) {
	switch v {
	case Variant256:
		c, err := NewCipher256(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Variant384:
		c, err := NewCipher384(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Variant512:
		c, err := NewCipher512(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
}

func encryptChecked(s *schedule, dst, src []byte) error {
	if s == nil {
		return ErrNilCipher
	}
	if err := s.checkBlocks(dst, src); err != nil {
		return err
	}
	s.encryptBlock(dst, src)
	return nil
}

func decryptChecked(s *schedule, dst, src []byte) error {
	if s == nil {
		return ErrNilCipher
	}
	if err := s.checkBlocks(dst, src); err != nil {
		return err
	}
	s.decryptBlock(dst, src)
	return nil
}

func mustSchedule(s *schedule) *schedule {
	if s == nil {
		panic(ErrNilCipher)
	}
	return s
}

func checkFullBlock(dst, src []byte, bs int) {
	if len(src) < bs {
		panic("narrowway: input not full block")
	}
	if len(dst) < bs {
		panic("narrowway: output not full block")
	}
}

// Cipher256 is NarrowWay with 32-byte keys and blocks.
type Cipher256 struct {
	s *schedule
}

// NewCipher256 expands a 32-byte key. Any other length fails with ErrInvalidKeyLength.
func NewCipher256(key []byte) (*Cipher256, error) {
	s, err := expand(key, Variant256)
	if err != nil {
		return nil, err
	}
	return &Cipher256{s: s}, nil
}

func (c *Cipher256) sched() *schedule {
	if c == nil {
		return nil
	}
	return c.s
}

// Variant returns Variant256.
func (c *Cipher256) Variant() Variant { return Variant256 }

// KeySize returns the key size in bytes, 32.
func (c *Cipher256) KeySize() int { return KeySize256 }

// BlockSize returns the block size in bytes, 32.
func (c *Cipher256) BlockSize() int { return BlockSize256 }

// EncryptBlock encrypts the 32-byte block src into dst.
func (c *Cipher256) EncryptBlock(dst, src []byte) error {
	return encryptChecked(c.sched(), dst, src)
}

// DecryptBlock decrypts the 32-byte block src into dst.
func (c *Cipher256) DecryptBlock(dst, src []byte) error {
	return decryptChecked(c.sched(), dst, src)
}

// Encrypt encrypts the first block of src into dst.
func (c *Cipher256) Encrypt(dst, src []byte) {
	s := mustSchedule(c.sched())
	checkFullBlock(dst, src, BlockSize256)
	s.encryptBlock(dst[:BlockSize256], src[:BlockSize256])
}

// Decrypt decrypts the first block of src into dst.
func (c *Cipher256) Decrypt(dst, src []byte) {
	s := mustSchedule(c.sched())
	checkFullBlock(dst, src, BlockSize256)
	s.decryptBlock(dst[:BlockSize256], src[:BlockSize256])
}

// EncryptArray encrypts a block held in a fixed-size array.
func (c *Cipher256) EncryptArray(b [BlockSize256]byte) [BlockSize256]byte {
	mustSchedule(c.sched()).encryptBlock(b[:], b[:])
	return b
}

// DecryptArray decrypts a block held in a fixed-size array.
func (c *Cipher256) DecryptArray(b [BlockSize256]byte) [BlockSize256]byte {
	mustSchedule(c.sched()).decryptBlock(b[:], b[:])
	return b
}

// Cipher384 is NarrowWay with 48-byte keys and blocks.
type Cipher384 struct {
	s *schedule
}

// NewCipher384 expands a 48-byte key. Any other length fails with ErrInvalidKeyLength.
func NewCipher384(key []byte) (*Cipher384, error) {
	s, err := expand(key, Variant384)
	if err != nil {
		return nil, err
	}
	return &Cipher384{s: s}, nil
}

func (c *Cipher384) sched() *schedule {
	if c == nil {
		return nil
	}
	return c.s
}

// Variant returns Variant384.
func (c *Cipher384) Variant() Variant { return Variant384 }

// KeySize returns the key size in bytes, 48.
func (c *Cipher384) KeySize() int { return KeySize384 }

// BlockSize returns the block size in bytes, 48.
func (c *Cipher384) BlockSize() int { return BlockSize384 }

// EncryptBlock encrypts the 48-byte block src into dst.
func (c *Cipher384) EncryptBlock(dst, src []byte) error {
	return encryptChecked(c.sched(), dst, src)
}

// DecryptBlock decrypts the 48-byte block src into dst.
func (c *Cipher384) DecryptBlock(dst, src []byte) error {
	return decryptChecked(c.sched(), dst, src)
}

// Encrypt encrypts the first block of src into dst.
func (c *Cipher384) Encrypt(dst, src []byte) {
	s := mustSchedule(c.sched())
	checkFullBlock(dst, src, BlockSize384)
	s.encryptBlock(dst[:BlockSize384], src[:BlockSize384])
}

// Decrypt decrypts the first block of src into dst.
func (c *Cipher384) Decrypt(dst, src []byte) {
	s := mustSchedule(c.sched())
	checkFullBlock(dst, src, BlockSize384)
	s.decryptBlock(dst[:BlockSize384], src[:BlockSize384])
}

// EncryptArray encrypts a block held in a fixed-size array.
func (c *Cipher384) EncryptArray(b [BlockSize384]byte) [BlockSize384]byte {
	mustSchedule(c.sched()).encryptBlock(b[:], b[:])
	return b
}

// DecryptArray decrypts a block held in a fixed-size array.
func (c *Cipher384) DecryptArray(b [BlockSize384]byte) [BlockSize384]byte {
	mustSchedule(c.sched()).decryptBlock(b[:], b[:])
	return b
}

// Cipher512 is NarrowWay with 64-byte keys and blocks.
type Cipher512 struct {
	s *schedule
}

// NewCipher512 expands a 64-byte key. Any other length fails with ErrInvalidKeyLength.
func NewCipher512(key []byte) (*Cipher512, error) {
	s, err := expand(key, Variant512)
	if err != nil {
		return nil, err
	}
	return &Cipher512{s: s}, nil
}

func (c *Cipher512) sched() *schedule {
	if c == nil {
		return nil
	}
	return c.s
}

// Variant returns Variant512.
func (c *Cipher512) Variant() Variant { return Variant512 }

// KeySize returns the key size in bytes, 64.
func (c *Cipher512) KeySize() int { return KeySize512 }

// BlockSize returns the block size in bytes, 64.
func (c *Cipher512) BlockSize() int { return BlockSize512 }

// EncryptBlock encrypts the 64-byte block src into dst.
func (c *Cipher512) EncryptBlock(dst, src []byte) error {
	return encryptChecked(c.sched(), dst, src)
}

// DecryptBlock decrypts the 64-byte block src into dst.
func (c *Cipher512) DecryptBlock(dst, src []byte) error {
	return decryptChecked(c.sched(), dst, src)
}

// Encrypt encrypts the first block of src into dst.
func (c *Cipher512) Encrypt(dst, src []byte) {
	s := mustSchedule(c.sched())
	checkFullBlock(dst, src, BlockSize512)
	s.encryptBlock(dst[:BlockSize512], src[:BlockSize512])
}

// Decrypt decrypts the first block of src into dst.
func (c *Cipher512) Decrypt(dst, src []byte) {
	s := mustSchedule(c.sched())
	checkFullBlock(dst, src, BlockSize512)
	s.decryptBlock(dst[:BlockSize512], src[:BlockSize512])
}

// EncryptArray encrypts a block held in a fixed-size array.
func (c *Cipher512) EncryptArray(b [BlockSize512]byte) [BlockSize512]byte {
	mustSchedule(c.sched()).encryptBlock(b[:], b[:])
	return b
}

// DecryptArray decrypts a block held in a fixed-size array.
func (c *Cipher512) DecryptArray(b [BlockSize512]byte) [BlockSize512]byte {
	mustSchedule(c.sched()).decryptBlock(b[:], b[:])
	return b
}
