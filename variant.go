package narrowway

import (
	"fmt"
	"strings"
)

// Variant selects one of the three NarrowWay widths.
type Variant int

const (
	// Variant256 uses 32-byte keys and blocks and 16 rounds.
	Variant256 Variant = 256
	// Variant384 uses 48-byte keys and blocks and 18 rounds.
	Variant384 Variant = 384
	// Variant512 uses 64-byte keys and blocks and 20 rounds.
	Variant512 Variant = 512
)

// Width-specific constants. Key size always equals block size in this family.
const (
	BlockSize256 = 32
	BlockSize384 = 48
	BlockSize512 = 64

	KeySize256 = BlockSize256
	KeySize384 = BlockSize384
	KeySize512 = BlockSize512

	Rounds256 = 16
	Rounds384 = 18
	Rounds512 = 20
)

// rowSize is the number of columns of the state matrix.
const rowSize = 8

// maxRows is the row count of the widest variant.
const maxRows = BlockSize512 / rowSize

// Variants lists the supported variants from narrowest to widest.
func Variants() []Variant {
	return []Variant{Variant256, Variant384, Variant512}
}

// ParseVariant accepts "256", "384", "512", optionally prefixed with "nw"
// or "narrowway-".
func ParseVariant(s string) (Variant, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "narrowway-")
	t = strings.TrimPrefix(t, "nw")
	switch t {
	case "256":
		return Variant256, nil
	case "384":
		return Variant384, nil
	case "512":
		return Variant512, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Valid reports whether v is one of the three supported variants.
func (v Variant) Valid() bool {
	switch v {
	case Variant256, Variant384, Variant512:
		return true
	}
	return false
}

// KeySize returns the key size in bytes, or 0 for an invalid variant.
func (v Variant) KeySize() int {
	return v.BlockSize()
}

// BlockSize returns the block size in bytes, or 0 for an invalid variant.
func (v Variant) BlockSize() int {
	if !v.Valid() {
		return 0
	}
	return int(v) / 8
}

// Rounds returns the fixed round count, or 0 for an invalid variant.
func (v Variant) Rounds() int {
	switch v {
	case Variant256:
		return Rounds256
	case Variant384:
		return Rounds384
	case Variant512:
		return Rounds512
	}
	return 0
}

func (v Variant) rows() int {
	return v.BlockSize() / rowSize
}

// String returns the variant name, for example "NarrowWay-256".
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return fmt.Sprintf("NarrowWay-%d", int(v))
}
