package narrowway

import (
	"errors"
	"testing"
)

func TestVariantParameters(t *testing.T) {
	tests := []struct {
		v                        Variant
		key, block, rows, rounds int
		name                     string
	}{
		{Variant256, 32, 32, 4, 16, "NarrowWay-256"},
		{Variant384, 48, 48, 6, 18, "NarrowWay-384"},
		{Variant512, 64, 64, 8, 20, "NarrowWay-512"},
	}
	for _, tt := range tests {
		if !tt.v.Valid() {
			t.Errorf("%d: not valid", tt.v)
		}
		if tt.v.KeySize() != tt.key || tt.v.BlockSize() != tt.block {
			t.Errorf("%s: key/block = %d/%d, want %d/%d", tt.v, tt.v.KeySize(), tt.v.BlockSize(), tt.key, tt.block)
		}
		if tt.v.rows() != tt.rows || tt.v.Rounds() != tt.rounds {
			t.Errorf("%s: rows/rounds = %d/%d, want %d/%d", tt.v, tt.v.rows(), tt.v.Rounds(), tt.rows, tt.rounds)
		}
		if tt.v.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.v.String(), tt.name)
		}
	}

	bad := Variant(128)
	if bad.Valid() || bad.BlockSize() != 0 || bad.Rounds() != 0 {
		t.Errorf("Variant(128) should be invalid with zero sizes")
	}
	if bad.String() != "Variant(128)" {
		t.Errorf("String() = %q", bad.String())
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"256", Variant256, false},
		{" 384 ", Variant384, false},
		{"nw512", Variant512, false},
		{"NW256", Variant256, false},
		{"NarrowWay-384", Variant384, false},
		{"128", 0, true},
		{"", 0, true},
		{"aes", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Errorf("got err=%v, want ErrUnknownVariant", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestNewCipherUnknownVariant(t *testing.T) {
	c, err := NewCipher(Variant(1024), make([]byte, 128))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("got err=%v, want ErrUnknownVariant", err)
	}
	if c != nil {
		t.Error("got a cipher for an unknown variant")
	}
}
