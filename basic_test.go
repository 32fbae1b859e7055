// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf_test

import (
	"bytes"
	"errors"
	"testing"

	"code.hybscloud.com/bkdf"
)

// =============================================================================
// Parameter Contract
// =============================================================================

func TestDeriveKeyParams(t *testing.T) {
	key := make([]byte, 32)
	password, salt := []byte("password"), []byte("salt")

	tests := []struct {
		name string
		run  func(s *bkdf.Scratch) error
		want error
	}{
		{"zero rounds", func(s *bkdf.Scratch) error {
			return bkdf.DeriveKey(key, password, salt, 0, s)
		}, bkdf.ErrRounds},
		{"negative rounds", func(s *bkdf.Scratch) error {
			return bkdf.DeriveKey(key, password, salt, -1, s)
		}, bkdf.ErrRounds},
		{"empty password", func(s *bkdf.Scratch) error {
			return bkdf.DeriveKey(key, nil, salt, 4, s)
		}, bkdf.ErrPassword},
		{"empty salt", func(s *bkdf.Scratch) error {
			return bkdf.DeriveKey(key, password, nil, 4, s)
		}, bkdf.ErrSalt},
		{"empty key", func(s *bkdf.Scratch) error {
			return bkdf.DeriveKey(nil, password, salt, 4, s)
		}, bkdf.ErrKeyLen},
		{"oversized key", func(s *bkdf.Scratch) error {
			return bkdf.DeriveKey(make([]byte, bkdf.MaxKeyLen+1), password, salt, 4, s)
		}, bkdf.ErrKeyLen},
	}

	var s bkdf.Scratch
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(&s)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !bkdf.IsParam(err) {
				t.Fatalf("IsParam(%v) = false, want true", err)
			}
		})
	}
}

func TestKeyLenBounds(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")

	if _, err := bkdf.Key(password, salt, 4, 0); !errors.Is(err, bkdf.ErrKeyLen) {
		t.Fatalf("Key(len=0): got %v, want ErrKeyLen", err)
	}
	if _, err := bkdf.Key(password, salt, 4, bkdf.MaxKeyLen+1); !errors.Is(err, bkdf.ErrKeyLen) {
		t.Fatalf("Key(len=%d): got %v, want ErrKeyLen", bkdf.MaxKeyLen+1, err)
	}

	// Boundary lengths succeed.
	key, err := bkdf.Key(password, salt, 1, 1)
	if err != nil {
		t.Fatalf("Key(len=1): %v", err)
	}
	if len(key) != 1 {
		t.Fatalf("Key(len=1): got %d bytes", len(key))
	}
	key, err = bkdf.Key(password, salt, 1, bkdf.MaxKeyLen)
	if err != nil {
		t.Fatalf("Key(len=%d): %v", bkdf.MaxKeyLen, err)
	}
	if len(key) != bkdf.MaxKeyLen {
		t.Fatalf("Key(len=%d): got %d bytes", bkdf.MaxKeyLen, len(key))
	}
}

func TestIsParamRejectsOtherErrors(t *testing.T) {
	if bkdf.IsParam(nil) {
		t.Fatal("IsParam(nil) = true, want false")
	}
	if bkdf.IsParam(errors.New("unrelated")) {
		t.Fatal("IsParam(unrelated) = true, want false")
	}
}

// =============================================================================
// Builder
// =============================================================================

func TestNewPanicsOnBadRounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0): expected panic")
		}
	}()
	bkdf.New(0)
}

func TestDeriverRounds(t *testing.T) {
	d := bkdf.New(8).Build()
	if d.Rounds() != 8 {
		t.Fatalf("Rounds: got %d, want 8", d.Rounds())
	}
}

func TestDeriverKeyLenBounds(t *testing.T) {
	d := bkdf.New(4).Build()
	if _, err := d.Key([]byte("password"), []byte("salt"), 0); !errors.Is(err, bkdf.ErrKeyLen) {
		t.Fatalf("Deriver.Key(len=0): got %v, want ErrKeyLen", err)
	}
}

func TestBuilderAttachedScratch(t *testing.T) {
	var s bkdf.Scratch
	d := bkdf.New(4).Scratch(&s).Build()

	key, err := d.Key([]byte("password"), []byte("salt"), 32)
	if err != nil {
		t.Fatalf("Deriver.Key: %v", err)
	}

	// The attached scratch must be interchangeable with any other.
	fresh := make([]byte, 32)
	if err := bkdf.DeriveKey(fresh, []byte("password"), []byte("salt"), 4, nil); err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if !bytes.Equal(key, fresh) {
		t.Fatalf("attached scratch changed output: got %x, want %x", key, fresh)
	}
}

// =============================================================================
// Determinism
// =============================================================================

func TestDeriveKeyDeterministic(t *testing.T) {
	password, salt := []byte("correct horse battery staple"), []byte("tr0ub4dor")

	first, err := bkdf.Key(password, salt, 4, 48)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	for i := range 3 {
		again, err := bkdf.Key(password, salt, 4, 48)
		if err != nil {
			t.Fatalf("Key(#%d): %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Key(#%d): got %x, want %x", i, again, first)
		}
	}
}

func TestNilScratchMatchesExplicit(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")

	withNil := make([]byte, 32)
	if err := bkdf.DeriveKey(withNil, password, salt, 4, nil); err != nil {
		t.Fatalf("DeriveKey(nil scratch): %v", err)
	}

	var s bkdf.Scratch
	withScratch := make([]byte, 32)
	if err := bkdf.DeriveKey(withScratch, password, salt, 4, &s); err != nil {
		t.Fatalf("DeriveKey(scratch): %v", err)
	}

	if !bytes.Equal(withNil, withScratch) {
		t.Fatalf("scratch choice changed output: %x vs %x", withNil, withScratch)
	}
}

func TestWipedScratchStillDerives(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")

	var s bkdf.Scratch
	before := make([]byte, 32)
	if err := bkdf.DeriveKey(before, password, salt, 4, &s); err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	s.Wipe()

	after := make([]byte, 32)
	if err := bkdf.DeriveKey(after, password, salt, 4, &s); err != nil {
		t.Fatalf("DeriveKey after Wipe: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatalf("Wipe changed output: got %x, want %x", after, before)
	}
}
