// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf

import (
	"crypto/sha512"
	"hash"
)

// Scratch holds all working state of a derivation.
//
// The zero value is ready to use. Sizes are fixed at compile time
// (MaxKeyLen bounds the staging area), so a derivation performs no
// scratch allocation regardless of key length; on constrained targets a
// Scratch can live in static storage.
//
// A Scratch is reusable across derivations of any length, but must not be
// used by more than one derivation at a time. For concurrent workers,
// recycle scratches through a ScratchPool instead of sharing one.
type Scratch struct {
	h     hash.Hash // SHA-512 state, created on first use, reused via Reset
	hpass [sha512.Size]byte
	hsalt [sha512.Size]byte
	u     [bhashSize]byte
	ctr   [4]byte
	gen   [MaxKeyLen]byte
}

// digest returns the scratch's SHA-512 state, reset and ready for input.
func (s *Scratch) digest() hash.Hash {
	if s.h == nil {
		s.h = sha512.New()
	} else {
		s.h.Reset()
	}
	return s.h
}

// Wipe clears key-dependent state from the scratch.
//
// DeriveKey overwrites the scratch on every call, so Wipe is only needed
// when a scratch is about to outlive its last derivation (long-lived pools,
// static storage on constrained targets).
func (s *Scratch) Wipe() {
	clear(s.hpass[:])
	clear(s.hsalt[:])
	clear(s.u[:])
	clear(s.ctr[:])
	clear(s.gen[:])
	if s.h != nil {
		s.h.Reset()
	}
}
