// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf

import (
	"crypto/sha512"
	"encoding/binary"
)

// MaxKeyLen is the maximum derivable key length in bytes, matching
// OpenBSD's bcrypt_pbkdf limit (32 blocks of 32 bytes).
const MaxKeyLen = bhashSize * bhashSize

// Key derives a key of keyLen bytes from password and salt using rounds
// cost iterations. It allocates the output and a transient scratch; use
// [DeriveKey] to control both.
func Key(password, salt []byte, rounds, keyLen int) ([]byte, error) {
	if keyLen < 1 || keyLen > MaxKeyLen {
		return nil, ErrKeyLen
	}
	key := make([]byte, keyLen)
	var s Scratch
	if err := DeriveKey(key, password, salt, rounds, &s); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey fills key with a derived key, using s as working storage.
// A nil s uses a transient scratch.
//
// The key length is len(key), which must be in 1..[MaxKeyLen]; rounds must
// be >= 1; password and salt must be non-empty. No buffers beyond the
// scratch are allocated, and the output depends only on the inputs, never
// on the build target.
func DeriveKey(key, password, salt []byte, rounds int, s *Scratch) error {
	switch {
	case rounds < 1:
		return ErrRounds
	case len(password) == 0:
		return ErrPassword
	case len(salt) == 0:
		return ErrSalt
	case len(key) == 0 || len(key) > MaxKeyLen:
		return ErrKeyLen
	}
	if s == nil {
		s = new(Scratch)
	}

	// PBKDF2 with bhash as the PRF: one 32-byte block per stride slot,
	// XOR-accumulated over rounds iterations.
	stride := (len(key) + bhashSize - 1) / bhashSize
	gen := s.gen[:stride*bhashSize]

	s.hpass = sha512.Sum512(password)
	for block := 1; block <= stride; block++ {
		binary.BigEndian.PutUint32(s.ctr[:], uint32(block))
		h := s.digest()
		h.Write(salt)
		h.Write(s.ctr[:])
		h.Sum(s.hsalt[:0])

		bhash(&s.u, &s.hpass, &s.hsalt)
		acc := gen[(block-1)*bhashSize : block*bhashSize]
		copy(acc, s.u[:])

		for i := 1; i < rounds; i++ {
			h = s.digest()
			h.Write(s.u[:])
			h.Sum(s.hsalt[:0])

			bhash(&s.u, &s.hpass, &s.hsalt)
			for j := range acc {
				acc[j] ^= s.u[j]
			}
		}
	}

	// bcrypt_pbkdf's output shuffle: byte i comes from block i%stride,
	// offset i/stride. Truncating the key therefore changes every block's
	// contribution, not just the tail.
	for i := range key {
		key[i] = gen[(i%stride)*bhashSize+i/stride]
	}
	return nil
}
