// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bkdf implements bcrypt_pbkdf, the password-based key derivation
// function used by OpenSSH for private key encryption.
//
// bcrypt_pbkdf is PBKDF2 with the HMAC pseudo-random function replaced by a
// Blowfish-based hash ("bhash"). It inherits bcrypt's cache-hard cost profile
// while producing arbitrary-length keys.
//
// # Quick Start
//
// Direct derivation (recommended for most cases):
//
//	key, err := bkdf.Key(password, salt, 16, 32)
//	if err != nil {
//	    // invalid parameters
//	}
//
// Caller-provided output and scratch (no per-call buffers):
//
//	var s bkdf.Scratch
//	key := make([]byte, 32)
//	err := bkdf.DeriveKey(key, password, salt, 16, &s)
//
// Builder API binds the cost once and derives repeatedly:
//
//	d := bkdf.New(16).Build()
//	k1, err := d.Key(password1, salt1, 32)
//	k2, err := d.Key(password2, salt2, 64)
//
// # Parameters
//
// The parameter contract follows OpenBSD's bcrypt_pbkdf:
//
//   - rounds >= 1
//   - password and salt non-empty
//   - key length in 1..[MaxKeyLen] (1024 bytes)
//
// Violations return sentinel errors ([ErrRounds], [ErrPassword], [ErrSalt],
// [ErrKeyLen]); see [IsParam] for classification. OpenSSH uses rounds=16 for
// its default key encryption; use [CalibrateRounds] to pick a cost for a
// target derivation time on the deploy host.
//
// # Determinism
//
// Derivation is a pure function of (password, salt, rounds, key length).
// Output is byte-identical on every supported target: all order-sensitive
// steps use explicit byte orders (the bhash seed is read big-endian, its
// output emitted little-endian, block counters are big-endian), and no step
// depends on the host word size. [Target] reports the build-time profile;
// it never influences results.
//
// # Constrained Targets
//
// The core derivation works without an operating system runtime. All working
// state lives in a caller-provided [Scratch] (statically sized, zero value
// ready to use), so no scratch buffers are allocated per call.
//
// Capabilities that require a runtime are compiled only on hosted builds and
// fail to compile on bare-metal builds (TinyGo sets the baremetal tag on
// no-OS targets):
//
//	NewSalt          ambient entropy (crypto/rand)
//	CalibrateRounds  wall-clock timing
//	ScratchPool      cross-goroutine scratch recycling
//
// The [Hosted] constant reports which flavor was built.
//
// # Scratch Reuse
//
// A zero-value Scratch is ready to use and reusable across derivations of
// any length. A Scratch must not be shared by concurrent derivations; for
// worker pools, recycle scratches through a [ScratchPool]:
//
//	pool := bkdf.NewScratchPool(64)
//
//	s := pool.Get()
//	err := bkdf.DeriveKey(key, password, salt, rounds, s)
//	pool.Put(s)
//
// # Dependencies
//
// This package uses [golang.org/x/crypto/blowfish] for the Blowfish key
// schedule and cipher (it exposes the salted expansion bcrypt requires),
// and [code.hybscloud.com/lfq] for the lock-free scratch free list.
package bkdf
