// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf

import "errors"

// Parameter errors returned by [Key], [DeriveKey], and [Deriver] methods.
//
// These are static contract violations, not transient conditions: retrying
// with the same arguments always fails the same way. Match with [errors.Is]
// or classify with [IsParam].
var (
	// ErrRounds indicates rounds < 1.
	ErrRounds = errors.New("bkdf: rounds must be >= 1")

	// ErrPassword indicates an empty password.
	ErrPassword = errors.New("bkdf: empty password")

	// ErrSalt indicates an empty salt.
	ErrSalt = errors.New("bkdf: empty salt")

	// ErrKeyLen indicates a key length outside 1..MaxKeyLen.
	ErrKeyLen = errors.New("bkdf: key length must be in 1..1024")
)

// IsParam reports whether err is one of the parameter sentinel errors.
// Supports wrapped errors via [errors.Is].
func IsParam(err error) bool {
	return errors.Is(err, ErrRounds) ||
		errors.Is(err, ErrPassword) ||
		errors.Is(err, ErrSalt) ||
		errors.Is(err, ErrKeyLen)
}
