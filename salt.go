// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !baremetal

package bkdf

import "crypto/rand"

// NewSalt returns n cryptographically random salt bytes.
//
// Hosted builds only: constrained targets have no ambient entropy source,
// so salts there must come from the caller and this function does not
// compile.
func NewSalt(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrSalt
	}
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
