// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf

import (
	"encoding/binary"
	"math/bits"

	"code.hybscloud.com/bkdf/internal/bo"
)

// Profile describes the configuration the package was built for.
//
// Every field is fixed at build time. Derivation output never depends on
// the profile; it exists for diagnostics and for conformance tests that
// record which configuration produced a passing run.
type Profile struct {
	// WordSize is the host word size in bits (32 or 64).
	WordSize int

	// ByteOrder is the host's native byte order.
	ByteOrder binary.ByteOrder

	// Hosted reports whether an operating system runtime is available.
	Hosted bool
}

// Target returns the build-time profile.
func Target() Profile {
	return Profile{
		WordSize:  bits.UintSize,
		ByteOrder: bo.Native(),
		Hosted:    Hosted,
	}
}
