// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf

import (
	"crypto/sha512"
	"encoding/binary"

	"golang.org/x/crypto/blowfish"
)

const (
	bhashWords = 8
	bhashSize  = bhashWords * 4
)

// bhashSeed is the plaintext encrypted by the bhash core. The choice of
// seed is arbitrary but fixed by the OpenBSD reference implementation.
const bhashSeed = "OxychromaticBlowfishSwatDynamite"

// bhash is the bcrypt_pbkdf pseudo-random function: a bcrypt variant keyed
// with SHA-512(password) and salted with a per-block SHA-512 digest.
//
// The Blowfish state is expanded with the salted schedule, then hardened
// with 64 alternating plain expansions. The 32-byte seed is read as
// big-endian words by the cipher and the result is emitted little-endian,
// so the output is byte-identical regardless of host byte order.
func bhash(out *[bhashSize]byte, hpass, hsalt *[sha512.Size]byte) {
	c, err := blowfish.NewSaltedCipher(hpass[:], hsalt[:])
	if err != nil {
		// Key material has fixed nonzero size; NewSaltedCipher cannot fail.
		panic("bkdf: " + err.Error())
	}
	for i := 0; i < 64; i++ {
		blowfish.ExpandKey(hsalt[:], c)
		blowfish.ExpandKey(hpass[:], c)
	}

	copy(out[:], bhashSeed)
	for i := 0; i < 64; i++ {
		for j := 0; j < bhashSize; j += blowfish.BlockSize {
			c.Encrypt(out[j:j+blowfish.BlockSize], out[j:j+blowfish.BlockSize])
		}
	}

	// bcrypt_pbkdf swaps the cipher's big-endian words to little-endian.
	for i := 0; i < bhashWords; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], binary.BigEndian.Uint32(out[i*4:]))
	}
}
