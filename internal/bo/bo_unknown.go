// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64 && !386 && !arm && !riscv64 && !ppc64le && !mipsle && !mips64le && !loong64 && !wasm && !s390x && !ppc64 && !mips && !mips64

package bo

import (
	"encoding/binary"
	"unsafe"
)

// detectNative probes the machine's byte order once at init time.
func detectNative() binary.ByteOrder {
	var x uint16 = 0x0102
	b := *(*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 0x01 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

var native = detectNative()

// Native returns the probed byte order on otherwise-unknown ports.
func Native() binary.ByteOrder { return native }
