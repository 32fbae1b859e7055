// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64 || 386 || arm || riscv64 || ppc64le || mipsle || mips64le || loong64 || wasm

package bo

import "encoding/binary"

// Native returns the native byte order on little-endian Go ports.
func Native() binary.ByteOrder { return binary.LittleEndian }
