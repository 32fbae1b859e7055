// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build baremetal

package bkdf

// Hosted is false on bare-metal builds (TinyGo sets the baremetal tag on
// no-OS targets). Hosted-only capabilities are compiled out; referencing
// them fails at build time rather than at runtime.
const Hosted = false
