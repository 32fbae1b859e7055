// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !baremetal

package bkdf

// Hosted is true when the build targets an environment with an operating
// system runtime. Hosted-only capabilities (NewSalt, CalibrateRounds,
// ScratchPool) are available.
const Hosted = true
