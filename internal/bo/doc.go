// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo reports the native byte order of the build target.
//
// Selection is a build-time decision: known ports resolve through build
// tags, everything else falls back to a one-time runtime probe. The
// derivation core never consults this package; it exists so the package
// can report the target profile it was built for.
package bo
