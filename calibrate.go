// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !baremetal

package bkdf

import "time"

// calibrateProbeRounds is the cost of the timing probe. Small enough to be
// quick, large enough that per-call overhead does not dominate.
const calibrateProbeRounds = 4

// CalibrateRounds returns a cost such that deriving keyLen bytes takes
// approximately target wall-clock time on this host.
//
// The estimate times one probe derivation and scales linearly; the result
// is a starting point, not a guarantee. The returned cost is never below
// the probe cost. Hosted builds only: constrained targets have no clock to
// calibrate against, so this function does not compile there.
func CalibrateRounds(target time.Duration, keyLen int) (int, error) {
	if keyLen < 1 || keyLen > MaxKeyLen {
		return 0, ErrKeyLen
	}
	if target < 0 {
		target = 0
	}

	var (
		s   Scratch
		key [MaxKeyLen]byte
	)
	password := []byte("bkdf calibration probe")
	salt := []byte("bkdf calibration salt")

	start := time.Now()
	if err := DeriveKey(key[:keyLen], password, salt, calibrateProbeRounds, &s); err != nil {
		return 0, err
	}
	perRound := time.Since(start) / calibrateProbeRounds
	if perRound <= 0 {
		perRound = time.Nanosecond
	}

	rounds := int(target / perRound)
	if rounds < calibrateProbeRounds {
		rounds = calibrateProbeRounds
	}
	return rounds, nil
}
