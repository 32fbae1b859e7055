// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bkdf

// Options configures deriver creation.
type Options struct {
	rounds  int
	scratch *Scratch
}

// Builder creates derivers with fluent configuration.
//
// Example:
//
//	// Fixed cost, private scratch
//	d := bkdf.New(16).Build()
//
//	// Fixed cost, caller-managed scratch
//	var s bkdf.Scratch
//	d := bkdf.New(16).Scratch(&s).Build()
type Builder struct {
	opts Options
}

// New creates a deriver builder with the given cost.
//
// Panics if rounds < 1; cost is a construction-time decision, not input
// data, so misconfiguration fails loudly.
func New(rounds int) *Builder {
	if rounds < 1 {
		panic("bkdf: rounds must be >= 1")
	}
	return &Builder{opts: Options{rounds: rounds}}
}

// Scratch attaches caller-managed working storage to the deriver.
// Without it, Build creates a private scratch.
func (b *Builder) Scratch(s *Scratch) *Builder {
	b.opts.scratch = s
	return b
}

// Build creates the configured Deriver.
func (b *Builder) Build() *Deriver {
	s := b.opts.scratch
	if s == nil {
		s = new(Scratch)
	}
	return &Deriver{rounds: b.opts.rounds, scratch: s}
}

// Deriver derives keys at a fixed cost, reusing one scratch across calls.
//
// A Deriver owns its scratch, so it must not be used by more than one
// goroutine at a time. Create one Deriver per worker, or use DeriveKey
// with a ScratchPool.
type Deriver struct {
	rounds  int
	scratch *Scratch
}

// Rounds returns the configured cost.
func (d *Deriver) Rounds() int {
	return d.rounds
}

// Key derives a key of keyLen bytes from password and salt.
func (d *Deriver) Key(password, salt []byte, keyLen int) ([]byte, error) {
	if keyLen < 1 || keyLen > MaxKeyLen {
		return nil, ErrKeyLen
	}
	key := make([]byte, keyLen)
	if err := d.DeriveKey(key, password, salt); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey fills key with a derived key of length len(key).
func (d *Deriver) DeriveKey(key, password, salt []byte) error {
	return DeriveKey(key, password, salt, d.rounds, d.scratch)
}
