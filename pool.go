// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !baremetal

package bkdf

import (
	"unsafe"

	"code.hybscloud.com/lfq"
)

// ScratchPool recycles Scratch states across goroutines.
//
// Derivation scratch is ~1.2KB; worker pools that derive many keys avoid
// churn by circulating scratches through a lock-free free list. Get never
// blocks: when the pool is drained it hands out a fresh scratch, and Put
// drops the scratch when the pool is full.
//
// Example:
//
//	pool := bkdf.NewScratchPool(64)
//
//	// per worker, per job:
//	s := pool.Get()
//	err := bkdf.DeriveKey(key, password, salt, rounds, s)
//	pool.Put(s)
type ScratchPool struct {
	q lfq.QueuePtr
}

// NewScratchPool creates a pool holding up to capacity idle scratches.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func NewScratchPool(capacity int) *ScratchPool {
	if capacity < 2 {
		panic("bkdf: pool capacity must be >= 2")
	}
	return &ScratchPool{q: lfq.New(capacity).BuildPtr()}
}

// Get returns an idle scratch, or a fresh one if the pool is drained.
func (p *ScratchPool) Get() *Scratch {
	ptr, err := p.q.Dequeue()
	if err != nil {
		return new(Scratch)
	}
	return (*Scratch)(ptr)
}

// Put returns a scratch to the pool. If the pool is full the scratch is
// dropped for the garbage collector. A nil scratch is ignored.
func (p *ScratchPool) Put(s *Scratch) {
	if s == nil {
		return
	}
	_ = p.q.Enqueue(unsafe.Pointer(s))
}

// Cap returns the pool capacity.
func (p *ScratchPool) Cap() int {
	return p.q.Cap()
}
