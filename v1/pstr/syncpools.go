// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pstr

import (
	"sync"
)

// bufPool recycles the private buffers behind MowStr's mutable state.
// Intern and Release return a MowStr's buffer here, so a hot
// mutate-then-commit loop reuses one allocation instead of growing a fresh
// buffer per transition.
// Needs a custom pool because of custom Put logic.
var bufPool = &mowBufPool{
	pool: sync.Pool{
		New: func() any {
			return &Buf{b: make([]byte, 0, 64)}
		},
	},
}

type mowBufPool struct{ pool sync.Pool }

func (p *mowBufPool) Get() *Buf {
	return p.pool.Get().(*Buf)
}

func (p *mowBufPool) Put(b *Buf) {
	if b != nil {
		b.Reset()
		p.pool.Put(b)
	}
}
