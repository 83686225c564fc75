// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package pstr provides interned strings backed by the process-wide pool.
//
// IStr is an immutable interned string: equal content shares a single
// pool-owned allocation, so equality is an identity check. MowStr layers a
// copy-on-write mutable state on top of IStr:
//
//	s := pstr.Mow("hello")
//	s.IsInterned() // true
//
//	s.PushStr(" ")
//	s.IsMutable() // true
//
//	s.Mutdown().WriteString("world")
//	s.Str() // "hello world"
//
//	s.Intern()
//	s.IsInterned() // true
package pstr

import (
	"strings"

	"github.com/pstr-go/pstr/v1/pool"
)

// IStr is an immutable interned string. An IStr holds a reference on its
// pool record; call Release when done so the pool can reclaim unused
// content. Copying an IStr value aliases the same reference; Clone buys an
// independent one.
//
// The zero IStr is an empty string holding no pool reference.
type IStr struct {
	h *pool.Handle
}

// Intern deduplicates s through the process-wide pool and returns a
// reference to its unique record.
func Intern(s string) IStr {
	h, err := pool.Default().Acquire(s)
	if err != nil {
		// The default pool is unbounded; Acquire cannot exhaust it.
		panic(err)
	}
	return IStr{h: h}
}

// InternBytes validates that b is UTF-8 text and interns it. Invalid bytes
// fail immediately; nothing is truncated or replaced.
func InternBytes(b []byte) (IStr, error) {
	h, err := pool.Default().AcquireBytes(b)
	if err != nil {
		return IStr{}, err
	}
	return IStr{h: h}, nil
}

// InternRunes interns the string spelled by rs.
func InternRunes(rs []rune) IStr {
	return Intern(string(rs))
}

// Str returns the interned content.
func (s IStr) Str() string {
	if s.h == nil {
		return ""
	}
	return s.h.String()
}

// String implements fmt.Stringer.
func (s IStr) String() string {
	return s.Str()
}

// Bytes returns a copy of the content.
func (s IStr) Bytes() []byte {
	return []byte(s.Str())
}

// Len returns the content length in bytes.
func (s IStr) Len() int {
	if s.h == nil {
		return 0
	}
	return s.h.Len()
}

// IsEmpty reports whether the content is empty.
func (s IStr) IsEmpty() bool {
	return s.Len() == 0
}

// IsZero reports whether s is the zero IStr, which holds no pool
// reference.
func (s IStr) IsZero() bool {
	return s.h == nil
}

// Hash64 returns the record's cached content hash. The zero IStr returns 0.
func (s IStr) Hash64() uint64 {
	if s.h == nil {
		return 0
	}
	return s.h.Hash64()
}

// Equal reports content equality. Both sides reference pool records and
// the pool holds one record per content, so this is an identity check
// independent of string length.
func (s IStr) Equal(o IStr) bool {
	if s.h != nil && o.h != nil {
		return s.h.Same(o.h)
	}
	return s.Str() == o.Str()
}

// Compare orders by content bytes. Use it for sorting; Equal is the cheap
// path for equality.
func (s IStr) Compare(o IStr) int {
	if s.h != nil && o.h != nil {
		return s.h.Compare(o.h)
	}
	return strings.Compare(s.Str(), o.Str())
}

// Clone returns an IStr with an independent reference to the same record.
func (s IStr) Clone() IStr {
	if s.h == nil {
		return IStr{}
	}
	return IStr{h: s.h.Clone()}
}

// Release drops this IStr's pool reference. The zero IStr is a no-op.
func (s IStr) Release() {
	if s.h != nil {
		s.h.Release()
	}
}

// Mow returns a MowStr in the interned state sharing this record. The
// receiver keeps its own reference.
func (s IStr) Mow() *MowStr {
	return FromIStr(s.Clone())
}

// MarshalText implements encoding.TextMarshaler.
func (s IStr) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, releasing any prior
// reference the receiver held.
func (s *IStr) UnmarshalText(b []byte) error {
	v, err := InternBytes(b)
	if err != nil {
		return err
	}
	s.Release()
	*s = v
	return nil
}
