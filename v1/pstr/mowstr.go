// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pstr

import (
	"strings"
)

// MowStr is a mutable-on-write interned string. It is in exactly one of
// two states: interned, sharing a pool record through an IStr, or mutable,
// owning a private buffer the pool knows nothing about. Any mutating call
// moves it to the mutable state first, copying the shared content so a
// shared allocation is never mutated in place. Intern commits the buffer
// back to the pool.
//
// A MowStr is single-owner: mutating it from two goroutines requires
// external synchronization. The zero MowStr is an empty interned-state
// string holding no pool reference.
type MowStr struct {
	i   IStr
	buf *Buf // non-nil in the mutable state
}

// Mow interns s and returns a MowStr in the interned state.
func Mow(s string) *MowStr {
	return &MowStr{i: Intern(s)}
}

// MowMut returns a MowStr in the mutable state holding a private copy of
// s, bypassing the pool.
func MowMut(s string) *MowStr {
	b := bufPool.Get()
	b.WriteString(s)
	return &MowStr{buf: b}
}

// MowEmpty returns an empty MowStr in the mutable state.
func MowEmpty() *MowStr {
	return &MowStr{buf: bufPool.Get()}
}

// MowWithCapacity returns an empty mutable MowStr with room for n bytes.
func MowWithCapacity(n int) *MowStr {
	b := bufPool.Get()
	b.Grow(n)
	return &MowStr{buf: b}
}

// FromIStr returns a MowStr in the interned state, taking ownership of s's
// reference.
func FromIStr(s IStr) *MowStr {
	return &MowStr{i: s}
}

// FromIStrMut returns a MowStr in the mutable state initialized with s's
// content, taking ownership of (and releasing) s's reference.
func FromIStrMut(s IStr) *MowStr {
	m := FromIStr(s)
	m.ToMut()
	return m
}

// IsInterned reports whether m is in the interned state.
func (m *MowStr) IsInterned() bool {
	return m.buf == nil
}

// IsMutable reports whether m is in the mutable state.
func (m *MowStr) IsMutable() bool {
	return m.buf != nil
}

// ToMut moves m to the mutable state: the shared content is copied into a
// private buffer and the pool reference is released. No-op when already
// mutable.
func (m *MowStr) ToMut() {
	if m.buf != nil {
		return
	}
	b := bufPool.Get()
	b.WriteString(m.i.Str())
	old := m.i
	m.i = IStr{}
	m.buf = b
	old.Release()
}

// Mutdown moves m to the mutable state and returns the private buffer for
// batched mutation. The buffer is invalidated by Intern and Release.
func (m *MowStr) Mutdown() *Buf {
	m.ToMut()
	return m.buf
}

// Intern commits the buffer's content to the pool and returns m to the
// interned state, discarding the private buffer. No-op when already
// interned: the record identity is unchanged.
func (m *MowStr) Intern() {
	if m.buf == nil {
		return
	}
	s := Intern(m.buf.String())
	bufPool.Put(m.buf)
	m.buf = nil
	m.i = s
}

// TryIStr returns the underlying IStr when m is interned.
func (m *MowStr) TryIStr() (IStr, bool) {
	if m.buf != nil {
		return IStr{}, false
	}
	return m.i, true
}

// TryBuf returns the private buffer when m is mutable.
func (m *MowStr) TryBuf() (*Buf, bool) {
	if m.buf == nil {
		return nil, false
	}
	return m.buf, true
}

// Str returns the content regardless of state.
func (m *MowStr) Str() string {
	if m.buf != nil {
		return m.buf.String()
	}
	return m.i.Str()
}

// String implements fmt.Stringer.
func (m *MowStr) String() string {
	return m.Str()
}

// Len returns the content length in bytes.
func (m *MowStr) Len() int {
	if m.buf != nil {
		return m.buf.Len()
	}
	return m.i.Len()
}

// IsEmpty reports whether the content is empty.
func (m *MowStr) IsEmpty() bool {
	return m.Len() == 0
}

// PushStr appends s, transitioning to the mutable state first.
func (m *MowStr) PushStr(s string) {
	m.Mutdown().WriteString(s)
}

// Push appends a rune, transitioning to the mutable state first.
func (m *MowStr) Push(r rune) {
	m.Mutdown().WriteRune(r)
}

// InsertStr inserts s at byte index i.
func (m *MowStr) InsertStr(i int, s string) {
	m.Mutdown().InsertString(i, s)
}

// Insert inserts a rune at byte index i.
func (m *MowStr) Insert(i int, r rune) {
	m.Mutdown().InsertRune(i, r)
}

// Truncate shortens the content to n bytes.
func (m *MowStr) Truncate(n int) {
	m.Mutdown().Truncate(n)
}

// Pop removes and returns the last rune. Reports false when empty.
func (m *MowStr) Pop() (rune, bool) {
	return m.Mutdown().Pop()
}

// Remove removes and returns the rune at byte index i.
func (m *MowStr) Remove(i int) rune {
	return m.Mutdown().Remove(i)
}

// Retain keeps only the runes for which keep returns true.
func (m *MowStr) Retain(keep func(rune) bool) {
	m.Mutdown().Retain(keep)
}

// ReplaceRange replaces bytes [start, end) with repl.
func (m *MowStr) ReplaceRange(start, end int, repl string) {
	m.Mutdown().ReplaceRange(start, end, repl)
}

// SplitOff truncates m to [0, at) and returns the tail as a new mutable
// MowStr.
func (m *MowStr) SplitOff(at int) *MowStr {
	return MowMut(m.Mutdown().SplitOff(at))
}

// Clear removes all content, keeping the buffer's capacity.
func (m *MowStr) Clear() {
	m.Mutdown().Reset()
}

// Grow ensures the buffer has capacity for at least n more bytes,
// transitioning to the mutable state first.
func (m *MowStr) Grow(n int) {
	m.Mutdown().Grow(n)
}

// Clone returns an independent MowStr with equal content. An interned
// clone shares the record. A mutable receiver's content is committed
// through the pool instead of copied, since the private buffer must stay
// exclusively owned; the clone therefore starts interned.
func (m *MowStr) Clone() *MowStr {
	if m.buf == nil {
		return &MowStr{i: m.i.Clone()}
	}
	return &MowStr{i: Intern(m.buf.String())}
}

// Equal reports content equality regardless of state: an interned and a
// mutable MowStr holding the same bytes are equal.
func (m *MowStr) Equal(o *MowStr) bool {
	if m.buf == nil && o.buf == nil {
		return m.i.Equal(o.i)
	}
	return m.Str() == o.Str()
}

// EqualStr reports whether the content equals s.
func (m *MowStr) EqualStr(s string) bool {
	return m.Str() == s
}

// Compare orders by content bytes regardless of state.
func (m *MowStr) Compare(o *MowStr) int {
	if m.buf == nil && o.buf == nil {
		return m.i.Compare(o.i)
	}
	return strings.Compare(m.Str(), o.Str())
}

// Release drops the pool reference or recycles the private buffer,
// leaving m as the zero MowStr.
func (m *MowStr) Release() {
	if m.buf != nil {
		bufPool.Put(m.buf)
		m.buf = nil
		return
	}
	m.i.Release()
	m.i = IStr{}
}

// MarshalText implements encoding.TextMarshaler.
func (m *MowStr) MarshalText() ([]byte, error) {
	return []byte(m.Str()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The result is
// interned; any prior state is released.
func (m *MowStr) UnmarshalText(b []byte) error {
	s, err := InternBytes(b)
	if err != nil {
		return err
	}
	m.Release()
	m.i = s
	return nil
}
