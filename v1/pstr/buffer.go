// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pstr

import (
	"strconv"
	"unicode/utf8"
)

// Buf is the exclusively-owned, growable UTF-8 buffer behind a MowStr's
// mutable state. It is never registered in the intern pool and must not be
// shared across goroutines.
//
// Byte-indexed operations panic when the index does not lie on a rune
// boundary, like the index-based operations in package strings.
type Buf struct {
	b []byte
}

// Len returns the buffer length in bytes.
func (b *Buf) Len() int {
	return len(b.b)
}

// Cap returns the buffer capacity in bytes.
func (b *Buf) Cap() int {
	return cap(b.b)
}

// String returns a copy of the buffer's content.
func (b *Buf) String() string {
	return string(b.b)
}

// Bytes returns the buffer's content. The slice is only valid until the
// next mutation.
func (b *Buf) Bytes() []byte {
	return b.b
}

// Reset truncates the buffer to zero length, keeping its capacity.
func (b *Buf) Reset() {
	b.b = b.b[:0]
}

// Grow ensures capacity for at least n more bytes.
func (b *Buf) Grow(n int) {
	if n < 0 {
		panic("pstr: negative capacity")
	}
	if cap(b.b)-len(b.b) >= n {
		return
	}
	nb := make([]byte, len(b.b), len(b.b)+n)
	copy(nb, b.b)
	b.b = nb
}

// WriteString appends s to the buffer.
func (b *Buf) WriteString(s string) {
	b.b = append(b.b, s...)
}

// WriteRune appends the UTF-8 encoding of r to the buffer.
func (b *Buf) WriteRune(r rune) {
	b.b = utf8.AppendRune(b.b, r)
}

// InsertString inserts s at byte index i.
func (b *Buf) InsertString(i int, s string) {
	b.checkBoundary(i)
	b.b = append(b.b, s...)
	copy(b.b[i+len(s):], b.b[i:len(b.b)-len(s)])
	copy(b.b[i:], s)
}

// InsertRune inserts the UTF-8 encoding of r at byte index i.
func (b *Buf) InsertRune(i int, r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	b.InsertString(i, string(tmp[:n]))
}

// Truncate shortens the buffer to n bytes. No effect when n is not smaller
// than the current length.
func (b *Buf) Truncate(n int) {
	if n >= len(b.b) {
		return
	}
	b.checkBoundary(n)
	b.b = b.b[:n]
}

// Pop removes and returns the last rune. Reports false on an empty buffer.
func (b *Buf) Pop() (rune, bool) {
	if len(b.b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(b.b)
	b.b = b.b[:len(b.b)-size]
	return r, true
}

// Remove removes and returns the rune at byte index i, shifting the tail
// left.
func (b *Buf) Remove(i int) rune {
	if i >= len(b.b) {
		panic("pstr: byte index " + strconv.Itoa(i) + " out of range")
	}
	b.checkBoundary(i)
	r, size := utf8.DecodeRune(b.b[i:])
	copy(b.b[i:], b.b[i+size:])
	b.b = b.b[:len(b.b)-size]
	return r
}

// Retain keeps only the runes for which keep returns true, preserving
// their order. Operates in place.
func (b *Buf) Retain(keep func(rune) bool) {
	w := 0
	for i := 0; i < len(b.b); {
		r, size := utf8.DecodeRune(b.b[i:])
		if keep(r) {
			w += copy(b.b[w:], b.b[i:i+size])
		}
		i += size
	}
	b.b = b.b[:w]
}

// ReplaceRange replaces bytes [start, end) with repl. The replacement does
// not need to match the range's length.
func (b *Buf) ReplaceRange(start, end int, repl string) {
	if start > end {
		panic("pstr: range start " + strconv.Itoa(start) + " past end " + strconv.Itoa(end))
	}
	b.checkBoundary(start)
	b.checkBoundary(end)
	if len(repl) == end-start {
		copy(b.b[start:end], repl)
		return
	}
	tail := append([]byte(nil), b.b[end:]...)
	b.b = append(b.b[:start], repl...)
	b.b = append(b.b, tail...)
}

// SplitOff truncates the buffer to [0, at) and returns the tail [at, len)
// as a new string.
func (b *Buf) SplitOff(at int) string {
	b.checkBoundary(at)
	tail := string(b.b[at:])
	b.b = b.b[:at]
	return tail
}

func (b *Buf) checkBoundary(i int) {
	if i == 0 || i == len(b.b) {
		return
	}
	if i < 0 || i > len(b.b) {
		panic("pstr: byte index " + strconv.Itoa(i) + " out of range")
	}
	if !utf8.RuneStart(b.b[i]) {
		panic("pstr: byte index " + strconv.Itoa(i) + " is not a rune boundary")
	}
}
