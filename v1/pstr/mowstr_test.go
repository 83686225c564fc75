// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pstr

import (
	"testing"

	"github.com/pstr-go/pstr/v1/pool"
)

func TestMowStrLifecycle(t *testing.T) {
	m := Mow("hello")
	if !m.IsInterned() {
		t.Fatal("expected interned state after Mow")
	}

	m.PushStr(" ")
	if !m.IsMutable() {
		t.Fatal("expected mutable state after PushStr")
	}

	m.Mutdown().WriteString("world")
	if m.Str() != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", m.Str())
	}

	m.Intern()
	if !m.IsInterned() {
		t.Fatal("expected interned state after Intern")
	}

	o := Mow("hello world")
	a, ok := m.TryIStr()
	if !ok {
		t.Fatal("expected TryIStr to succeed on interned state")
	}
	b, ok := o.TryIStr()
	if !ok {
		t.Fatal("expected TryIStr to succeed on interned state")
	}
	if !a.Equal(b) {
		t.Fatal("expected committed content to share the pool record")
	}

	m.Release()
	o.Release()
}

func TestMowStrCopyOnWrite(t *testing.T) {
	a := Mow("mow-cow-content")
	b := a.Clone()
	defer b.Release()

	a.PushStr("!")
	if a.Str() != "mow-cow-content!" {
		t.Fatalf("unexpected mutated content %q", a.Str())
	}
	if b.Str() != "mow-cow-content" {
		t.Fatalf("expected clone untouched, got %q", b.Str())
	}
	a.Release()
}

func TestMowStrInternIdempotent(t *testing.T) {
	m := Mow("mow-idempotent-key")
	defer m.Release()
	before, _ := m.TryIStr()

	m.Intern() // no-op on interned state
	after, ok := m.TryIStr()
	if !ok || !before.Equal(after) {
		t.Fatal("expected record identity unchanged")
	}
}

func TestMowStrMutations(t *testing.T) {
	tests := []struct {
		note string
		init string
		op   func(*MowStr)
		want string
	}{
		{"push str", "ab", func(m *MowStr) { m.PushStr("cd") }, "abcd"},
		{"push rune", "ab", func(m *MowStr) { m.Push('é') }, "abé"},
		{"insert str", "ad", func(m *MowStr) { m.InsertStr(1, "bc") }, "abcd"},
		{"insert str front", "cd", func(m *MowStr) { m.InsertStr(0, "ab") }, "abcd"},
		{"insert rune", "ac", func(m *MowStr) { m.Insert(1, 'b') }, "abc"},
		{"truncate", "abcd", func(m *MowStr) { m.Truncate(2) }, "ab"},
		{"truncate past end", "ab", func(m *MowStr) { m.Truncate(5) }, "ab"},
		{"remove", "abc", func(m *MowStr) { m.Remove(1) }, "ac"},
		{"remove rune", "aéc", func(m *MowStr) { m.Remove(1) }, "ac"},
		{"retain", "a1b2c3", func(m *MowStr) { m.Retain(func(r rune) bool { return r >= 'a' }) }, "abc"},
		{"replace same length", "abcd", func(m *MowStr) { m.ReplaceRange(1, 3, "XY") }, "aXYd"},
		{"replace shorter", "abcd", func(m *MowStr) { m.ReplaceRange(1, 3, "X") }, "aXd"},
		{"replace longer", "abcd", func(m *MowStr) { m.ReplaceRange(1, 3, "XYZ") }, "aXYZd"},
		{"clear", "abcd", func(m *MowStr) { m.Clear() }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			m := Mow(tc.init)
			defer m.Release()
			tc.op(m)
			if m.Str() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, m.Str())
			}
		})
	}
}

func TestMowStrPop(t *testing.T) {
	m := Mow("aé")
	defer m.Release()

	r, ok := m.Pop()
	if !ok || r != 'é' {
		t.Fatalf("expected é, got %q (%v)", r, ok)
	}
	r, ok = m.Pop()
	if !ok || r != 'a' {
		t.Fatalf("expected a, got %q (%v)", r, ok)
	}
	if _, ok := m.Pop(); ok {
		t.Fatal("expected Pop on empty to report false")
	}
}

func TestMowStrSplitOff(t *testing.T) {
	m := Mow("headtail")
	defer m.Release()

	tail := m.SplitOff(4)
	defer tail.Release()

	if m.Str() != "head" || tail.Str() != "tail" {
		t.Fatalf("unexpected split %q / %q", m.Str(), tail.Str())
	}
	if !tail.IsMutable() {
		t.Fatal("expected split tail in the mutable state")
	}
}

func TestMowStrEqual(t *testing.T) {
	a := Mow("mow-equal-content")
	b := Mow("mow-equal-content")
	c := MowMut("mow-equal-content")
	d := Mow("other")
	defer a.Release()
	defer b.Release()
	defer c.Release()
	defer d.Release()

	if !a.Equal(b) {
		t.Fatal("expected interned pair equal")
	}
	if !a.Equal(c) || !c.Equal(a) {
		t.Fatal("expected equality across states")
	}
	if a.Equal(d) {
		t.Fatal("expected different content unequal")
	}
	if !a.EqualStr("mow-equal-content") {
		t.Fatal("expected EqualStr match")
	}
	if a.Compare(d) >= 0 {
		t.Fatal("expected mow-equal-content < other")
	}
}

func TestMowMutBypassesPool(t *testing.T) {
	const key = "mow-mut-bypass-key"
	p := pool.Default()

	m := MowMut(key)
	if !m.IsMutable() {
		t.Fatal("expected mutable state")
	}
	if p.Contains(key) {
		t.Fatal("expected mutable content to stay out of the pool")
	}

	m.Intern()
	if !p.Contains(key) {
		t.Fatal("expected content in the pool after Intern")
	}
	m.Release()
	if p.Contains(key) {
		t.Fatal("expected record removal after release")
	}
}

func TestMowStrCloneOfMutable(t *testing.T) {
	m := MowMut("mow-clone-mutable-key")
	c := m.Clone()
	defer c.Release()

	if !c.IsInterned() {
		t.Fatal("expected clone of mutable to start interned")
	}
	if c.Str() != "mow-clone-mutable-key" {
		t.Fatalf("unexpected clone content %q", c.Str())
	}

	m.PushStr("!")
	if c.Str() != "mow-clone-mutable-key" {
		t.Fatal("expected clone isolated from further mutation")
	}
	m.Release()
}

func TestMowStrConstructors(t *testing.T) {
	e := MowEmpty()
	if !e.IsMutable() || !e.IsEmpty() {
		t.Fatal("expected empty mutable MowStr")
	}
	e.Release()

	w := MowWithCapacity(128)
	buf, ok := w.TryBuf()
	if !ok {
		t.Fatal("expected mutable state")
	}
	if buf.Cap() < 128 {
		t.Fatalf("expected capacity >= 128, got %d", buf.Cap())
	}
	w.Release()

	s := Intern("from-istr-key")
	m := FromIStrMut(s)
	if !m.IsMutable() || m.Str() != "from-istr-key" {
		t.Fatalf("unexpected state or content %q", m.Str())
	}
	m.Release()
}

func TestMowStrZero(t *testing.T) {
	var m MowStr
	if !m.IsInterned() {
		t.Fatal("expected zero MowStr in the interned state")
	}
	if !m.IsEmpty() || m.Str() != "" {
		t.Fatal("expected empty content")
	}
	m.PushStr("x")
	if m.Str() != "x" {
		t.Fatalf("unexpected content %q", m.Str())
	}
	m.Release()
}

func TestMowStrTextRoundTrip(t *testing.T) {
	m := MowMut("mow-marshal-key")
	b, err := m.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	m.Release()

	var v MowStr
	if err := v.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !v.IsInterned() || v.Str() != "mow-marshal-key" {
		t.Fatalf("unexpected state or content %q", v.Str())
	}
	v.Release()

	if err := v.UnmarshalText([]byte{0xc0}); err == nil {
		t.Fatal("expected error for invalid utf-8")
	}
}
