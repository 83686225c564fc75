// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pstr

import (
	"strings"
	"testing"
)

func BenchmarkIntern(b *testing.B) {
	base := Intern("benchmark-intern-content")
	defer base.Release()

	b.ReportAllocs()
	for b.Loop() {
		s := Intern("benchmark-intern-content")
		s.Release()
	}
}

func BenchmarkIStrEqual(b *testing.B) {
	long := strings.Repeat("equal content ", 1000)
	x := Intern(long)
	y := Intern(long)
	defer x.Release()
	defer y.Release()

	b.ReportAllocs()
	for b.Loop() {
		if !x.Equal(y) {
			b.Fatal("expected equal")
		}
	}
}

func BenchmarkMowAppendIntern(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		m := MowEmpty()
		for range 8 {
			m.PushStr("chunk")
		}
		m.Intern()
		m.Release()
	}
}
