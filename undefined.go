// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// Undefined stands in for a class the reader has no factory for. Reading
// one just drains the framed record's bytes so that one unknown class does
// not poison the rest of a directory.
type Undefined struct {
	class string
}

func (u *Undefined) Class() string {
	if u.class == "" {
		return "Undefined"
	}
	return u.class
}

type undefinedFactoryT struct{}

func (undefinedFactoryT) ClassName() string { return "Undefined" }
func (undefinedFactoryT) New() Object       { return &Undefined{} }
func (undefinedFactoryT) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	start, cnt, _ := startRecord(r)
	r.Skip(int(cnt - (r.Pos() - start)))
	return endRecord(r, start, cnt)
}

var undefinedFactory ClassFactory = undefinedFactoryT{}
