// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// TObject is the root of ROOT's class hierarchy: a unique id and a bit
// field, with no framing of its own.
type TObject struct {
	id   uint32
	bits uint32
}

func (*TObject) Class() string { return "TObject" }

type tobjectFactory struct{}

func (tobjectFactory) ClassName() string { return "TObject" }
func (tobjectFactory) New() Object       { return &TObject{} }
func (tobjectFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TObject)
	obj.id, obj.bits = skipTObject(r)
	return r.Err()
}

func init() { registerSeed(tobjectFactory{}) }
