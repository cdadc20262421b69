// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// TString is a length-prefixed ROOT string, unframed (no byte-count header
// of its own).
type TString string

func (TString) Class() string { return "TString" }

type tstringFactory struct{}

func (tstringFactory) ClassName() string { return "TString" }
func (tstringFactory) New() Object       { var s TString; return &s }
func (tstringFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	*(o.(*TString)) = TString(r.ReadString())
	return r.Err()
}

func init() { registerSeed(tstringFactory{}) }
