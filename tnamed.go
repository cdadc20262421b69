// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// TNamed is a TObject with a name and a title.
type TNamed struct {
	obj   TObject
	name  string
	title string
}

func (*TNamed) Class() string    { return "TNamed" }
func (n *TNamed) Name() string   { return n.name }
func (n *TNamed) Title() string  { return n.title }

type tnamedFactory struct{}

func (tnamedFactory) ClassName() string { return "TNamed" }
func (tnamedFactory) New() Object       { return &TNamed{} }
func (tnamedFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TNamed)
	start, cnt, _ := startRecord(r)
	obj.obj.id, obj.obj.bits = skipTObject(r)
	obj.name = r.ReadString()
	obj.title = r.ReadString()
	if err := endRecord(r, start, cnt); err != nil {
		return err
	}
	return r.Err()
}

func init() { registerSeed(tnamedFactory{}) }
