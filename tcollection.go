// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// TObjArray is a framed, fixed-layout array of tagged object references.
type TObjArray struct {
	name string
	low  int32
	objs []Object
}

func (*TObjArray) Class() string  { return "TObjArray" }
func (a *TObjArray) Len() int     { return len(a.objs) }
func (a *TObjArray) At(i int) Object { return a.objs[i] }

type tobjarrayFactory struct{}

func (tobjarrayFactory) ClassName() string { return "TObjArray" }
func (tobjarrayFactory) New() Object       { return &TObjArray{} }
func (tobjarrayFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TObjArray)
	start, cnt, _ := startRecord(r)
	skipTObject(r)
	obj.name = r.ReadString()
	size := r.ReadI32()
	obj.low = r.ReadI32()
	obj.objs = make([]Object, size)
	for i := range obj.objs {
		elem, err := readAnyRef(r, ctx)
		if err != nil {
			return err
		}
		obj.objs[i] = elem
	}
	if err := endRecord(r, start, cnt); err != nil {
		return err
	}
	return r.Err()
}

func init() { registerSeed(tobjarrayFactory{}) }

// TList is a framed, variable-layout ordered list of tagged object
// references.
type TList struct {
	name string
	objs []Object
}

func (*TList) Class() string     { return "TList" }
func (l *TList) Len() int        { return len(l.objs) }
func (l *TList) At(i int) Object { return l.objs[i] }

type tlistFactory struct{}

func (tlistFactory) ClassName() string { return "TList" }
func (tlistFactory) New() Object       { return &TList{} }
func (tlistFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TList)
	start, cnt, _ := startRecord(r)
	skipTObject(r)
	obj.name = r.ReadString()
	size := r.ReadI32()
	obj.objs = make([]Object, size)
	for i := range obj.objs {
		elem, err := readAnyRef(r, ctx)
		if err != nil {
			return err
		}
		obj.objs[i] = elem
	}
	if err := endRecord(r, start, cnt); err != nil {
		return err
	}
	return r.Err()
}

func init() { registerSeed(tlistFactory{}) }

var (
	_ List = (*TObjArray)(nil)
	_ List = (*TList)(nil)
)
