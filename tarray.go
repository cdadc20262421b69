// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// TArrayC, TArrayS, TArrayI, TArrayL, TArrayL64, TArrayF and TArrayD are
// ROOT's fixed-element-type arrays: an int32 length followed by that many
// big-endian values, no framing.

type TArrayC struct{ data []int8 }

func (*TArrayC) Class() string { return "TArrayC" }
func (a *TArrayC) Data() []int8 { return a.data }

type tarrayCFactory struct{}

func (tarrayCFactory) ClassName() string { return "TArrayC" }
func (tarrayCFactory) New() Object       { return &TArrayC{} }
func (tarrayCFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayC).data = r.ReadFastArrayI8(int(n))
	return r.Err()
}

type TArrayS struct{ data []int16 }

func (*TArrayS) Class() string   { return "TArrayS" }
func (a *TArrayS) Data() []int16 { return a.data }

type tarraySFactory struct{}

func (tarraySFactory) ClassName() string { return "TArrayS" }
func (tarraySFactory) New() Object       { return &TArrayS{} }
func (tarraySFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayS).data = r.ReadFastArrayI16(int(n))
	return r.Err()
}

type TArrayI struct{ data []int32 }

func (*TArrayI) Class() string   { return "TArrayI" }
func (a *TArrayI) Data() []int32 { return a.data }

type tarrayIFactory struct{}

func (tarrayIFactory) ClassName() string { return "TArrayI" }
func (tarrayIFactory) New() Object       { return &TArrayI{} }
func (tarrayIFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayI).data = r.ReadFastArrayI32(int(n))
	return r.Err()
}

type TArrayL struct{ data []int64 }

func (*TArrayL) Class() string   { return "TArrayL" }
func (a *TArrayL) Data() []int64 { return a.data }

type tarrayLFactory struct{}

func (tarrayLFactory) ClassName() string { return "TArrayL" }
func (tarrayLFactory) New() Object       { return &TArrayL{} }
func (tarrayLFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayL).data = r.ReadFastArrayI64(int(n))
	return r.Err()
}

type TArrayL64 struct{ data []int64 }

func (*TArrayL64) Class() string   { return "TArrayL64" }
func (a *TArrayL64) Data() []int64 { return a.data }

type tarrayL64Factory struct{}

func (tarrayL64Factory) ClassName() string { return "TArrayL64" }
func (tarrayL64Factory) New() Object       { return &TArrayL64{} }
func (tarrayL64Factory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayL64).data = r.ReadFastArrayI64(int(n))
	return r.Err()
}

type TArrayF struct{ data []float32 }

func (*TArrayF) Class() string     { return "TArrayF" }
func (a *TArrayF) Data() []float32 { return a.data }

type tarrayFFactory struct{}

func (tarrayFFactory) ClassName() string { return "TArrayF" }
func (tarrayFFactory) New() Object       { return &TArrayF{} }
func (tarrayFFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayF).data = r.ReadFastArrayF32(int(n))
	return r.Err()
}

type TArrayD struct{ data []float64 }

func (*TArrayD) Class() string     { return "TArrayD" }
func (a *TArrayD) Data() []float64 { return a.data }

type tarrayDFactory struct{}

func (tarrayDFactory) ClassName() string { return "TArrayD" }
func (tarrayDFactory) New() Object       { return &TArrayD{} }
func (tarrayDFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	n := r.ReadI32()
	o.(*TArrayD).data = r.ReadFastArrayF64(int(n))
	return r.Err()
}

func init() {
	registerSeed(tarrayCFactory{})
	registerSeed(tarraySFactory{})
	registerSeed(tarrayIFactory{})
	registerSeed(tarrayLFactory{})
	registerSeed(tarrayL64Factory{})
	registerSeed(tarrayFFactory{})
	registerSeed(tarrayDFactory{})
}
