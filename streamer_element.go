// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import "strings"

// StreamerElement describes one field of a streamed class: its name, wire
// type, array shape and type name. The concrete Go type (TStreamerBase,
// TStreamerBasicType, ...) tells the class synthesizer (synth.go) which
// decode shape to emit.
type StreamerElement interface {
	Object
	Name() string
	Title() string
	TypeName() string
	Type() int32
	ArrayLength() int32
}

// streamerElementBase holds the fields common to every StreamerElement
// variant; each variant embeds it and adds its own extras.
type streamerElementBase struct {
	name        string
	title       string
	typ         int32
	size        int32
	arrayLength int32
	arrayDim    int32
	maxIndex    []int32
	typeName    string
	xmin        float64
	xmax        float64
	factor      float64
}

func (e *streamerElementBase) Name() string      { return e.name }
func (e *streamerElementBase) Title() string     { return e.title }
func (e *streamerElementBase) TypeName() string  { return e.typeName }
func (e *streamerElementBase) Type() int32       { return e.typ }
func (e *streamerElementBase) ArrayLength() int32 { return e.arrayLength }

// readStreamerElementBase reads one (independently framed) TStreamerElement
// record. Every subtype wraps this in its own outer frame before and/or
// after adding its own extra fields, mirroring ROOT's per-inheritance-level
// streaming of TStreamerElement.
func readStreamerElementBase(r *RBuffer) (streamerElementBase, error) {
	var e streamerElementBase
	start, cnt, vers := startRecord(r)

	name, title, err := readNameTitle(r)
	if err != nil {
		return e, err
	}
	e.name, e.title = name, title

	e.typ = r.ReadI32()
	e.size = r.ReadI32()
	e.arrayLength = r.ReadI32()
	e.arrayDim = r.ReadI32()

	if vers == 1 {
		n := r.ReadI32()
		e.maxIndex = r.ReadStaticArrayI32(int(n))
	} else {
		e.maxIndex = r.ReadStaticArrayI32(5)
	}

	e.typeName = r.ReadString()
	if e.typ == 11 && (e.typeName == "Bool_t" || e.typeName == "bool") {
		e.typ = 18
	}

	// vers <= 2 is supposed to recompute fSize from a global type table;
	// the original reader never implemented this (left as a FIXME), and
	// this reader keeps that behavior: fSize stays as read.
	if vers == 3 {
		e.xmin = r.ReadF64()
		e.xmax = r.ReadF64()
		e.factor = r.ReadF64()
	}
	// vers > 3 would derive fXmin/fXmax/fFactor from fTitle's "[min,max]"
	// annotation; not implemented, matching the original.

	if err := endRecord(r, start, cnt); err != nil {
		return e, err
	}
	return e, r.Err()
}

// --- TStreamerBase ---

type TStreamerBase struct {
	streamerElementBase
	baseVersion int32
}

func (*TStreamerBase) Class() string { return "TStreamerBase" }

type tstreamerBaseFactory struct{}

func (tstreamerBaseFactory) ClassName() string { return "TStreamerBase" }
func (tstreamerBaseFactory) New() Object       { return &TStreamerBase{} }
func (tstreamerBaseFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TStreamerBase)
	start, cnt, vers := startRecord(r)
	base, err := readStreamerElementBase(r)
	if err != nil {
		return err
	}
	obj.streamerElementBase = base
	if vers > 2 {
		obj.baseVersion = r.ReadI32()
	}
	return endRecord(r, start, cnt)
}

// --- TStreamerBasicType ---

type TStreamerBasicType struct {
	streamerElementBase
}

func (*TStreamerBasicType) Class() string { return "TStreamerBasicType" }

type tstreamerBasicTypeFactory struct{}

func (tstreamerBasicTypeFactory) ClassName() string { return "TStreamerBasicType" }
func (tstreamerBasicTypeFactory) New() Object       { return &TStreamerBasicType{} }
func (tstreamerBasicTypeFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TStreamerBasicType)
	start, cnt, _ := startRecord(r)
	base, err := readStreamerElementBase(r)
	if err != nil {
		return err
	}
	obj.streamerElementBase = base

	if kOffsetL < obj.typ && obj.typ < kOffsetP {
		obj.typ -= kOffsetL
	}

	basic := true
	switch obj.typ {
	case kBool, kUChar, kChar:
		obj.size = 1
	case kUShort, kShort:
		obj.size = 2
	case kBits, kUInt, kInt, kCounter:
		obj.size = 4
	case kULong, kULong64, kLong, kLong64:
		obj.size = 8
	case kFloat, kFloat16:
		obj.size = 4
	case kDouble, kDouble32:
		obj.size = 8
	case kCharStar:
		obj.size = 8 // platform pointer size
	default:
		basic = false
	}
	if basic && obj.arrayLength > 0 {
		obj.size *= obj.arrayLength
	}

	return endRecord(r, start, cnt)
}

// --- TStreamerBasicPointer ---

type TStreamerBasicPointer struct {
	streamerElementBase
	countVersion int32
	countName    string
	countClass   string
}

func (*TStreamerBasicPointer) Class() string { return "TStreamerBasicPointer" }

type tstreamerBasicPointerFactory struct{}

func (tstreamerBasicPointerFactory) ClassName() string { return "TStreamerBasicPointer" }
func (tstreamerBasicPointerFactory) New() Object       { return &TStreamerBasicPointer{} }
func (tstreamerBasicPointerFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TStreamerBasicPointer)
	start, cnt, _ := startRecord(r)
	base, err := readStreamerElementBase(r)
	if err != nil {
		return err
	}
	obj.streamerElementBase = base
	obj.countVersion = r.ReadI32()
	obj.countName = r.ReadString()
	obj.countClass = r.ReadString()
	return endRecord(r, start, cnt)
}

// --- TStreamerLoop ---

type TStreamerLoop struct {
	streamerElementBase
	countVersion int32
	countName    string
	countClass   string
}

func (*TStreamerLoop) Class() string { return "TStreamerLoop" }

type tstreamerLoopFactory struct{}

func (tstreamerLoopFactory) ClassName() string { return "TStreamerLoop" }
func (tstreamerLoopFactory) New() Object       { return &TStreamerLoop{} }
func (tstreamerLoopFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TStreamerLoop)
	start, cnt, _ := startRecord(r)
	base, err := readStreamerElementBase(r)
	if err != nil {
		return err
	}
	obj.streamerElementBase = base
	obj.countVersion = r.ReadI32()
	obj.countName = r.ReadString()
	obj.countClass = r.ReadString()
	return endRecord(r, start, cnt)
}

// --- TStreamerObject / TStreamerObjectAny / TStreamerObjectAnyPointer / TStreamerObjectPointer / TStreamerString ---

type TStreamerObject struct{ streamerElementBase }

func (*TStreamerObject) Class() string { return "TStreamerObject" }

type tstreamerObjectFactory struct{}

func (tstreamerObjectFactory) ClassName() string { return "TStreamerObject" }
func (tstreamerObjectFactory) New() Object       { return &TStreamerObject{} }
func (tstreamerObjectFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readPlainStreamerElement(&o.(*TStreamerObject).streamerElementBase, r)
}

type TStreamerObjectAny struct{ streamerElementBase }

func (*TStreamerObjectAny) Class() string { return "TStreamerObjectAny" }

type tstreamerObjectAnyFactory struct{}

func (tstreamerObjectAnyFactory) ClassName() string { return "TStreamerObjectAny" }
func (tstreamerObjectAnyFactory) New() Object       { return &TStreamerObjectAny{} }
func (tstreamerObjectAnyFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readPlainStreamerElement(&o.(*TStreamerObjectAny).streamerElementBase, r)
}

type TStreamerObjectAnyPointer struct{ streamerElementBase }

func (*TStreamerObjectAnyPointer) Class() string { return "TStreamerObjectAnyPointer" }

type tstreamerObjectAnyPointerFactory struct{}

func (tstreamerObjectAnyPointerFactory) ClassName() string { return "TStreamerObjectAnyPointer" }
func (tstreamerObjectAnyPointerFactory) New() Object       { return &TStreamerObjectAnyPointer{} }
func (tstreamerObjectAnyPointerFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readPlainStreamerElement(&o.(*TStreamerObjectAnyPointer).streamerElementBase, r)
}

type TStreamerObjectPointer struct{ streamerElementBase }

func (*TStreamerObjectPointer) Class() string { return "TStreamerObjectPointer" }

type tstreamerObjectPointerFactory struct{}

func (tstreamerObjectPointerFactory) ClassName() string { return "TStreamerObjectPointer" }
func (tstreamerObjectPointerFactory) New() Object       { return &TStreamerObjectPointer{} }
func (tstreamerObjectPointerFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readPlainStreamerElement(&o.(*TStreamerObjectPointer).streamerElementBase, r)
}

type TStreamerString struct{ streamerElementBase }

func (*TStreamerString) Class() string { return "TStreamerString" }

type tstreamerStringFactory struct{}

func (tstreamerStringFactory) ClassName() string { return "TStreamerString" }
func (tstreamerStringFactory) New() Object       { return &TStreamerString{} }
func (tstreamerStringFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readPlainStreamerElement(&o.(*TStreamerString).streamerElementBase, r)
}

type TStreamerArtificial struct{ streamerElementBase }

func (*TStreamerArtificial) Class() string { return "TStreamerArtificial" }

type tstreamerArtificialFactory struct{}

func (tstreamerArtificialFactory) ClassName() string { return "TStreamerArtificial" }
func (tstreamerArtificialFactory) New() Object       { return &TStreamerArtificial{} }
func (tstreamerArtificialFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readPlainStreamerElement(&o.(*TStreamerArtificial).streamerElementBase, r)
}

// readPlainStreamerElement handles the common shape: an outer frame around
// a single nested TStreamerElement record, no extra fields of its own.
func readPlainStreamerElement(dst *streamerElementBase, r *RBuffer) error {
	start, cnt, _ := startRecord(r)
	base, err := readStreamerElementBase(r)
	if err != nil {
		return err
	}
	*dst = base
	return endRecord(r, start, cnt)
}

// --- TStreamerSTL / TStreamerSTLString ---

type TStreamerSTL struct {
	streamerElementBase
	stlType int32
	cType   int32
}

func (*TStreamerSTL) Class() string { return "TStreamerSTL" }

type tstreamerSTLFactory struct{}

func (tstreamerSTLFactory) ClassName() string { return "TStreamerSTL" }
func (tstreamerSTLFactory) New() Object       { return &TStreamerSTL{} }
func (tstreamerSTLFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	return readStreamerSTL(o.(*TStreamerSTL), r)
}

func readStreamerSTL(obj *TStreamerSTL, r *RBuffer) error {
	start, cnt, vers := startRecord(r)
	base, err := readStreamerElementBase(r)
	if err != nil {
		return err
	}
	obj.streamerElementBase = base

	if vers > 2 {
		return &ErrNotImplemented{What: "TStreamerSTL version > 2"}
	}
	obj.stlType = r.ReadI32()
	obj.cType = r.ReadI32()

	if obj.stlType == kSTLmultimap || obj.stlType == kSTLset {
		switch {
		case strings.HasPrefix(obj.typeName, "std::set"), strings.HasPrefix(obj.typeName, "set"):
			obj.stlType = kSTLset
		case strings.HasPrefix(obj.typeName, "std::multimap"), strings.HasPrefix(obj.typeName, "multimap"):
			obj.stlType = kSTLmultimap
		}
	}

	return endRecord(r, start, cnt)
}

type TStreamerSTLString struct {
	TStreamerSTL
}

func (*TStreamerSTLString) Class() string { return "TStreamerSTLString" }

type tstreamerSTLStringFactory struct{}

func (tstreamerSTLStringFactory) ClassName() string { return "TStreamerSTLString" }
func (tstreamerSTLStringFactory) New() Object       { return &TStreamerSTLString{} }
func (tstreamerSTLStringFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TStreamerSTLString)
	start, cnt, _ := startRecord(r)
	if err := readStreamerSTL(&obj.TStreamerSTL, r); err != nil {
		return err
	}
	return endRecord(r, start, cnt)
}

func init() {
	registerSeed(tstreamerBaseFactory{})
	registerSeed(tstreamerBasicTypeFactory{})
	registerSeed(tstreamerBasicPointerFactory{})
	registerSeed(tstreamerLoopFactory{})
	registerSeed(tstreamerObjectFactory{})
	registerSeed(tstreamerObjectAnyFactory{})
	registerSeed(tstreamerObjectAnyPointerFactory{})
	registerSeed(tstreamerObjectPointerFactory{})
	registerSeed(tstreamerStringFactory{})
	registerSeed(tstreamerArtificialFactory{})
	registerSeed(tstreamerSTLFactory{})
	registerSeed(tstreamerSTLStringFactory{})
}

var (
	_ StreamerElement = (*TStreamerBase)(nil)
	_ StreamerElement = (*TStreamerBasicType)(nil)
	_ StreamerElement = (*TStreamerBasicPointer)(nil)
	_ StreamerElement = (*TStreamerLoop)(nil)
	_ StreamerElement = (*TStreamerObject)(nil)
	_ StreamerElement = (*TStreamerObjectAny)(nil)
	_ StreamerElement = (*TStreamerObjectAnyPointer)(nil)
	_ StreamerElement = (*TStreamerObjectPointer)(nil)
	_ StreamerElement = (*TStreamerString)(nil)
	_ StreamerElement = (*TStreamerArtificial)(nil)
	_ StreamerElement = (*TStreamerSTL)(nil)
	_ StreamerElement = (*TStreamerSTLString)(nil)
)
