// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"fmt"
	"regexp"
	"strings"
)

// readOp is one decode step of a synthesized class's read procedure: it
// consumes some bytes from r and stores the resulting value(s) on d.
type readOp func(d *DynamicObject, r *RBuffer, ctx *FileContext) error

// syntheticFactory is the ClassFactory synthesized from one TStreamerInfo:
// its ops list is the bytecode-like read procedure the file's embedded
// streamer infos describe, and New produces the generic DynamicObject
// record every synthesized class shares.
type syntheticFactory struct {
	name  string
	bases []string
	ops   []readOp
}

func (f *syntheticFactory) ClassName() string { return f.name }

func (f *syntheticFactory) New() Object {
	return &DynamicObject{class: f.name, fields: map[string]interface{}{}}
}

func (f *syntheticFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	d, ok := o.(*DynamicObject)
	if !ok {
		return &ErrMalformedStreamer{Detail: fmt.Sprintf("%s: not a DynamicObject", f.name)}
	}
	start, cnt, _ := startRecord(r)
	for _, op := range f.ops {
		if err := op(d, r, ctx); err != nil {
			return err
		}
		if r.Err() != nil {
			return r.Err()
		}
	}
	return endRecord(r, start, cnt)
}

var _ ClassFactory = (*syntheticFactory)(nil)

// defineClasses synthesizes a ClassFactory for every streamer info not
// already present in seed. Streamer infos are visited in reverse so that
// a class's bases (which, in a typical embedded streamer info list, appear
// after their derived classes) are already synthesized by the time a
// derived class's Base element needs to resolve them.
func defineClasses(infos []*TStreamerInfo, seed map[string]ClassFactory) (map[string]ClassFactory, error) {
	classes := make(map[string]ClassFactory, len(seed)+len(infos))
	for name, fct := range seed {
		classes[name] = fct
	}

	for i := len(infos) - 1; i >= 0; i-- {
		info := infos[i]
		if _, ok := classes[info.name]; ok {
			continue
		}
		fct, err := buildSyntheticFactory(info, classes)
		if err != nil {
			return nil, err
		}
		classes[info.name] = fct
	}
	return classes, nil
}

var basicPointerCounterRE = regexp.MustCompile(`\[([^\]]+)\]`)

// buildSyntheticFactory translates one TStreamerInfo's elements into a
// sequence of read ops. An element kind this reader does not support
// aborts synthesis for the whole file rather than producing a partial
// class.
func buildSyntheticFactory(info *TStreamerInfo, classes map[string]ClassFactory) (*syntheticFactory, error) {
	sf := &syntheticFactory{name: info.name}

	for _, elem := range info.elements {
		switch e := elem.(type) {
		case *TStreamerBase:
			op, err := makeBaseOp(e.name, classes)
			if err != nil {
				return nil, err
			}
			sf.bases = append(sf.bases, e.name)
			sf.ops = append(sf.ops, op)

		case *TStreamerBasicType:
			if e.arrayLength > 0 {
				return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: array-valued TStreamerBasicType", info.name, e.name)}
			}
			sf.ops = append(sf.ops, opScalar(e.name, e.typ))

		case *TStreamerBasicPointer:
			op, err := opBasicPointer(e)
			if err != nil {
				return nil, err
			}
			sf.ops = append(sf.ops, op)

		case *TStreamerObjectPointer:
			switch e.typ {
			case kObjectp:
				sf.ops = append(sf.ops, opObject(e.name, strings.TrimSuffix(e.typeName, "*")))
			case kObjectP:
				sf.ops = append(sf.ops, opAnyRef(e.name))
			default:
				return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: TStreamerObjectPointer type %d", info.name, e.name, e.typ)}
			}

		case *TStreamerObject:
			sf.ops = append(sf.ops, opObject(e.name, e.typeName))

		case *TStreamerObjectAny:
			sf.ops = append(sf.ops, opObject(e.name, e.typeName))

		case *TStreamerString:
			sf.ops = append(sf.ops, opObject(e.name, e.typeName))

		case *TStreamerArtificial:
			return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: TStreamerArtificial", info.name, e.name)}

		case *TStreamerLoop:
			return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: TStreamerLoop", info.name, e.name)}

		case *TStreamerObjectAnyPointer:
			return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: TStreamerObjectAnyPointer", info.name, e.name)}

		case *TStreamerSTL:
			return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: TStreamerSTL", info.name, e.name)}

		case *TStreamerSTLString:
			return nil, &ErrNotImplemented{What: fmt.Sprintf("%s.%s: TStreamerSTLString", info.name, e.name)}

		default:
			return nil, &ErrMalformedStreamer{Detail: fmt.Sprintf("%s: unknown streamer element kind for %q", info.name, elem.Name())}
		}
	}
	return sf, nil
}

// makeBaseOp resolves a TStreamerBase element's class to a read op. TObject
// and TNamed are special-cased because their bootstrap factories decode
// into their own concrete struct types, not a DynamicObject; every other
// base is assumed to be itself a synthesized (DynamicObject-based) class,
// whose ReadInto runs directly against the derived class's record.
func makeBaseOp(baseName string, classes map[string]ClassFactory) (readOp, error) {
	switch baseName {
	case "TObject":
		return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
			id, bits := skipTObject(r)
			d.set("fUniqueID", id)
			d.set("fBits", bits)
			return r.Err()
		}, nil
	case "TNamed":
		return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
			start, cnt, _ := startRecord(r)
			id, bits := skipTObject(r)
			d.set("fUniqueID", id)
			d.set("fBits", bits)
			d.set("fName", r.ReadString())
			d.set("fTitle", r.ReadString())
			return endRecord(r, start, cnt)
		}, nil
	default:
		baseFct, ok := classes[baseName]
		if !ok {
			return nil, &ErrMalformedStreamer{Detail: fmt.Sprintf("unknown base class %q", baseName)}
		}
		return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
			return baseFct.ReadInto(d, r, ctx)
		}, nil
	}
}

func opScalar(name string, fType int32) readOp {
	return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
		v, err := readScalarByType(r, fType)
		if err != nil {
			return err
		}
		d.set(name, v)
		return nil
	}
}

// opBasicPointer implements a TStreamerBasicPointer element: a leading
// marker byte, then a count taken from an already-decoded sibling field
// whose name is parsed out of fTitle's "[counter]" annotation.
func opBasicPointer(e *TStreamerBasicPointer) (readOp, error) {
	m := basicPointerCounterRE.FindStringSubmatch(e.title)
	if m == nil {
		return nil, &ErrMalformedStreamer{Detail: fmt.Sprintf("%s: fTitle %q has no [counter] annotation", e.name, e.title)}
	}
	counter := m[1]
	fType := e.typ - kOffsetP
	name := e.name
	return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
		r.ReadU8() // "is array" marker
		cv, ok := d.Get(counter)
		if !ok {
			return &ErrMalformedStreamer{Detail: fmt.Sprintf("%s: counter field %q not yet decoded", name, counter)}
		}
		n, ok := toInt(cv)
		if !ok {
			return &ErrMalformedStreamer{Detail: fmt.Sprintf("%s: counter field %q is not numeric", name, counter)}
		}
		arr, err := readArrayByType(r, fType, n)
		if err != nil {
			return err
		}
		d.set(name, arr)
		return nil
	}, nil
}

// opObject decodes a named sub-object whose class is known statically
// (TStreamerObject, TStreamerObjectAny, TStreamerString, and the kObjectp
// flavor of TStreamerObjectPointer), falling back to Undefined if the file
// never described typeName.
func opObject(name, typeName string) readOp {
	return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
		fct, ok := ctx.factory(typeName)
		if !ok {
			fct = undefinedFactory
		}
		obj, err := readObject(fct, r, ctx)
		if err != nil {
			return err
		}
		d.set(name, obj)
		return nil
	}
}

// opAnyRef decodes a polymorphic reference (the kObjectP flavor of
// TStreamerObjectPointer) through the tagged-reference protocol.
func opAnyRef(name string) readOp {
	return func(d *DynamicObject, r *RBuffer, ctx *FileContext) error {
		obj, err := readAnyRef(r, ctx)
		if err != nil {
			return err
		}
		d.set(name, obj)
		return nil
	}
}

func readScalarByType(r *RBuffer, fType int32) (interface{}, error) {
	switch fType {
	case kBool:
		return r.ReadBool(), nil
	case kChar, kLegacyChar:
		return r.ReadI8(), nil
	case kUChar:
		return r.ReadU8(), nil
	case kShort:
		return r.ReadI16(), nil
	case kUShort:
		return r.ReadU16(), nil
	case kInt, kCounter:
		return r.ReadI32(), nil
	case kBits, kUInt:
		return r.ReadU32(), nil
	case kLong, kLong64:
		return r.ReadI64(), nil
	case kULong, kULong64:
		return r.ReadU64(), nil
	case kFloat, kFloat16:
		return r.ReadF32(), nil
	case kDouble, kDouble32:
		return r.ReadF64(), nil
	default:
		return nil, &ErrNotImplemented{What: fmt.Sprintf("basic type code %d", fType)}
	}
}

func readArrayByType(r *RBuffer, fType int32, n int) (interface{}, error) {
	switch fType {
	case kBool:
		return r.ReadFastArrayBool(n), nil
	case kChar, kLegacyChar:
		return r.ReadFastArrayI8(n), nil
	case kUChar:
		return r.ReadFastArrayU8(n), nil
	case kShort:
		return r.ReadFastArrayI16(n), nil
	case kUShort:
		return r.ReadFastArrayU16(n), nil
	case kInt, kCounter:
		return r.ReadFastArrayI32(n), nil
	case kBits, kUInt:
		return r.ReadFastArrayU32(n), nil
	case kLong, kLong64:
		return r.ReadFastArrayI64(n), nil
	case kULong, kULong64:
		return r.ReadFastArrayU64(n), nil
	case kFloat, kFloat16:
		return r.ReadFastArrayF32(n), nil
	case kDouble, kDouble32:
		return r.ReadFastArrayF64(n), nil
	default:
		return nil, &ErrNotImplemented{What: fmt.Sprintf("basic pointer type code %d", fType)}
	}
}
