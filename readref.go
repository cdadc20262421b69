// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import "fmt"

// readAnyRef reads one polymorphic object reference: null, a backref to an
// already-decoded object, a new instance of a previously-seen class, or a
// brand new class plus a new instance of it. Mirrors the bit-exact
// ROOT wire protocol of TBufferFile::ReadObjectAny.
func readAnyRef(r *RBuffer, ctx *FileContext) (Object, error) {
	beg := r.Pos()
	bcnt := r.ReadU32()

	var vers int
	var start int64
	var tag uint32

	if bcnt&kByteCountMask == 0 || bcnt == kNewClassTag {
		vers = 0
		tag = bcnt
		bcnt = 0
	} else {
		vers = 1
		start = r.Pos()
		tag = r.ReadU32()
	}
	if r.Err() != nil {
		return nil, r.Err()
	}

	switch {
	case tag&kClassMask == 0:
		// reference
		switch tag {
		case 0:
			return nil, nil
		case 1:
			return nil, &ErrNotImplemented{What: "self-reference (tag == 1)"}
		}
		if v, ok := r.refs[tag]; ok {
			obj, ok := v.(Object)
			if !ok {
				return nil, fmt.Errorf("rootio: ref tag %d does not resolve to an object", tag)
			}
			return obj, nil
		}
		// forward-compatible skip: unknown tag, jump past the framed object.
		if err := r.seekPos(beg + int64(bcnt&^kByteCountMask) + 4); err != nil {
			return nil, err
		}
		return nil, nil

	case tag == kNewClassTag:
		cname := r.ReadCString()
		fct, ok := ctx.factory(cname)
		if !ok {
			fct = undefinedFactory
		}
		if vers > 0 {
			r.refs[uint32(start)+kMapOffset] = fct
		} else {
			r.refs[uint32(len(r.refs)+1)] = fct
		}

		obj, err := readObject(fct, r, ctx)
		if err != nil {
			return nil, err
		}

		if vers > 0 {
			r.refs[uint32(beg)+kMapOffset] = obj
		} else {
			r.refs[uint32(len(r.refs)+1)] = obj
		}
		return obj, nil

	default:
		ref := tag &^ kClassMask
		v, ok := r.refs[ref]
		if !ok {
			return nil, &ErrMalformedRecord{At: beg}
		}
		fct, ok := v.(ClassFactory)
		if !ok {
			return nil, &ErrMalformedRecord{At: beg}
		}
		if !ctx.hasFactory(fct) {
			return nil, &ErrMalformedRecord{At: beg}
		}

		obj, err := readObject(fct, r, ctx)
		if err != nil {
			return nil, err
		}

		if vers > 0 {
			r.refs[uint32(beg)+kMapOffset] = obj
		} else {
			r.refs[uint32(len(r.refs)+1)] = obj
		}
		return obj, nil
	}
}

// hasFactory reports whether fct is one of the factories registered in
// ctx.classes, validating that a class-tag reference resolves to a real
// factory and not some other kind of ref-table entry.
func (c *FileContext) hasFactory(fct ClassFactory) bool {
	for _, f := range c.classes {
		if f == fct {
			return true
		}
	}
	return false
}
