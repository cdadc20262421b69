// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"fmt"
	"io"
	"time"
)

// Key is a ROOT file's record header: it locates, sizes and names one
// stored object. Key.Object (or the Value sugar) reads and
// decompresses the payload on demand and dispatches to the class's read
// procedure; nothing is cached, so repeated calls each construct a fresh
// Object.
type Key struct {
	src io.ReaderAt
	ctx *FileContext

	nbytes   int32
	version  int16
	objlen   int32
	datetime time.Time
	keylen   int32
	cycle    int16
	seekKey  int64
	seekPdir int64

	class string
	name  string
	title string
}

func (k *Key) Class() string          { return k.class }
func (k *Key) Name() string           { return k.name }
func (k *Key) Title() string          { return k.title }
func (k *Key) Cycle() int             { return int(k.cycle) }
func (k *Key) Datetime() time.Time    { return k.datetime }
func (k *Key) ObjLen() int            { return int(k.objlen) }
func (k *Key) isTopDirectory() bool   { return k.seekPdir == 0 }
func (k *Key) isCompressed() bool     { return k.objlen != k.nbytes-k.keylen }
func (k *Key) isGap() bool            { return k.nbytes < 0 }

// readKey decodes one TKey header from r: the fixed fields, a 32- or
// 64-bit seek pair depending on fVersion, three length-prefixed strings,
// and (for the top directory's key, flagged by fSeekPdir == 0) a trailing
// NUL after fName and after fTitle.
func readKey(r *RBuffer) (*Key, error) {
	k := &Key{}
	k.nbytes = r.ReadI32()
	if k.nbytes < 0 {
		k.class = "[GAP]"
		return k, r.Err()
	}

	k.version = r.ReadI16()
	k.objlen = r.ReadI32()
	k.datetime = datime2time(r.ReadU32())
	k.keylen = int32(r.ReadI16())
	k.cycle = r.ReadI16()

	if k.version > 1000 {
		k.seekKey = r.ReadI64()
		k.seekPdir = r.ReadI64()
	} else {
		k.seekKey = int64(r.ReadI32())
		k.seekPdir = int64(r.ReadI32())
	}

	k.class = r.ReadString()
	k.name = r.ReadString()
	if k.isTopDirectory() {
		if b := r.ReadU8(); b != 0 {
			return nil, &ErrMalformedRecord{At: r.Pos()}
		}
	}
	k.title = r.ReadString()
	if k.isTopDirectory() {
		if b := r.ReadU8(); b != 0 {
			return nil, &ErrMalformedRecord{At: r.Pos()}
		}
	}

	myprintf("key-version:  %v\n", k.version)
	myprintf("key-objlen:   %v\n", k.objlen)
	myprintf("key-cdate:    %v\n", k.datetime)
	myprintf("key-keylen:   %v\n", k.keylen)
	myprintf("key-cycle:    %v\n", k.cycle)
	myprintf("key-seekkey:  %v\n", k.seekKey)
	myprintf("key-seekpdir: %v\n", k.seekPdir)
	myprintf("key-class:    %q\n", k.class)
	myprintf("key-name:     %q\n", k.name)
	myprintf("key-title:    %q\n", k.title)

	return k, r.Err()
}

// payload returns the decoded (decompressed, if necessary) bytes of the
// object this key describes.
func (k *Key) payload() ([]byte, error) {
	raw := make([]byte, k.nbytes-k.keylen)
	if _, err := k.src.ReadAt(raw, k.seekKey+int64(k.keylen)); err != nil {
		return nil, fmt.Errorf("rootio: reading key %q payload: %w", k.name, err)
	}
	if !k.isCompressed() {
		return raw, nil
	}
	return decompressBlock(raw, int(k.objlen))
}

// Object decodes and returns the object this key describes. TDirectory
// payloads recurse into a nested ROOTDirectory; classes known to the
// file's context dispatch to their synthesized or bootstrap factory;
// anything else comes back as an Undefined placeholder.
func (k *Key) Object() (Object, error) {
	if k.class == "TDirectory" {
		return readDirectory(k.src, k.ctx, k.seekKey+int64(k.keylen), k.name)
	}

	buf, err := k.payload()
	if err != nil {
		return nil, err
	}

	fct, ok := k.ctx.factory(k.class)
	if !ok {
		fct = undefinedFactory
	}
	return readObject(fct, NewRBuffer(buf, nil, uint32(k.keylen)), k.ctx)
}

// Value is Object, panicking on error; convenient for REPL-style use.
func (k *Key) Value() interface{} {
	v, err := k.Object()
	if err != nil {
		panic(err)
	}
	return v
}

// datime2time decodes a ROOT TDatime 32-bit packed date/time
// (((year-1995)<<26) | (month<<22) | (day<<17) | (hour<<12) | (min<<6) | sec).
func datime2time(d uint32) time.Time {
	year := int(d>>26) + 1995
	month := time.Month(d >> 22 & 0xf)
	day := int(d >> 17 & 0x1f)
	hour := int(d >> 12 & 0x1f)
	min := int(d >> 6 & 0x3f)
	sec := int(d & 0x3f)
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

var (
	_ Object = (*Key)(nil)
	_ Named  = (*Key)(nil)
)
