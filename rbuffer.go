// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"bytes"
	"encoding/binary"
	"math"
)

// RBuffer is a cursor over an in-memory byte payload: a position (c),
// an origin compensation (start, so that on-wire offsets computed as if a
// TKey header preceded this payload still resolve correctly) and a
// per-top-level-read table of already-decoded class factories and objects
// (refs), used by the tagged-reference protocol in readref.go.
//
// RBuffer never reads outside of buf; Pos() never goes backwards within a
// single object's read.
type RBuffer struct {
	r     *bytes.Reader
	buf   []byte
	c     uint32
	start uint32 // compensates for key-header bytes not present in buf
	err   error

	// sictx is reserved for a future schema-evolution rule table keyed by
	// class name; every caller in this package passes nil (schema evolution
	// beyond what the embedded streamer infos already describe is not
	// implemented).
	sictx interface{}

	refs map[uint32]interface{}
}

// NewRBuffer wraps data for reading. start offsets Pos() so that
// tagged-reference addresses recorded in the stream (which are computed as
// though any stripped TKey header were still present) resolve to the same
// values a full-file read would have produced.
func NewRBuffer(data []byte, sictx interface{}, start uint32) *RBuffer {
	return &RBuffer{
		r:     bytes.NewReader(data),
		buf:   data,
		start: start,
		sictx: sictx,
		refs:  make(map[uint32]interface{}),
	}
}

// Err returns the first error encountered while reading, if any.
func (r *RBuffer) Err() error { return r.err }

func (r *RBuffer) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Pos returns the current logical offset, compensated by start.
func (r *RBuffer) Pos() int64 { return int64(r.c) + int64(r.start) }

// Len returns the number of unread bytes.
func (r *RBuffer) Len() int { return r.r.Len() }

// seekPos repositions the cursor to an absolute logical offset (as
// returned by Pos), used by the tagged-ref protocol to skip over
// unresolvable forward references.
func (r *RBuffer) seekPos(target int64) error {
	rel := target - int64(r.start)
	if rel < 0 || rel > int64(len(r.buf)) {
		return &ErrMalformedRecord{At: target}
	}
	if _, err := r.r.Seek(rel, 0); err != nil {
		return err
	}
	r.c = uint32(rel)
	return nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (r *RBuffer) Skip(n int) {
	if r.err != nil {
		return
	}
	if _, err := r.r.Seek(int64(n), 1); err != nil {
		r.setErr(err)
		return
	}
	r.c += uint32(n)
}

// Bytes reads and returns the next n raw bytes.
func (r *RBuffer) Bytes(n int) []byte {
	if r.err != nil || n == 0 {
		return nil
	}
	out := make([]byte, n)
	nn, err := r.r.Read(out)
	r.c += uint32(nn)
	if err != nil {
		r.setErr(err)
		return nil
	}
	return out
}

func (r *RBuffer) read(p []byte) {
	if r.err != nil {
		return
	}
	n, err := r.r.Read(p)
	r.c += uint32(n)
	if err != nil {
		r.setErr(err)
	}
}

func (r *RBuffer) ReadBool() bool { return r.ReadU8() != 0 }

func (r *RBuffer) ReadI8() int8 { return int8(r.ReadU8()) }

func (r *RBuffer) ReadU8() uint8 {
	var buf [1]byte
	r.read(buf[:])
	return buf[0]
}

func (r *RBuffer) ReadI16() int16 { return int16(r.ReadU16()) }

func (r *RBuffer) ReadU16() uint16 {
	var buf [2]byte
	r.read(buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *RBuffer) ReadI32() int32 { return int32(r.ReadU32()) }

func (r *RBuffer) ReadU32() uint32 {
	var buf [4]byte
	r.read(buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *RBuffer) ReadI64() int64 { return int64(r.ReadU64()) }

func (r *RBuffer) ReadU64() uint64 {
	var buf [8]byte
	r.read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

func (r *RBuffer) ReadF32() float32 {
	return math.Float32frombits(r.ReadU32())
}

func (r *RBuffer) ReadF64() float64 {
	return math.Float64frombits(r.ReadU64())
}

// ReadString reads a length-prefixed byte string: a single length byte,
// or (if that byte is 0xFF) a 4-byte big-endian length followed by the
// payload.
func (r *RBuffer) ReadString() string {
	n := int(r.ReadU8())
	if n == 0xFF {
		n = int(r.ReadU32())
	}
	if n == 0 {
		return ""
	}
	return string(r.Bytes(n))
}

// ReadCString reads a NUL-terminated byte string, not including the NUL.
func (r *RBuffer) ReadCString() string {
	var out []byte
	for {
		b := r.ReadU8()
		if r.err != nil || b == 0 {
			break
		}
		out = append(out, b)
	}
	return string(out)
}

func (r *RBuffer) ReadStaticArrayI32(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = r.ReadI32()
	}
	return out
}

func (r *RBuffer) ReadFastArrayBool(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = r.ReadBool()
	}
	return out
}

func (r *RBuffer) ReadFastArrayI8(n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = r.ReadI8()
	}
	return out
}

func (r *RBuffer) ReadFastArrayU8(n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = r.ReadU8()
	}
	return out
}

func (r *RBuffer) ReadFastArrayI16(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = r.ReadI16()
	}
	return out
}

func (r *RBuffer) ReadFastArrayU16(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = r.ReadU16()
	}
	return out
}

func (r *RBuffer) ReadFastArrayI32(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = r.ReadI32()
	}
	return out
}

func (r *RBuffer) ReadFastArrayU32(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.ReadU32()
	}
	return out
}

func (r *RBuffer) ReadFastArrayI64(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = r.ReadI64()
	}
	return out
}

func (r *RBuffer) ReadFastArrayU64(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.ReadU64()
	}
	return out
}

func (r *RBuffer) ReadFastArrayF32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = r.ReadF32()
	}
	return out
}

func (r *RBuffer) ReadFastArrayF64(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.ReadF64()
	}
	return out
}
