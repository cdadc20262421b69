// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// startRecord reads the byte-count/version header that frames most
// streamed records: a 4-byte count (top bit is a flag, masked off) and a
// 2-byte version. It returns the position the record started at, the
// number of bytes the record occupies (count-of-bytes-after-the-count-field
// plus the 4 bytes of the count field itself) and the version.
func startRecord(r *RBuffer) (start int64, cnt int64, vers int16) {
	start = r.Pos()
	bcnt := r.ReadU32()
	vers = r.ReadI16()
	cnt = int64(bcnt&^kByteCountMask) + 4
	return start, cnt, vers
}

// endRecord verifies that exactly cnt bytes were consumed since start; a
// mismatch means the record layout assumed by the reader does not match
// what was actually on the wire.
func endRecord(r *RBuffer, start, cnt int64) error {
	observed := r.Pos() - start
	if observed != cnt {
		return &ErrMalformedRecord{Expected: cnt, Got: observed, At: start}
	}
	return nil
}

// skipTObject consumes the bytes of an embedded TObject: a version short,
// an optional 4-byte skip when the version carries the byte-count flag, a
// unique-id/bits pair, and an optional 2-byte reference id. It returns the
// unique id and bits for callers (such as TObject itself) that want them.
func skipTObject(r *RBuffer) (id, bits uint32) {
	vers := r.ReadI16()
	if uint32(vers)&kByteCountVMask != 0 {
		r.Skip(4)
	}
	id = r.ReadU32()
	bits = r.ReadU32() | kIsOnHeap
	if bits&kIsReferenced != 0 {
		r.Skip(2)
	}
	return id, bits
}

// readNameTitle reads a framed (name, title) pair preceded by an embedded
// TObject, as used by TNamed-derived bootstrap readers.
func readNameTitle(r *RBuffer) (name, title string, err error) {
	start, cnt, _ := startRecord(r)
	skipTObject(r)
	name = r.ReadString()
	title = r.ReadString()
	if err := endRecord(r, start, cnt); err != nil {
		return name, title, err
	}
	return name, title, r.Err()
}
