// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import "fmt"

// ErrNotAFile is returned by Open/NewReader when the byte source does not
// start with the ROOT magic ("root").
type ErrNotAFile struct {
	Name string
}

func (e *ErrNotAFile) Error() string {
	return fmt.Sprintf("rootio: %q is not a root file", e.Name)
}

// ErrMalformedRecord is returned when a byte-count/version framed record's
// end position does not match its declared length.
type ErrMalformedRecord struct {
	Expected int64
	Got      int64
	At       int64
}

func (e *ErrMalformedRecord) Error() string {
	return fmt.Sprintf("rootio: malformed record at offset %d: object has %d bytes; expected %d", e.At, e.Got, e.Expected)
}

// ErrMalformedStreamer is returned when a TStreamerElement cannot be
// translated into a read procedure (missing counter field, unknown type).
type ErrMalformedStreamer struct {
	Detail string
}

func (e *ErrMalformedStreamer) Error() string {
	return fmt.Sprintf("rootio: malformed streamer: %s", e.Detail)
}

// ErrNotImplemented is returned for streamer-element kinds and STL versions
// this reader deliberately does not support.
type ErrNotImplemented struct {
	What string
}

func (e *ErrNotImplemented) Error() string {
	return fmt.Sprintf("rootio: not implemented: %s", e.What)
}

// ErrKeyNotFound is returned by Directory.Get when no key matches the
// requested name/cycle.
type ErrKeyNotFound struct {
	Path string
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("rootio: key not found: %q", e.Path)
}
