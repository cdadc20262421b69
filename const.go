// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// File format constants.
const (
	kBEGIN      = 100
	rootVersion = 61404
)

// Tagged-reference protocol constants (see TBufferFile::ReadObjectAny).
const (
	kByteCountMask = 0x4000_0000
	kClassMask     = 0x8000_0000
	kNewClassTag   = 0xFFFFFFFF
	kMapOffset     = 2
)

// TObject bit constants.
const (
	kIsOnHeap       = 0x01000000
	kIsReferenced   = 0x00000010
	kByteCountVMask = 0x4000
)

// Basic streamer-element type codes (TVirtualStreamerInfo::EReadWrite).
const (
	kChar       = 1
	kShort      = 2
	kInt        = 3
	kLong       = 4
	kFloat      = 5
	kCounter    = 6
	kCharStar   = 7
	kDouble     = 8
	kDouble32   = 9
	kLegacyChar = 10
	kUChar      = 11
	kUShort     = 12
	kUInt       = 13
	kULong      = 14
	kBits       = 15
	kLong64     = 16
	kULong64    = 17
	kBool       = 18
	kFloat16    = 19

	kOffsetL = 20
	kOffsetP = 40

	kObjectp = 61
	kObjectP = 62
)

// STL container type codes (subset needed to normalize TStreamerSTL).
const (
	kSTLset      = 4
	kSTLmultimap = 7
)
