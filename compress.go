// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz/lzma"
)

// Compression algorithm identifiers, as encoded in TFile::fCompress
// (settings = 100*algo + level).
const (
	algoUseGlobal = 0
	algoZLIB      = 1
	algoLZMA      = 2
	algoOld       = 3
	algoLZ4       = 4
	algoZSTD      = 5
)

// CompressionSpec describes a file's default compression algorithm and
// level, decoded from TFile.fCompress. Individual RZip blocks carry their
// own 2-byte algorithm tag (see decompressBlock), so CompressionSpec is
// mostly informational/diagnostic once a file is open.
type CompressionSpec struct {
	Algo  int
	Level int
}

func newCompressionSpec(fCompress int32) CompressionSpec {
	if fCompress < 100 {
		return CompressionSpec{Algo: algoZLIB, Level: int(fCompress)}
	}
	return CompressionSpec{Algo: int(fCompress / 100), Level: int(fCompress % 100)}
}

// rzipHeaderSize is the size of the per-block header ROOT prepends to a
// compressed payload: 2 algorithm-tag bytes, 1 version byte, 3 bytes
// compressed size, 3 bytes decompressed size.
const rzipHeaderSize = 9

func read3(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}

// decompressBlock decompresses a single RZip block. Multi-block payloads
// (objects whose decompressed size exceeds ROOT's ~16MiB block limit) are
// not supported; see DESIGN.md.
func decompressBlock(src []byte, objlen int) ([]byte, error) {
	if len(src) < rzipHeaderSize {
		return nil, fmt.Errorf("rootio: compressed payload too short (%d bytes)", len(src))
	}
	tag := string(src[0:2])
	csize := read3(src[3:6])
	if rzipHeaderSize+csize > len(src) {
		return nil, fmt.Errorf("rootio: compressed block size %d exceeds payload (%d bytes)", csize, len(src)-rzipHeaderSize)
	}
	payload := src[rzipHeaderSize : rzipHeaderSize+csize]

	out := make([]byte, objlen)
	switch tag {
	case "ZL":
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("rootio: zlib: %w", err)
		}
		defer zr.Close()
		if _, err := io.ReadFull(zr, out); err != nil {
			return nil, fmt.Errorf("rootio: zlib: %w", err)
		}
		return out, nil

	case "XZ":
		lr, err := lzma.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("rootio: lzma: %w", err)
		}
		if _, err := io.ReadFull(lr, out); err != nil {
			return nil, fmt.Errorf("rootio: lzma: %w", err)
		}
		return out, nil

	case "L4":
		// ROOT prefixes the raw LZ4 block with an 8-byte xxhash checksum
		// of the decompressed data, which this reader does not verify.
		const checksumSize = 8
		if len(payload) < checksumSize {
			return nil, fmt.Errorf("rootio: lz4 block too short")
		}
		n, err := lz4.UncompressBlock(payload[checksumSize:], out)
		if err != nil {
			return nil, fmt.Errorf("rootio: lz4: %w", err)
		}
		return out[:n], nil

	case "ZS":
		zr, err := zstd.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("rootio: zstd: %w", err)
		}
		defer zr.Close()
		if _, err := io.ReadFull(zr, out); err != nil {
			return nil, fmt.Errorf("rootio: zstd: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("rootio: unknown compression algorithm tag %q", tag)
	}
}
