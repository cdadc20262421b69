// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"fmt"
	"io"
	"os"
)

// Reader is the subset of file-like operations a File needs from its
// backing byte source.
type Reader interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
}

// A ROOT file is a suite of consecutive data records (TKeys). See TKey
// (key.go) for the per-record header layout and file.readHeader for the
// file-level header layout:
//    1->4            "root"      = Root file identifier
//    5->8            fVersion    = File format version
//    9->12           fBEGIN      = Pointer to first data record
//    13->16 [13->20] fEND        = Pointer to first free word at the EOF
//    17->20 [21->28] fSeekFree   = Pointer to FREE data record
//    21->24 [29->32] fNbytesFree = Number of bytes in FREE data record
//    25->28 [33->36] nfree       = Number of free data records
//    29->32 [37->40] fNbytesName = Number of bytes in TNamed at creation time
//    33->33 [41->41] fUnits      = Number of bytes for file pointers
//    34->37 [42->45] fCompress   = Compression level and algorithm
//    38->41 [46->53] fSeekInfo   = Pointer to TStreamerInfo record
//    42->45 [54->57] fNbytesInfo = Number of bytes in TStreamerInfo record
//    46->63 [58->75] fUUID       = Universal Unique ID
type File struct {
	r      Reader
	closer io.Closer
	id     string

	version int32
	begin   int64

	end         int64
	nbytesfree  int32
	nfree       int32
	nbytesname  int32
	units       byte
	compression int32
	seekinfo    int64
	nbytesinfo  int32
	uuid        [18]byte

	ctx  *FileContext
	root *ROOTDirectory
}

// Open opens the named ROOT file for reading.
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rootio: unable to open %q: %w", path, err)
	}
	return NewReader(fd, path)
}

// NewReader wraps an already-open Reader (e.g. an *os.File, or a
// ReaderAt-backed byte range served over HTTP) as a ROOT file.
func NewReader(r Reader, name string) (*File, error) {
	f := &File{r: r, closer: r, id: name}
	if err := f.readHeader(); err != nil {
		return nil, fmt.Errorf("rootio: failed to read header %q: %w", name, err)
	}
	return f, nil
}

// Close closes the underlying byte source.
func (f *File) Close() error { return f.closer.Close() }

// Version returns the ROOT version this file was written with.
func (f *File) Version() int { return int(f.version) }

// Class implements Object.
func (f *File) Class() string { return "TFile" }

// Name returns the file's identifying name (its path, for Open; the name
// passed to NewReader otherwise).
func (f *File) Name() string { return f.id }

// StreamerInfos returns the decoded per-class schemas embedded in the
// file.
func (f *File) StreamerInfos() []*TStreamerInfo { return f.ctx.StreamerInfos }

// Root returns the file's root directory.
func (f *File) Root() *ROOTDirectory { return f.root }

// Get resolves a "/"-separated, optionally ";cycle"-suffixed path rooted
// at the file's top directory.
func (f *File) Get(namecycle string) (Object, error) {
	return f.root.Get(namecycle)
}

func (f *File) readHeader() error {
	buf := make([]byte, 75)
	if _, err := f.r.ReadAt(buf, 0); err != nil {
		return err
	}
	r := NewRBuffer(buf, nil, 0)

	magic := r.Bytes(4)
	if r.Err() != nil {
		return r.Err()
	}
	if string(magic) != "root" {
		return &ErrNotAFile{Name: f.id}
	}

	f.version = r.ReadI32()
	f.begin = int64(r.ReadI32())
	if f.version < 1_000_000 { // small file
		f.end = int64(r.ReadI32())
		r.Skip(4) // fSeekFree
		f.nbytesfree = r.ReadI32()
		f.nfree = r.ReadI32()
		f.nbytesname = r.ReadI32()
		f.units = r.ReadU8()
		f.compression = r.ReadI32()
		f.seekinfo = int64(r.ReadI32())
		f.nbytesinfo = r.ReadI32()
	} else { // large file
		f.end = r.ReadI64()
		r.Skip(8) // fSeekFree
		f.nbytesfree = r.ReadI32()
		f.nfree = r.ReadI32()
		f.nbytesname = r.ReadI32()
		f.units = r.ReadU8()
		f.compression = r.ReadI32()
		f.seekinfo = r.ReadI64()
		f.nbytesinfo = r.ReadI32()
	}
	f.version %= 1_000_000
	copy(f.uuid[:], r.Bytes(len(f.uuid)))
	if err := r.Err(); err != nil {
		return err
	}

	f.ctx = &FileContext{Compression: newCompressionSpec(f.compression)}

	myprintf("file-version:     %v\n", f.version)
	myprintf("file-begin:       %v\n", f.begin)
	myprintf("file-end:         %v\n", f.end)
	myprintf("file-compression: %v\n", f.ctx.Compression)
	myprintf("file-seekinfo:    %v\n", f.seekinfo)

	if err := f.readStreamerInfo(); err != nil {
		return fmt.Errorf("rootio: failed to read streamer infos: %w", err)
	}

	mykey, err := f.readTopKey()
	if err != nil {
		return fmt.Errorf("rootio: failed to read root key: %w", err)
	}

	root, err := readDirectory(f.r, f.ctx, f.begin+int64(mykey.keylen), mykey.name)
	if err != nil {
		return fmt.Errorf("rootio: failed to read root directory: %w", err)
	}
	f.root = root

	return nil
}

// readTopKey reads the TKey at fBEGIN that identifies the file itself; the
// TDirectory record for the root directory follows immediately after it, at
// fBEGIN+fKeylen. Its total on-disk length isn't known ahead of time, so
// this reads a generous prefix and tolerates a short final read.
func (f *File) readTopKey() (*Key, error) {
	const maxTopKeyLen = 1024
	buf := make([]byte, maxTopKeyLen)
	n, err := f.r.ReadAt(buf, f.begin)
	if n == 0 {
		return nil, err
	}
	return readKey(NewRBuffer(buf[:n], nil, 0))
}

// readStreamerInfo reads, decompresses and decodes the file's embedded
// TStreamerInfo list, then synthesizes a read procedure for every class it
// describes that the bootstrap set does not already cover.
func (f *File) readStreamerInfo() error {
	if f.seekinfo <= 0 || f.seekinfo >= f.end {
		return fmt.Errorf("rootio: invalid pointer to streamer info (pos=%d end=%d)", f.seekinfo, f.end)
	}

	buf := make([]byte, f.nbytesinfo)
	if _, err := f.r.ReadAt(buf, f.seekinfo); err != nil {
		return err
	}

	r := NewRBuffer(buf, nil, 0)
	k, err := readKey(r)
	if err != nil {
		return err
	}

	payload := buf[r.Pos():]
	if k.isCompressed() {
		payload, err = decompressBlock(payload, int(k.objlen))
		if err != nil {
			return err
		}
	}

	seed := newSeedClasses()
	bootstrapCtx := &FileContext{classes: seed, Compression: f.ctx.Compression}

	infos, err := readStreamerInfoList(NewRBuffer(payload, nil, uint32(k.keylen)), bootstrapCtx)
	if err != nil {
		return err
	}

	classes, err := defineClasses(infos, seed)
	if err != nil {
		return err
	}

	f.ctx.StreamerInfos = infos
	f.ctx.classes = classes
	return nil
}

// readStreamerInfoList decodes the TStreamerInfo list wrapping the file's
// schema. It follows TList's layout (no low index), and each element is
// followed by a 1-byte-length-prefixed "options" string
// that this reader never uses, reading and discarding it.
func readStreamerInfoList(r *RBuffer, ctx *FileContext) ([]*TStreamerInfo, error) {
	start, cnt, _ := startRecord(r)
	skipTObject(r)
	_ = r.ReadString() // list name, e.g. "StreamerInfoList"
	size := r.ReadI32()

	infos := make([]*TStreamerInfo, 0, int(size))
	for i := int32(0); i < size; i++ {
		obj, err := readAnyRef(r, ctx)
		if err != nil {
			return nil, err
		}
		info, ok := obj.(*TStreamerInfo)
		if !ok {
			return nil, &ErrMalformedStreamer{Detail: "streamer info list element is not a TStreamerInfo"}
		}
		infos = append(infos, info)

		n := r.ReadU8()
		r.Skip(int(n))
	}

	if err := endRecord(r, start, cnt); err != nil {
		return nil, err
	}
	return infos, r.Err()
}
