// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReader adapts a bytes.Reader into the Reader interface File needs.
type memReader struct{ *bytes.Reader }

func (memReader) Close() error { return nil }

func newMemReader(b []byte) Reader { return memReader{bytes.NewReader(b)} }

func TestReadStreamerInfoListEmpty(t *testing.T) {
	body := []byte{0x00, 0x01} // TObject version, no kByteCountVMask
	body = append(body, be32(0)...)
	body = append(body, be32(kIsOnHeap)...)
	body = append(body, encodeString("StreamerInfoList")...)
	body = append(body, be32(0)...) // size = 0

	bcnt := uint32(len(body)+2) | kByteCountMask
	buf := append(be32(bcnt), 0x00, 0x01)
	buf = append(buf, body...)

	ctx := &FileContext{classes: newSeedClasses()}
	r := NewRBuffer(buf, nil, 0)
	infos, err := readStreamerInfoList(r, ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestReadStreamerInfoListRejectsNonStreamerInfoElement(t *testing.T) {
	body := []byte{0x00, 0x01}
	body = append(body, be32(0)...)
	body = append(body, be32(kIsOnHeap)...)
	body = append(body, encodeString("StreamerInfoList")...)
	body = append(body, be32(1)...) // size = 1
	body = append(body, be32(0)...) // element: null tag -> readAnyRef returns nil
	body = append(body, 0x00)       // options: zero-length string

	bcnt := uint32(len(body)+2) | kByteCountMask
	buf := append(be32(bcnt), 0x00, 0x01)
	buf = append(buf, body...)

	ctx := &FileContext{classes: newSeedClasses()}
	r := NewRBuffer(buf, nil, 0)
	_, err := readStreamerInfoList(r, ctx)
	require.Error(t, err)
	var serr *ErrMalformedStreamer
	require.ErrorAs(t, err, &serr)
}

func TestReadStreamerInfoListSkipsOptionsBytes(t *testing.T) {
	// One TStreamerInfo element (new-class-tag framed), with no elements of
	// its own, followed by a 3-byte options string that must be skipped
	// without corrupting the outer frame's accounting.
	var infoRec []byte
	infoName := []byte{0x00, 0x01} // TObject version for readNameTitle's embedded TObject
	infoName = append(infoName, be32(0)...)
	infoName = append(infoName, be32(kIsOnHeap)...)
	infoName = append(infoName, encodeString("MyClass")...)
	infoName = append(infoName, encodeString("")...)
	nameBcnt := uint32(len(infoName)+2) | kByteCountMask
	nameFramed := append(be32(nameBcnt), 0x00, 0x01)
	nameFramed = append(nameFramed, infoName...)

	// fElements: an empty TObjArray.
	arrBody := []byte{0x00, 0x01}
	arrBody = append(arrBody, be32(0)...)
	arrBody = append(arrBody, be32(kIsOnHeap)...)
	arrBody = append(arrBody, encodeString("")...)
	arrBody = append(arrBody, be32(0)...) // size = 0
	arrBody = append(arrBody, be32(0)...) // low
	arrBcnt := uint32(len(arrBody)+2) | kByteCountMask
	arrFramed := append(be32(arrBcnt), 0x00, 0x03)
	arrFramed = append(arrFramed, arrBody...)

	var arrTagged []byte
	arrTagged = append(arrTagged, be32(kNewClassTag)...)
	arrTagged = append(arrTagged, []byte("TObjArray\x00")...)
	arrTagged = append(arrTagged, arrFramed...)
	arrBcntOuter := uint32(len(arrTagged)) | kByteCountMask
	arrTaggedFramed := append(be32(arrBcntOuter), arrTagged...)

	infoBody := append([]byte{}, nameFramed...)
	infoBody = append(infoBody, be32(0)...) // checksum
	infoBody = append(infoBody, be32(1)...) // classVersion
	infoBody = append(infoBody, arrTaggedFramed...)
	infoBcnt := uint32(len(infoBody)+2) | kByteCountMask
	infoFramed := append(be32(infoBcnt), 0x00, 0x01)
	infoFramed = append(infoFramed, infoBody...)

	var infoTagged []byte
	infoTagged = append(infoTagged, be32(kNewClassTag)...)
	infoTagged = append(infoTagged, []byte("TStreamerInfo\x00")...)
	infoTagged = append(infoTagged, infoFramed...)
	infoBcntOuter := uint32(len(infoTagged)) | kByteCountMask
	infoRec = append(be32(infoBcntOuter), infoTagged...)

	options := []byte{0x03, 'x', 'y', 'z'}

	body := []byte{0x00, 0x01}
	body = append(body, be32(0)...)
	body = append(body, be32(kIsOnHeap)...)
	body = append(body, encodeString("StreamerInfoList")...)
	body = append(body, be32(1)...) // size = 1
	body = append(body, infoRec...)
	body = append(body, options...)

	bcnt := uint32(len(body)+2) | kByteCountMask
	buf := append(be32(bcnt), 0x00, 0x01)
	buf = append(buf, body...)

	ctx := &FileContext{classes: newSeedClasses()}
	r := NewRBuffer(buf, nil, 0)
	infos, err := readStreamerInfoList(r, ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "MyClass", infos[0].Name())
	assert.EqualValues(t, 1, infos[0].ClassVersion())
	assert.Empty(t, infos[0].Elements())
}

func TestReadHeaderSmallFile(t *testing.T) {
	const begin = 100
	const seekinfo = 2000
	const rootName = "test.root"

	// The TKey at fBEGIN identifying the file; seekPdir == 0 marks it as the
	// top directory's key and triggers the extra NUL after fName and fTitle.
	topBody := append([]byte{}, encodeString("TFile")...)
	topBody = append(topBody, encodeString(rootName)...)
	topBody = append(topBody, 0x00) // NUL after fName
	topBody = append(topBody, encodeString("")...)
	topBody = append(topBody, 0x00) // NUL after fTitle
	topFixedLen := len(encodeKeyFixed(0, 4, 0, 0, 0, 1, begin, 0))
	topKeylen := int16(topFixedLen + len(topBody))
	topKeyRec := append(encodeKeyFixed(int32(topKeylen), 4, 0, 0, topKeylen, 1, begin, 0), topBody...)

	dirAt := int64(begin) + int64(topKeylen)

	// Root directory: zero keys.
	dirBuf := buildKeyListBuffer(t, dirAt, nil)

	// Streamer info section: a TKey wrapping an empty streamer info list.
	siBody := []byte{0x00, 0x01}
	siBody = append(siBody, be32(0)...)
	siBody = append(siBody, be32(kIsOnHeap)...)
	siBody = append(siBody, encodeString("StreamerInfoList")...)
	siBody = append(siBody, be32(0)...)
	siBcnt := uint32(len(siBody)+2) | kByteCountMask
	siPayload := append(be32(siBcnt), 0x00, 0x01)
	siPayload = append(siPayload, siBody...)

	siKeyRec := encodeKeyRecord("TList", "StreamerInfo", 1, seekinfo, int32(len(siPayload)))

	full := make([]byte, 64)
	full[0], full[1], full[2], full[3] = 'r', 'o', 'o', 't'
	// version (small file)
	copy(full[4:8], be32(60800))
	copy(full[8:12], be32(begin))
	copy(full[12:16], be32(0))  // fEND (unused by readHeader beyond invalid-pointer check)
	copy(full[16:20], be32(0))  // fSeekFree
	copy(full[20:24], be32(0))  // fNbytesFree
	copy(full[24:28], be32(0))  // nfree
	copy(full[28:32], be32(0))  // fNbytesName
	full[32] = 4                // fUnits
	copy(full[33:37], be32(0))  // fCompress (uncompressed)
	copy(full[37:41], be32(seekinfo))
	copy(full[41:45], be32(uint32(len(siKeyRec)+len(siPayload))))

	end := seekinfo + len(siKeyRec) + len(siPayload) + 16
	copy(full[12:16], be32(uint32(end))) // fEND must exceed fSeekInfo

	buf := append([]byte{}, full...)
	if len(buf) < begin {
		buf = append(buf, make([]byte, begin-len(buf))...)
	}
	buf = buf[:begin]
	tail := append([]byte{}, dirBuf[begin:]...)
	copy(tail[:len(topKeyRec)], topKeyRec)
	buf = append(buf, tail...)
	for len(buf) < seekinfo {
		buf = append(buf, 0)
	}
	buf = append(buf, siKeyRec...)
	buf = append(buf, siPayload...)

	r := newMemReader(buf)
	f, err := NewReader(r, "mem.root")
	require.NoError(t, err)
	assert.Equal(t, 60800, f.Version())
	assert.Equal(t, rootName, f.Root().Name())
	assert.Empty(t, f.Root().Keys())
	assert.Empty(t, f.StreamerInfos())
}
