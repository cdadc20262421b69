// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeKeyFixed builds the fixed-size portion of a TKey header plus its
// seek pair, using 32-bit seeks when version <= 1000.
func encodeKeyFixed(nbytes int32, version int16, objlen int32, datime uint32, keylen, cycle int16, seekKey, seekPdir int64) []byte {
	var buf []byte
	buf = append(buf, be32(uint32(nbytes))...)
	buf = append(buf, byte(version>>8), byte(version))
	buf = append(buf, be32(uint32(objlen))...)
	buf = append(buf, be32(datime)...)
	buf = append(buf, byte(keylen>>8), byte(keylen))
	buf = append(buf, byte(cycle>>8), byte(cycle))
	if version > 1000 {
		buf = append(buf, be64(uint64(seekKey))...)
		buf = append(buf, be64(uint64(seekPdir))...)
	} else {
		buf = append(buf, be32(uint32(seekKey))...)
		buf = append(buf, be32(uint32(seekPdir))...)
	}
	return buf
}

func be64(v uint64) []byte {
	return []byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

func TestReadKeyBasic32Bit(t *testing.T) {
	buf := encodeKeyFixed(100, 4, 50, 0, 64, 1, 200, 10)
	buf = append(buf, encodeString("TH1F")...)
	buf = append(buf, encodeString("histo")...)
	buf = append(buf, encodeString("my histogram")...)

	r := NewRBuffer(buf, nil, 0)
	k, err := readKey(r)
	require.NoError(t, err)
	assert.Equal(t, "TH1F", k.Class())
	assert.Equal(t, "histo", k.Name())
	assert.Equal(t, "my histogram", k.Title())
	assert.Equal(t, 1, k.Cycle())
	assert.False(t, k.isTopDirectory())
	assert.False(t, k.isGap())
}

func TestReadKeyTopDirectoryRequiresTrailingNULs(t *testing.T) {
	buf := encodeKeyFixed(100, 4, 50, 0, 64, 1, 200, 0) // seekPdir == 0 -> top directory
	buf = append(buf, encodeString("TDirectory")...)
	buf = append(buf, encodeString("top")...)
	buf = append(buf, 0x00) // NUL after fName
	buf = append(buf, encodeString("")...)
	buf = append(buf, 0x00) // NUL after fTitle

	r := NewRBuffer(buf, nil, 0)
	k, err := readKey(r)
	require.NoError(t, err)
	assert.True(t, k.isTopDirectory())
	assert.Equal(t, "top", k.Name())
	assert.Equal(t, "", k.Title())
}

func TestReadKeyTopDirectoryMalformedTrailingByte(t *testing.T) {
	buf := encodeKeyFixed(100, 4, 50, 0, 64, 1, 200, 0)
	buf = append(buf, encodeString("TDirectory")...)
	buf = append(buf, encodeString("top")...)
	buf = append(buf, 0x01) // byte after fName is not NUL
	buf = append(buf, encodeString("")...)
	buf = append(buf, 0x00)

	r := NewRBuffer(buf, nil, 0)
	_, err := readKey(r)
	require.Error(t, err)
	var merr *ErrMalformedRecord
	require.ErrorAs(t, err, &merr)
}

func TestReadKey64BitSeeks(t *testing.T) {
	buf := encodeKeyFixed(100, 1001, 50, 0, 80, 2, 1<<40, 1<<41)
	buf = append(buf, encodeString("TTree")...)
	buf = append(buf, encodeString("tree")...)
	buf = append(buf, encodeString("")...)

	r := NewRBuffer(buf, nil, 0)
	k, err := readKey(r)
	require.NoError(t, err)
	assert.EqualValues(t, 1<<40, k.seekKey)
	assert.EqualValues(t, 1<<41, k.seekPdir)
}

func TestReadKeyGap(t *testing.T) {
	buf := be32(uint32(int32(-4)))
	r := NewRBuffer(buf, nil, 0)
	k, err := readKey(r)
	require.NoError(t, err)
	assert.True(t, k.isGap())
	assert.Equal(t, "[GAP]", k.Class())
}

func TestKeyIsCompressed(t *testing.T) {
	k := &Key{nbytes: 100, keylen: 20, objlen: 80}
	assert.False(t, k.isCompressed())

	k2 := &Key{nbytes: 100, keylen: 20, objlen: 500}
	assert.True(t, k2.isCompressed())
}

func TestDatime2Time(t *testing.T) {
	// 2023-03-15 10:30:45
	d := uint32(2023-1995)<<26 | uint32(3)<<22 | uint32(15)<<17 | uint32(10)<<12 | uint32(30)<<6 | uint32(45)
	got := datime2time(d)
	want := time.Date(2023, time.March, 15, 10, 30, 45, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}
