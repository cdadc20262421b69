// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStringShortAndLong(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{"empty", []byte{0x00}, ""},
		{"short", append([]byte{0x05}, "hello"...), "hello"},
		{"long", append([]byte{0xFF, 0x00, 0x00, 0x01, 0x00}, make([]byte, 256)...), string(make([]byte, 256))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRBuffer(tt.buf, nil, 0)
			got := r.ReadString()
			require.NoError(t, r.Err())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCString(t *testing.T) {
	r := NewRBuffer([]byte("hello\x00world"), nil, 0)
	assert.Equal(t, "hello", r.ReadCString())
	assert.Equal(t, "world", r.ReadCString())
}

func TestRecordFraming(t *testing.T) {
	// cnt field carries kByteCountMask and encodes 2 (version) + 4 (payload) bytes.
	buf := []byte{
		0x40, 0x00, 0x00, 0x06, // bcnt = kByteCountMask | 6
		0x00, 0x01, // version
		0xDE, 0xAD, 0xBE, 0xEF, // 4-byte payload
	}
	r := NewRBuffer(buf, nil, 0)
	start, cnt, vers := startRecord(r)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(10), cnt)
	assert.EqualValues(t, 1, vers)
	r.Skip(4)
	require.NoError(t, endRecord(r, start, cnt))
}

func TestRecordFramingMismatch(t *testing.T) {
	buf := []byte{0x40, 0x00, 0x00, 0x06, 0x00, 0x01, 0xDE, 0xAD, 0xBE, 0xEF}
	r := NewRBuffer(buf, nil, 0)
	start, cnt, _ := startRecord(r)
	r.Skip(2) // consume too little
	err := endRecord(r, start, cnt)
	require.Error(t, err)
	var merr *ErrMalformedRecord
	require.ErrorAs(t, err, &merr)
}

func TestReadFastArrays(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}
	r := NewRBuffer(buf, nil, 0)
	got := r.ReadFastArrayI16(3)
	require.NoError(t, r.Err())
	assert.Equal(t, []int16{1, 2, 3}, got)
}

func TestSeekPos(t *testing.T) {
	r := NewRBuffer([]byte{1, 2, 3, 4, 5}, nil, 10)
	assert.EqualValues(t, 10, r.Pos())
	require.NoError(t, r.seekPos(13))
	assert.Equal(t, uint8(4), r.ReadU8())
	require.Error(t, r.seekPos(100))
}
