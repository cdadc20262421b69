// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeStreamerElementBase builds the wire bytes for one
// readStreamerElementBase record at version 4 (no xmin/xmax/factor tail).
func encodeStreamerElementBase(name, title, typeName string, typ, size, arrayLength, arrayDim int32) []byte {
	var body []byte
	body = append(body, encodeNameTitleFrame(name, title)...)
	body = append(body, be32(uint32(typ))...)
	body = append(body, be32(uint32(size))...)
	body = append(body, be32(uint32(arrayLength))...)
	body = append(body, be32(uint32(arrayDim))...)
	for i := 0; i < 5; i++ {
		body = append(body, be32(0)...)
	}
	body = append(body, encodeString(typeName)...)

	bcnt := uint32(len(body)+2) | kByteCountMask
	out := append(be32(bcnt), 0x00, 0x04) // version 4
	out = append(out, body...)
	return out
}

func encodeString(s string) []byte {
	if len(s) < 0xFF {
		return append([]byte{byte(len(s))}, []byte(s)...)
	}
	out := []byte{0xFF}
	out = append(out, be32(uint32(len(s)))...)
	return append(out, []byte(s)...)
}

// encodeNameTitleFrame builds a framed (TObject, name, title) record as
// readNameTitle expects: version short (no byte-count flag), zero id/bits,
// then the two strings.
func encodeNameTitleFrame(name, title string) []byte {
	var body []byte
	body = append(body, 0x00, 0x01) // TObject version, no kByteCountVMask
	body = append(body, be32(0)...) // fUniqueID
	body = append(body, be32(0)...) // fBits
	body = append(body, encodeString(name)...)
	body = append(body, encodeString(title)...)

	bcnt := uint32(len(body)+2) | kByteCountMask
	out := append(be32(bcnt), 0x00, 0x01)
	return append(out, body...)
}

func TestStreamerBasicTypeNormalizesArrayOffset(t *testing.T) {
	inner := encodeStreamerElementBase("fX", "", "Float_t", kOffsetL+kFloat, 0, 4, 1)
	bcnt := uint32(len(inner)+2) | kByteCountMask
	buf := append(be32(bcnt), 0x00, 0x01) // TStreamerBasicType's own version
	buf = append(buf, inner...)
	r := NewRBuffer(buf, nil, 0)
	obj := &TStreamerBasicType{}
	fct := tstreamerBasicTypeFactory{}
	require.NoError(t, fct.ReadInto(obj, r, nil))

	assert.EqualValues(t, kFloat, obj.Type())
	assert.EqualValues(t, 4*4, obj.size) // fFloat size(4) * arrayLength(4)
	assert.Equal(t, "fX", obj.Name())
}

func TestStreamerBaseReadsVersion(t *testing.T) {
	inner := encodeStreamerElementBase("TNamed", "", "TNamed", 0, 0, 0, 0)
	extra := be32(1) // fBaseVersion

	bcnt := uint32(len(inner)+len(extra)+2) | kByteCountMask
	buf := append(be32(bcnt), 0x00, 0x03) // version 3 > 2, so fBaseVersion is read
	buf = append(buf, inner...)
	buf = append(buf, extra...)

	r := NewRBuffer(buf, nil, 0)
	obj := &TStreamerBase{}
	fct := tstreamerBaseFactory{}
	require.NoError(t, fct.ReadInto(obj, r, nil))
	assert.EqualValues(t, 1, obj.baseVersion)
	assert.Equal(t, "TNamed", obj.Name())
}
