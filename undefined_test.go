// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndefinedDrainsFramedRecord(t *testing.T) {
	buf := []byte{
		0x40, 0x00, 0x00, 0x06, // bcnt = kByteCountMask | 6
		0x00, 0x01, // version
		0xDE, 0xAD, 0xBE, 0xEF, // 4-byte payload, ignored
	}
	r := NewRBuffer(buf, nil, 0)
	obj, err := readObject(undefinedFactory, r, nil)
	require.NoError(t, err)
	assert.Equal(t, "Undefined", obj.Class())
	assert.Equal(t, int64(10), r.Pos())
}
