// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTArrayDReadInto(t *testing.T) {
	buf := be32(3)
	buf = append(buf, be64(math.Float64bits(1.5))...)
	buf = append(buf, be64(math.Float64bits(2.5))...)
	buf = append(buf, be64(math.Float64bits(3.5))...)

	r := NewRBuffer(buf, nil, 0)
	obj, err := readObject(tarrayDFactory{}, r, nil)
	require.NoError(t, err)
	arr, ok := obj.(*TArrayD)
	require.True(t, ok)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, arr.Data())
}
