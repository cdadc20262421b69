// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// seedClasses holds the hand-coded bootstrap readers needed to parse
// streamer metadata and the handful of built-in collection/array classes,
// registered by each bootstrap file's init(). Every FileContext starts
// from a fresh copy of this map (synthesized user classes are added on
// top, per file).
var seedClasses = map[string]ClassFactory{}

func registerSeed(fct ClassFactory) {
	seedClasses[fct.ClassName()] = fct
}

func newSeedClasses() map[string]ClassFactory {
	out := make(map[string]ClassFactory, len(seedClasses))
	for k, v := range seedClasses {
		out[k] = v
	}
	return out
}
