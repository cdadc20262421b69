// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import "log"

var verbose = false

// SetVerbose turns on/off trace logging of the file-header and key-header
// fields as they are decoded.
func SetVerbose(v bool) {
	verbose = v
}

func myprintf(format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Printf(format, args...)
}
