// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// Object is implemented by every value this package can hand back from a
// Directory or a Key: it can at least report its own ROOT class name.
type Object interface {
	Class() string
}

// Named is implemented by objects carrying a ROOT TNamed pair.
type Named interface {
	Object
	Name() string
	Title() string
}

// List is implemented by ordered ROOT collections (TObjArray, TList).
type List interface {
	Object
	Len() int
	At(i int) Object
}

// ClassFactory produces fresh instances of one ROOT class and knows how to
// populate them from the wire. Equality of two ClassFactory values is
// identity, which the tagged-ref protocol relies on to validate that a
// class-tag reference resolves to a factory actually registered in this
// file's context (see readref.go).
type ClassFactory interface {
	// ClassName is the ROOT class name this factory produces.
	ClassName() string
	// New allocates a blank instance.
	New() Object
	// ReadInto decodes one instance of the class from r into obj.
	ReadInto(obj Object, r *RBuffer, ctx *FileContext) error
}

// readObject allocates a new instance and decodes it, the common entry point
// used by readAnyRef and by generated class readers.
func readObject(fct ClassFactory, r *RBuffer, ctx *FileContext) (Object, error) {
	obj := fct.New()
	if err := fct.ReadInto(obj, r, ctx); err != nil {
		return nil, err
	}
	return obj, nil
}

// FileContext holds everything shared, read-only, across every reader
// spawned from one open ROOT file: the decoded streamer infos, the map
// from class name to synthesized/bootstrap factory, and the file's
// compression spec. It is immutable once Open/NewReader returns.
type FileContext struct {
	StreamerInfos []*TStreamerInfo
	classes       map[string]ClassFactory
	Compression   CompressionSpec
}

func (c *FileContext) factory(name string) (ClassFactory, bool) {
	fct, ok := c.classes[name]
	return fct, ok
}
