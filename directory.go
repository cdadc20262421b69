// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ROOTDirectory is a node of the file's directory tree: a name, the shared
// file context, and the keys stored directly under it.
type ROOTDirectory struct {
	name string
	ctx  *FileContext
	src  io.ReaderAt
	keys []*Key
}

func (d *ROOTDirectory) Class() string { return "TDirectory" }
func (d *ROOTDirectory) Name() string  { return d.name }

// Len returns the number of keys stored directly in this directory.
func (d *ROOTDirectory) Len() int { return len(d.keys) }

// Keys returns this directory's keys in stored order (no recursion).
func (d *ROOTDirectory) Keys() []*Key { return d.keys }

// Classes returns the distinct class names of this directory's own keys,
// in first-seen order.
func (d *ROOTDirectory) Classes() []string {
	seen := make(map[string]bool, len(d.keys))
	out := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		if !seen[k.class] {
			seen[k.class] = true
			out = append(out, k.class)
		}
	}
	return out
}

// Get resolves a "/"-separated, optionally ";cycle"-suffixed path.
func (d *ROOTDirectory) Get(namecycle string) (Object, error) {
	return d.get(namecycle, -1)
}

func (d *ROOTDirectory) get(name string, cycle int) (Object, error) {
	if idx := strings.IndexByte(name, '/'); idx >= 0 {
		head, rest := name[:idx], name[idx+1:]
		sub, err := d.get(head, -1)
		if err != nil {
			return nil, err
		}
		subdir, ok := sub.(*ROOTDirectory)
		if !ok {
			return nil, &ErrKeyNotFound{Path: name}
		}
		return subdir.get(rest, cycle)
	}

	if cycle < 0 {
		if idx := strings.LastIndexByte(name, ';'); idx >= 0 {
			if n, err := strconv.Atoi(name[idx+1:]); err == nil {
				name, cycle = name[:idx], n
			}
		}
	}

	for _, k := range d.keys {
		if k.name != name {
			continue
		}
		if cycle >= 0 && int(k.cycle) != cycle {
			continue
		}
		return k.Object()
	}
	return nil, &ErrKeyNotFound{Path: name}
}

// DirItem pairs a recursively-resolved "/"-joined, ";cycle"-suffixed path
// with the key it names.
type DirItem struct {
	Path string
	Key  *Key
}

// walk visits every key reachable from d, descending into every key whose
// class is exactly "TDirectory" regardless of filtering: filter predicates
// are applied only to the yielded keys, never to descent decisions.
func (d *ROOTDirectory) walk(prefix string, visit func(item DirItem) error) error {
	for _, k := range d.keys {
		seg := fmt.Sprintf("%s;%d", k.name, k.cycle)
		path := seg
		if prefix != "" {
			path = prefix + "/" + seg
		}
		if err := visit(DirItem{Path: path, Key: k}); err != nil {
			return err
		}
		if k.class != "TDirectory" {
			continue
		}
		obj, err := k.Object()
		if err != nil {
			return err
		}
		subdir, ok := obj.(*ROOTDirectory)
		if !ok {
			continue
		}
		if err := subdir.walk(path, visit); err != nil {
			return err
		}
	}
	return nil
}

// AllItems recursively lists every key under d, optionally filtered by
// name and/or class (empty string disables that filter).
func (d *ROOTDirectory) AllItems(filtername, filterclass string) ([]DirItem, error) {
	var out []DirItem
	err := d.walk("", func(item DirItem) error {
		if filtername != "" && item.Key.name != filtername {
			return nil
		}
		if filterclass != "" && item.Key.class != filterclass {
			return nil
		}
		out = append(out, item)
		return nil
	})
	return out, err
}

// AllKeys recursively lists every matching key's "/"-joined path.
func (d *ROOTDirectory) AllKeys(filtername, filterclass string) ([]string, error) {
	items, err := d.AllItems(filtername, filterclass)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path
	}
	return out, nil
}

// AllValues recursively decodes every matching key's object.
func (d *ROOTDirectory) AllValues(filtername, filterclass string) ([]Object, error) {
	items, err := d.AllItems(filtername, filterclass)
	if err != nil {
		return nil, err
	}
	out := make([]Object, len(items))
	for i, it := range items {
		obj, err := it.Key.Object()
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}

// AllClasses recursively lists the distinct class names reachable from d,
// in first-seen order.
func (d *ROOTDirectory) AllClasses() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	err := d.walk("", func(item DirItem) error {
		if !seen[item.Key.class] {
			seen[item.Key.class] = true
			out = append(out, item.Key.class)
		}
		return nil
	})
	return out, err
}

// readDirectory decodes a TDirectory record at byte offset at: a small
// fixed header giving the seek position and byte length of the directory's
// key list, then that many bytes' worth of a TKey header (discarded), an
// int32 key count, and that many consecutive TKey records.
func readDirectory(src io.ReaderAt, ctx *FileContext, at int64, name string) (*ROOTDirectory, error) {
	hdr := make([]byte, 64)
	if _, err := src.ReadAt(hdr, at); err != nil {
		return nil, fmt.Errorf("rootio: reading TDirectory header at %d: %w", at, err)
	}
	r := NewRBuffer(hdr, nil, 0)

	vers := r.ReadU16()
	r.Skip(4) // fDatimeC
	r.Skip(4) // fDatimeM
	nbytesKeys := r.ReadI32()
	r.Skip(4) // fNbytesName

	var seekKeys int64
	if vers <= 1000 {
		r.Skip(4) // fSeekDir
		r.Skip(4) // fSeekParent
		seekKeys = int64(r.ReadI32())
	} else {
		r.Skip(8)
		r.Skip(8)
		seekKeys = r.ReadI64()
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	buf := make([]byte, int(nbytesKeys))
	if _, err := src.ReadAt(buf, seekKeys); err != nil {
		return nil, fmt.Errorf("rootio: reading key list at %d: %w", seekKeys, err)
	}
	kr := NewRBuffer(buf, nil, 0)

	if _, err := readKey(kr); err != nil { // the key list's own wrapping TKey header
		return nil, err
	}
	nkeys := int(kr.ReadI32())
	if err := kr.Err(); err != nil {
		return nil, err
	}

	keys := make([]*Key, 0, nkeys)
	for i := 0; i < nkeys; i++ {
		k, err := readKey(kr)
		if err != nil {
			return nil, err
		}
		k.src = src
		k.ctx = ctx
		keys = append(keys, k)
	}

	return &ROOTDirectory{name: name, ctx: ctx, src: src, keys: keys}, nil
}

var _ Object = (*ROOTDirectory)(nil)
