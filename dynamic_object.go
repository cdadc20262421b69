// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// DynamicObject is the runtime representation of an instance of a
// synthesized (streamer-info-defined) class: an ordered map of field name
// to decoded value. All of a class's declared bases contribute their
// fields into the same DynamicObject.
type DynamicObject struct {
	class  string
	fields map[string]interface{}
	order  []string
}

func (d *DynamicObject) Class() string { return d.class }

// Get returns the value of a decoded field by name.
func (d *DynamicObject) Get(name string) (interface{}, bool) {
	v, ok := d.fields[name]
	return v, ok
}

// Fields returns field names in the order they were decoded.
func (d *DynamicObject) Fields() []string { return d.order }

func (d *DynamicObject) set(name string, v interface{}) {
	if _, ok := d.fields[name]; !ok {
		d.order = append(d.order, name)
	}
	d.fields[name] = v
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int8:
		return int(n), true
	case uint8:
		return int(n), true
	case int16:
		return int(n), true
	case uint16:
		return int(n), true
	case int32:
		return int(n), true
	case uint32:
		return int(n), true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

var _ Object = (*DynamicObject)(nil)
