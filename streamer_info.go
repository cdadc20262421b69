// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootio

// TStreamerInfo is the per-class on-disk schema: a name, a class version, a
// checksum, and the ordered list of fields (StreamerElements) that make up
// the class.
type TStreamerInfo struct {
	name         string
	checkSum     uint32
	classVersion int32
	elements     []StreamerElement
}

func (*TStreamerInfo) Class() string            { return "TStreamerInfo" }
func (s *TStreamerInfo) Name() string           { return s.name }
func (s *TStreamerInfo) ClassVersion() int32    { return s.classVersion }
func (s *TStreamerInfo) CheckSum() uint32       { return s.checkSum }
func (s *TStreamerInfo) Elements() []StreamerElement { return s.elements }

type tstreamerInfoFactory struct{}

func (tstreamerInfoFactory) ClassName() string { return "TStreamerInfo" }
func (tstreamerInfoFactory) New() Object       { return &TStreamerInfo{} }
func (tstreamerInfoFactory) ReadInto(o Object, r *RBuffer, ctx *FileContext) error {
	obj := o.(*TStreamerInfo)
	start, cnt, _ := startRecord(r)

	name, _, err := readNameTitle(r)
	if err != nil {
		return err
	}
	obj.name = name

	obj.checkSum = r.ReadU32()
	obj.classVersion = r.ReadI32()

	elements, err := readAnyRef(r, ctx)
	if err != nil {
		return err
	}
	list, ok := elements.(List)
	if !ok {
		return &ErrMalformedStreamer{Detail: "TStreamerInfo.fElements is not a list"}
	}
	obj.elements = make([]StreamerElement, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		se, ok := list.At(i).(StreamerElement)
		if !ok {
			return &ErrMalformedStreamer{Detail: "TStreamerInfo.fElements contains a non-StreamerElement entry"}
		}
		obj.elements = append(obj.elements, se)
	}

	return endRecord(r, start, cnt)
}

func init() { registerSeed(tstreamerInfoFactory{}) }
