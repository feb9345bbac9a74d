/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package colorspace

// IndexedSpace implements the palette-lookup family: each
// input sample is an index into a fixed palette of base-space
// component tuples.
type IndexedSpace struct {
	Base    ColorSpace
	Count   int // hival + 1
	Palette []byte
}

// NewIndexedSpace constructs an Indexed space over base, with count
// palette entries (hival+1) and palette holding count*base.NumComps()
// bytes. The lookup source may be a byte string; callers
// mask each code unit with 0xff before calling this constructor so
// palette is always a plain byte slice here.
func NewIndexedSpace(base ColorSpace, count int, palette []byte) (*IndexedSpace, error) {
	if count < 0 {
		return nil, formatErrorf("colorspace: Indexed hival+1 must be non-negative, got %d", count)
	}
	if count > 256 {
		warnf("colorspace: Indexed palette count %d exceeds the 8-bit index domain, clamping to 256", count)
		count = 256
	}
	want := count * base.NumComps()
	if len(palette) < want {
		warnf("colorspace: Indexed palette has %d bytes, want %d; padding with zero", len(palette), want)
		padded := make([]byte, want)
		copy(padded, palette)
		palette = padded
	}
	return &IndexedSpace{Base: base, Count: count, Palette: palette}, nil
}

func (s *IndexedSpace) Name() FamilyName         { return FamilyIndexed }
func (s *IndexedSpace) NumComps() int            { return 1 }
func (s *IndexedSpace) UsesZeroToOneRange() bool { return true }
func (s *IndexedSpace) IsPassthrough(bits int) bool { return false }

// IsDefaultDecode reports whether decodeMap is the length-2 array
// [0, (1<<bpc)-1]: the identity over the palette's own
// index domain, not the common [0,1] rule. A nil map, a map whose
// length is not 2, or a non-positive bpc also report true.
func (s *IndexedSpace) IsDefaultDecode(decodeMap []float64, bpc int) bool {
	if decodeMap == nil {
		return true
	}
	if bpc <= 0 {
		warnf("colorspace: Indexed decode check given non-positive bpc %d, treating as default", bpc)
		return true
	}
	if len(decodeMap) != 2 {
		warnf("colorspace: Indexed decode array length %d != 2, treating as default", len(decodeMap))
		return true
	}
	return decodeMap[0] == 0 && decodeMap[1] == float64((1<<uint(bpc))-1)
}

func (s *IndexedSpace) GetOutputLength(inputLength, alpha01 int) int {
	return s.Base.GetOutputLength(inputLength*s.Base.NumComps(), alpha01)
}

func (s *IndexedSpace) GetRgb(src []byte, srcOffset int) [3]byte {
	var dest [3]byte
	s.GetRgbItem(src, srcOffset, dest[:], 0)
	return dest
}

func (s *IndexedSpace) lookup(index int) []byte {
	n := s.Base.NumComps()
	start := index * n
	if start < 0 || start+n > len(s.Palette) {
		return make([]byte, n)
	}
	return s.Palette[start : start+n]
}

func (s *IndexedSpace) GetRgbItem(src []byte, srcOffset int, dest []byte, destOffset int) {
	index := int(src[srcOffset])
	entry := s.lookup(index)
	s.Base.GetRgbBuffer(entry, 0, 1, dest, destOffset, 8, 0)
}

func (s *IndexedSpace) GetRgbBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	srcPos, destPos := srcOffset, destOffset
	for i := 0; i < count; i++ {
		index := int(src[srcPos])
		entry := s.lookup(index)
		s.Base.GetRgbBuffer(entry, 0, 1, dest, destPos, 8, 0)
		srcPos++
		destPos += 3 + alpha01
	}
}
