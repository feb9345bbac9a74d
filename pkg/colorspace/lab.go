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

import "math"

// labD50XYZToRGB and labD65XYZToRGB are the fixed 3x3 matrices used by
// the Lab family, chosen by the ZW<1 vs ZW>=1 branch.
var (
	labD50XYZToRGB = [3][3]float32{
		{3.1338561, -1.6168667, -0.4906146},
		{-0.9787684, 1.9161415, 0.0334540},
		{0.0719453, -0.2289914, 1.4052427},
	}
	labD65XYZToRGB = srgbD65XYZToRGB
)

// LabSpace implements the CIE L*a*b* family.
type LabSpace struct {
	WhitePoint [3]float32
	BlackPoint [3]float32
	AMin, AMax float32
	BMin, BMax float32
}

// NewLabSpace validates and constructs a Lab space, applying the
// documented range defaults of (-100,100,-100,100).
func NewLabSpace(whitePoint, blackPoint [3]float32, amin, amax, bmin, bmax float32, rangeGiven bool) (*LabSpace, error) {
	if whitePoint[1] != 1 {
		return nil, formatErrorf("colorspace: Lab whitepoint YW must be 1, got %v", whitePoint[1])
	}
	if whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, formatErrorf("colorspace: Lab whitepoint XW/ZW must be non-negative, got %v", whitePoint)
	}
	if blackPoint[0] < 0 || blackPoint[1] < 0 || blackPoint[2] < 0 {
		infof("colorspace: Lab blackpoint %v has a negative component, resetting to (0,0,0)", blackPoint)
		blackPoint = [3]float32{0, 0, 0}
	}
	if !rangeGiven {
		amin, amax, bmin, bmax = -100, 100, -100, 100
	}
	if amin > amax || bmin > bmax {
		infof("colorspace: Lab range a=[%v,%v] b=[%v,%v] invalid, resetting to defaults", amin, amax, bmin, bmax)
		amin, amax, bmin, bmax = -100, 100, -100, 100
	}
	return &LabSpace{WhitePoint: whitePoint, BlackPoint: blackPoint, AMin: amin, AMax: amax, BMin: bmin, BMax: bmax}, nil
}

func (s *LabSpace) Name() FamilyName         { return FamilyLab }
func (s *LabSpace) NumComps() int            { return 3 }
func (s *LabSpace) UsesZeroToOneRange() bool { return false }
func (s *LabSpace) IsPassthrough(bits int) bool { return false }

// IsDefaultDecode always returns true for Lab: decoding is folded into
// the conversion itself.
func (s *LabSpace) IsDefaultDecode(decodeMap []float64, bpc int) bool { return true }

func (s *LabSpace) GetOutputLength(inputLength, alpha01 int) int {
	return outputLengthSimple(inputLength, 3, alpha01)
}

func (s *LabSpace) GetRgb(src []byte, srcOffset int) [3]byte {
	var dest [3]byte
	s.GetRgbItem(src, srcOffset, dest[:], 0)
	return dest
}

func gLab(x float32) float32 {
	const sixOver29 = float32(6.0 / 29.0)
	if x >= sixOver29 {
		return x * x * x
	}
	return float32(108.0/841.0) * (x - float32(4.0/29.0))
}

// convert runs the shared Lab pipeline on already-decoded L*, a*, b*
// values (L in [0,100], a/b clamped to this instance's ranges).
func (s *LabSpace) convert(l, a, b float32) [3]byte {
	if a < s.AMin {
		a = s.AMin
	} else if a > s.AMax {
		a = s.AMax
	}
	if b < s.BMin {
		b = s.BMin
	} else if b > s.BMax {
		b = s.BMax
	}

	m := (l + 16) / 116
	lp := m + a/500
	n := m - b/200

	x := s.WhitePoint[0] * gLab(lp)
	y := s.WhitePoint[1] * gLab(m)
	z := s.WhitePoint[2] * gLab(n)

	mat := labD65XYZToRGB
	if s.WhitePoint[2] < 1 {
		mat = labD50XYZToRGB
	}
	rgbLinear := mulMat3Vec3(mat, [3]float32{x, y, z})

	return [3]byte{
		labByte(rgbLinear[0]),
		labByte(rgbLinear[1]),
		labByte(rgbLinear[2]),
	}
}

func labByte(r float32) byte {
	if r <= 0 {
		return 0
	}
	return clampByte32(float32(math.Sqrt(float64(r))) * 255)
}

func (s *LabSpace) GetRgbItem(src []byte, srcOffset int, dest []byte, destOffset int) {
	l := float32(src[srcOffset]) * 100 / 255
	a := float32(src[srcOffset+1])*(s.AMax-s.AMin)/255 + s.AMin
	b := float32(src[srcOffset+2])*(s.BMax-s.BMin)/255 + s.BMin
	rgb := s.convert(l, a, b)
	dest[destOffset] = rgb[0]
	dest[destOffset+1] = rgb[1]
	dest[destOffset+2] = rgb[2]
}

func (s *LabSpace) GetRgbBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	maxVal := float32((1 << uint(bits)) - 1)
	srcPos, destPos := srcOffset, destOffset
	for i := 0; i < count; i++ {
		l := float32(src[srcPos]) * 100 / maxVal
		a := float32(src[srcPos+1])*(s.AMax-s.AMin)/maxVal + s.AMin
		b := float32(src[srcPos+2])*(s.BMax-s.BMin)/maxVal + s.BMin
		rgb := s.convert(l, a, b)
		dest[destPos] = rgb[0]
		dest[destPos+1] = rgb[1]
		dest[destPos+2] = rgb[2]
		srcPos += 3
		destPos += 3 + alpha01
	}
}
