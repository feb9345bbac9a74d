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

// Bradford chromatic-adaptation matrices, the sRGB/D65 XYZ→RGB matrix
// and the D65 reference white: fixed constants, reproduced exactly.
var (
	bradford = [3][3]float32{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	bradfordInv = [3][3]float32{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
	srgbD65XYZToRGB = [3][3]float32{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

const (
	d65X = 0.95047
	d65Y = 1.0
	d65Z = 1.08883

	// decodeLK is the fixed black-point-compensation constant:
	// K = ((8+16)/116)^3 / 8.0.
	decodeLK = float32(((8.0 + 16.0) / 116.0) * ((8.0 + 16.0) / 116.0) * ((8.0 + 16.0) / 116.0) / 8.0)
)

func mulMat3Vec3(m [3][3]float32, v [3]float32) [3]float32 {
	return [3]float32{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// decodeL implements the piecewise black-point decode:
// v*K for v<=8, else ((v+16)/116)^3.
func decodeL(v float32) float32 {
	if v <= 8 {
		return v * decodeLK
	}
	t := (v + 16) / 116
	return t * t * t
}

// normalizeWhitePointToFlat normalizes xyz computed under srcWhite to
// the flat (1,1,1) reference, skipping the adaptation when srcWhite is
// already flat in components 0 and 2 (component 1, Y, is always 1 by
// the CalRGB/CalGray invariant).
func normalizeWhitePointToFlat(srcWhite [3]float32, xyz [3]float32) [3]float32 {
	if srcWhite[0] == 1 && srcWhite[2] == 1 {
		return xyz
	}
	lms := mulMat3Vec3(bradford, xyz)
	lms[0] /= srcWhite[0]
	lms[1] /= srcWhite[1]
	lms[2] /= srcWhite[2]
	return mulMat3Vec3(bradfordInv, lms)
}

// compensateBlackPoint scales xyz so that srcBlack maps to (0,0,0),
// skipping the adaptation when srcBlack is already (0,0,0), against
// the fixed destination black of (0,0,0).
func compensateBlackPoint(srcBlack [3]float32, xyz [3]float32) [3]float32 {
	if srcBlack[0] == 0 && srcBlack[1] == 0 && srcBlack[2] == 0 {
		return xyz
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		srcL := decodeL(srcBlack[i])
		scale := float32(1) / (1 - srcL)
		offset := 1 - scale
		out[i] = xyz[i]*scale + offset
	}
	return out
}

// normalizeFlatToD65 adapts xyz (referenced to the flat (1,1,1)
// whitepoint) to the D65 reference white via a full Bradford
// cone-response ratio.
func normalizeFlatToD65(xyz [3]float32) [3]float32 {
	lms := mulMat3Vec3(bradford, xyz)
	lmsFlat := mulMat3Vec3(bradford, [3]float32{1, 1, 1})
	lmsD65 := mulMat3Vec3(bradford, [3]float32{d65X, d65Y, d65Z})
	lms[0] = lms[0] * lmsD65[0] / lmsFlat[0]
	lms[1] = lms[1] * lmsD65[1] / lmsFlat[1]
	lms[2] = lms[2] * lmsD65[2] / lmsFlat[2]
	return mulMat3Vec3(bradfordInv, lms)
}

// srgbTransfer applies the sRGB transfer function to a single
// linear-light channel in [0,1]-ish range, clamped to [0,1] and scaled
// to [0,255].
func srgbTransfer(c float32) float32 {
	if c <= 0.0031308 {
		v := 12.92 * c
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return v * 255
	}
	if c >= 0.99554525 {
		return 255
	}
	v := float32(1.055)*float32(math.Pow(float64(c), 1/2.4)) - 0.055
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v * 255
}

// CalGraySpace implements the CIE-based gray family.
type CalGraySpace struct {
	WhitePoint [3]float32
	BlackPoint [3]float32
	Gamma      float32
}

// NewCalGraySpace validates and constructs a CalGray space, applying
// the documented defaults/recoveries for out-of-range fields.
func NewCalGraySpace(whitePoint, blackPoint [3]float32, gamma float32) (*CalGraySpace, error) {
	if whitePoint[1] != 1 {
		return nil, formatErrorf("colorspace: CalGray whitepoint YW must be 1, got %v", whitePoint[1])
	}
	if whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, formatErrorf("colorspace: CalGray whitepoint XW/ZW must be non-negative, got %v", whitePoint)
	}
	if blackPoint[0] < 0 || blackPoint[1] < 0 || blackPoint[2] < 0 {
		infof("colorspace: CalGray blackpoint %v has a negative component, resetting to (0,0,0)", blackPoint)
		blackPoint = [3]float32{0, 0, 0}
	} else if blackPoint != [3]float32{0, 0, 0} {
		warnf("colorspace: CalGray non-default blackpoint %v accepted but numerically ignored", blackPoint)
	}
	if gamma < 1 {
		infof("colorspace: CalGray gamma %v < 1, forcing to 1", gamma)
		gamma = 1
	}
	return &CalGraySpace{WhitePoint: whitePoint, BlackPoint: blackPoint, Gamma: gamma}, nil
}

func (s *CalGraySpace) Name() FamilyName         { return FamilyCalGray }
func (s *CalGraySpace) NumComps() int            { return 1 }
func (s *CalGraySpace) UsesZeroToOneRange() bool { return true }
func (s *CalGraySpace) IsPassthrough(bits int) bool { return false }

func (s *CalGraySpace) IsDefaultDecode(decodeMap []float64, bpc int) bool {
	return isDefaultDecodeCommon(decodeMap, 1)
}

func (s *CalGraySpace) GetOutputLength(inputLength, alpha01 int) int {
	return outputLengthSimple(inputLength, 1, alpha01)
}

func (s *CalGraySpace) GetRgb(src []byte, srcOffset int) [3]byte {
	var dest [3]byte
	s.GetRgbItem(src, srcOffset, dest[:], 0)
	return dest
}

func (s *CalGraySpace) convert(a float32) byte {
	l := s.WhitePoint[1] * float32(math.Pow(float64(a), float64(s.Gamma)))
	v := float32(295.8)*float32(math.Cbrt(float64(l))) - 40.8
	if v < 0 {
		v = 0
	}
	return clampByte32(v)
}

func (s *CalGraySpace) GetRgbItem(src []byte, srcOffset int, dest []byte, destOffset int) {
	a := float32(src[srcOffset]) / 255
	v := s.convert(a)
	dest[destOffset] = v
	dest[destOffset+1] = v
	dest[destOffset+2] = v
}

func (s *CalGraySpace) GetRgbBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	scale := float32(1.0 / float64((1<<uint(bits))-1))
	srcPos, destPos := srcOffset, destOffset
	for i := 0; i < count; i++ {
		a := float32(src[srcPos]) * scale
		v := s.convert(a)
		dest[destPos] = v
		dest[destPos+1] = v
		dest[destPos+2] = v
		srcPos++
		destPos += 3 + alpha01
	}
}

// CalRGBSpace implements the CIE-based RGB family:
// per-channel gamma, a 3x3 matrix to XYZ, Bradford adaptation, black-
// point compensation, and the sRGB transfer function.
type CalRGBSpace struct {
	WhitePoint [3]float32
	BlackPoint [3]float32
	Gamma      [3]float32 // GR, GG, GB
	Matrix     [3][3]float32
}

// defaultCalRGBMatrix is the identity matrix used when the PDF
// descriptor omits the optional Matrix entry.
var defaultCalRGBMatrix = [3][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// NewCalRGBSpace validates and constructs a CalRGB space.
func NewCalRGBSpace(whitePoint, blackPoint [3]float32, gamma [3]float32, mat [3][3]float32) (*CalRGBSpace, error) {
	if whitePoint[1] != 1 {
		return nil, formatErrorf("colorspace: CalRGB whitepoint YW must be 1, got %v", whitePoint[1])
	}
	if whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, formatErrorf("colorspace: CalRGB whitepoint XW/ZW must be non-negative, got %v", whitePoint)
	}
	if blackPoint[0] < 0 || blackPoint[1] < 0 || blackPoint[2] < 0 {
		infof("colorspace: CalRGB blackpoint %v has a negative component, resetting to (0,0,0)", blackPoint)
		blackPoint = [3]float32{0, 0, 0}
	}
	if gamma[0] < 0 || gamma[1] < 0 || gamma[2] < 0 {
		infof("colorspace: CalRGB gamma %v has a negative component, resetting to (1,1,1)", gamma)
		gamma = [3]float32{1, 1, 1}
	}
	return &CalRGBSpace{WhitePoint: whitePoint, BlackPoint: blackPoint, Gamma: gamma, Matrix: mat}, nil
}

func (s *CalRGBSpace) Name() FamilyName         { return FamilyCalRGB }
func (s *CalRGBSpace) NumComps() int            { return 3 }
func (s *CalRGBSpace) UsesZeroToOneRange() bool { return true }
func (s *CalRGBSpace) IsPassthrough(bits int) bool { return false }

func (s *CalRGBSpace) IsDefaultDecode(decodeMap []float64, bpc int) bool {
	return isDefaultDecodeCommon(decodeMap, 3)
}

func (s *CalRGBSpace) GetOutputLength(inputLength, alpha01 int) int {
	return outputLengthSimple(inputLength, 3, alpha01)
}

func (s *CalRGBSpace) GetRgb(src []byte, srcOffset int) [3]byte {
	var dest [3]byte
	s.GetRgbItem(src, srcOffset, dest[:], 0)
	return dest
}

func gammaCorrect(a, g float32) float32 {
	if a == 1 {
		return 1
	}
	return float32(math.Pow(float64(a), float64(g)))
}

func (s *CalRGBSpace) convert(r, g, b float32) [3]byte {
	agr := gammaCorrect(r, s.Gamma[0])
	agg := gammaCorrect(g, s.Gamma[1])
	agb := gammaCorrect(b, s.Gamma[2])

	xyz := mulMat3Vec3(s.Matrix, [3]float32{agr, agg, agb})
	xyz = normalizeWhitePointToFlat(s.WhitePoint, xyz)
	xyz = compensateBlackPoint(s.BlackPoint, xyz)
	xyz = normalizeFlatToD65(xyz)
	rgbLinear := mulMat3Vec3(srgbD65XYZToRGB, xyz)

	return [3]byte{
		clampByte32(srgbTransfer(rgbLinear[0])),
		clampByte32(srgbTransfer(rgbLinear[1])),
		clampByte32(srgbTransfer(rgbLinear[2])),
	}
}

func (s *CalRGBSpace) GetRgbItem(src []byte, srcOffset int, dest []byte, destOffset int) {
	rgb := s.convert(
		float32(src[srcOffset])/255,
		float32(src[srcOffset+1])/255,
		float32(src[srcOffset+2])/255,
	)
	dest[destOffset] = rgb[0]
	dest[destOffset+1] = rgb[1]
	dest[destOffset+2] = rgb[2]
}

func (s *CalRGBSpace) GetRgbBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	scale := float32(1.0 / float64((1<<uint(bits))-1))
	srcPos, destPos := srcOffset, destOffset
	for i := 0; i < count; i++ {
		rgb := s.convert(
			float32(src[srcPos])*scale,
			float32(src[srcPos+1])*scale,
			float32(src[srcPos+2])*scale,
		)
		dest[destPos] = rgb[0]
		dest[destPos+1] = rgb[1]
		dest[destPos+2] = rgb[2]
		srcPos += 3
		destPos += 3 + alpha01
	}
}
