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

// Package colorspace evaluates PDF color-space descriptors against raw
// sample buffers, producing sRGB bytes suitable for compositing into a
// raster image. It implements DeviceGray, DeviceRGB, DeviceCMYK,
// CalGray, CalRGB, Lab, Indexed, Separation/DeviceN ("Alternate") and
// Pattern (held opaquely, never evaluated).
package colorspace

// FamilyName identifies one of the nine PDF color-space families.
type FamilyName string

const (
	FamilyDeviceGray FamilyName = "DeviceGray"
	FamilyDeviceRGB  FamilyName = "DeviceRGB"
	FamilyDeviceCMYK FamilyName = "DeviceCMYK"
	FamilyCalGray    FamilyName = "CalGray"
	FamilyCalRGB     FamilyName = "CalRGB"
	FamilyLab        FamilyName = "Lab"
	FamilyIndexed    FamilyName = "Indexed"
	FamilyAlternate  FamilyName = "Alternate"
	FamilyPattern    FamilyName = "Pattern"
)

// ColorSpace is the contract every concrete color-space family
// implements. Composite spaces (Indexed, Alternate) delegate to a
// stored base; Pattern implements the interface but its conversion
// methods must never be called (see errors.go).
type ColorSpace interface {
	// Name reports which of the nine families this instance is.
	Name() FamilyName

	// NumComps is the number of input components per sample.
	NumComps() int

	// UsesZeroToOneRange reports whether scaled inputs lie in [0,1].
	// False only for Lab.
	UsesZeroToOneRange() bool

	// GetRgb allocates and returns one clamped RGB triple.
	GetRgb(src []byte, srcOffset int) [3]byte

	// GetRgbItem writes one clamped RGB triple at dest[destOffset:destOffset+3].
	GetRgbItem(src []byte, srcOffset int, dest []byte, destOffset int)

	// GetRgbBuffer converts count samples starting at srcOffset into
	// dest starting at destOffset. bits is the input bits-per-component;
	// alpha01 is the number of destination bytes skipped after each
	// RGB triple (0 or 1).
	GetRgbBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int)

	// GetOutputLength reports the number of destination bytes needed
	// to hold the conversion of inputLength input bytes.
	GetOutputLength(inputLength, alpha01 int) int

	// IsPassthrough reports whether this space, at the given
	// bits-per-component, returns its input unchanged.
	IsPassthrough(bits int) bool

	// IsDefaultDecode reports whether decodeMap is equivalent to the
	// space's implicit identity decode array, given bpc bits per
	// component.
	IsDefaultDecode(decodeMap []float64, bpc int) bool
}

// ClampByte saturates v into [0,255], the clamp-on-write idiom every
// destination write in this package relies on, made explicit
// here because Go has no native clamped-byte container.
func ClampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

// clampByte32 is the float32 hot-path twin of ClampByte, used by the
// CMYK/CalRGB/Lab conversions that must stay in single precision to
// reproduce bit-exact goldens.
func clampByte32(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

// isDefaultDecodeCommon implements the shared rule of §4.9: a decode
// array is "default" when absent, when every even-indexed entry is 0
// and every odd-indexed entry is 1, or (with a warning) when its
// length doesn't match 2*numComps.
func isDefaultDecodeCommon(decodeMap []float64, numComps int) bool {
	if decodeMap == nil {
		return true
	}
	if len(decodeMap) != 2*numComps {
		warnf("colorspace: decode array length %d does not match 2*numComps=%d, treating as default", len(decodeMap), 2*numComps)
		return true
	}
	for i := 0; i < len(decodeMap); i += 2 {
		if decodeMap[i] != 0 || decodeMap[i+1] != 1 {
			return false
		}
	}
	return true
}

// outputLengthSimple is the common getOutputLength formula shared by
// every family whose output is a flat RGB(+alpha01) stream: count
// triples of 3 bytes plus alpha01 skipped bytes each, truncated toward
// zero along with the input length's division by numComps.
func outputLengthSimple(inputLength, numComps, alpha01 int) int {
	count := inputLength / numComps
	return count * (3 + alpha01)
}
