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

// TintFunction maps numComps source tint values in [0,1] to
// base.NumComps() destination component values, via the
// tint-function-factory interface. AlternateSpace reads every
// destination value as a fraction in [0,1] for every base, Lab
// included: each is scaled by 255, clamped to a byte and decoded by the
// base as an 8-bit sample (for Lab, through its L 0..100 and a/b Range
// mapping). Values outside [0,1], such as raw L*a*b* numbers, are
// clamped rather than passed through.
type TintFunction func(src, dst []float32)

// AlternateSpace implements the Separation/DeviceN family:
// a tint function maps colorant tint values to the base space's own
// component domain, which is then converted normally.
type AlternateSpace struct {
	numComps int
	Base     ColorSpace
	Tint     TintFunction
	scratch  []float32
}

// NewAlternateSpace constructs an Alternate space with numComps inputs
// (1 for Separation, len(names) for DeviceN) over base, using tint to
// map tint values to base's component domain.
func NewAlternateSpace(numComps int, base ColorSpace, tint TintFunction) *AlternateSpace {
	return &AlternateSpace{
		numComps: numComps,
		Base:     base,
		Tint:     tint,
		scratch:  make([]float32, base.NumComps()),
	}
}

func (s *AlternateSpace) Name() FamilyName         { return FamilyAlternate }
func (s *AlternateSpace) NumComps() int            { return s.numComps }
func (s *AlternateSpace) UsesZeroToOneRange() bool { return true }
func (s *AlternateSpace) IsPassthrough(bits int) bool { return false }

func (s *AlternateSpace) IsDefaultDecode(decodeMap []float64, bpc int) bool {
	return isDefaultDecodeCommon(decodeMap, s.numComps)
}

// GetOutputLength forwards to the base, scaled by the ratio of base to
// own component counts.
func (s *AlternateSpace) GetOutputLength(inputLength, alpha01 int) int {
	return s.Base.GetOutputLength(inputLength*s.Base.NumComps()/s.numComps, alpha01)
}

func (s *AlternateSpace) GetRgb(src []byte, srcOffset int) [3]byte {
	var dest [3]byte
	s.GetRgbItem(src, srcOffset, dest[:], 0)
	return dest
}

// GetRgbItem runs the tint function on one sample, then delegates
// conversion of the resulting base-space values to the base. It is
// not safe for concurrent use on the same instance: the scratch
// buffer is per-instance, so callers must serialize item calls or
// relocate the scratch.
func (s *AlternateSpace) GetRgbItem(src []byte, srcOffset int, dest []byte, destOffset int) {
	srcF := make([]float32, s.numComps)
	for i := 0; i < s.numComps; i++ {
		srcF[i] = float32(src[srcOffset+i]) / 255
	}
	s.Tint(srcF, s.scratch)
	baseBuf := make([]byte, s.Base.NumComps())
	for i, v := range s.scratch {
		baseBuf[i] = ClampByte(float64(v) * 255)
	}
	s.Base.GetRgbItem(baseBuf, 0, dest, destOffset)
}

// GetRgbBuffer implements the buffer path, including the short-circuit
// optimization for alpha01==0 destinations: a passthrough base
// (DeviceRGB) gets the scaled tint values copied straight into dest,
// and a non-[0,1]-range base (Lab) still runs its own per-sample
// GetRgbItem conversion, just without the intermediate whole-buffer
// allocation the general path uses.
func (s *AlternateSpace) GetRgbBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	scale := float32(1.0 / float64((1<<uint(bits))-1))
	shortCircuit := (s.Base.IsPassthrough(8) || !s.Base.UsesZeroToOneRange()) && alpha01 == 0

	var baseBuf []byte
	if !shortCircuit {
		baseBuf = make([]byte, s.Base.NumComps()*count)
	}

	srcF := make([]float32, s.numComps)
	tinted := make([]float32, s.Base.NumComps())

	srcPos := srcOffset
	for i := 0; i < count; i++ {
		for j := 0; j < s.numComps; j++ {
			srcF[j] = float32(src[srcPos+j]) * scale
		}
		s.Tint(srcF, tinted)

		if shortCircuit {
			destPos := destOffset + i*s.Base.NumComps()
			var tintedBytes [8]byte
			for j, v := range tinted {
				tintedBytes[j] = ClampByte(float64(v) * 255)
			}
			if s.Base.UsesZeroToOneRange() {
				copy(dest[destPos:destPos+s.Base.NumComps()], tintedBytes[:s.Base.NumComps()])
			} else {
				s.Base.GetRgbItem(tintedBytes[:s.Base.NumComps()], 0, dest, destPos)
			}
		} else {
			// base.GetRgbItem in this module always reads a byte
			// buffer, so tinted values are written scaled to [0,255]
			// for every base, including Lab; Lab's own conversion
			// then re-derives L/a/b from those bytes via its own
			// range mapping (GetRgbBuffer), same as any other image
			// sample it would otherwise receive.
			pos := i * s.Base.NumComps()
			for j, v := range tinted {
				baseBuf[pos+j] = ClampByte(float64(v) * 255)
			}
		}

		srcPos += s.numComps
	}

	if !shortCircuit {
		s.Base.GetRgbBuffer(baseBuf, 0, count, dest, destOffset, 8, alpha01)
	}
}
