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

import "testing"

func TestDeviceGrayGetRgbBuffer(t *testing.T) {
	src := []byte{0, 127, 255}
	dest := make([]byte, 9)
	DeviceGray().GetRgbBuffer(src, 0, 3, dest, 0, 8, 0)
	want := []byte{0, 0, 0, 127, 127, 127, 255, 255, 255}
	for i, b := range want {
		if dest[i] != b {
			t.Fatalf("dest[%d] = %d, want %d (dest=%v)", i, dest[i], b, dest)
		}
	}
}

func TestDeviceRGBGetRgbBufferAlpha(t *testing.T) {
	src := []byte{10, 20, 30}
	dest := make([]byte, 4)
	dest[3] = 0xAA
	DeviceRGB().GetRgbBuffer(src, 0, 1, dest, 0, 8, 1)
	want := []byte{10, 20, 30, 0xAA}
	for i, b := range want {
		if dest[i] != b {
			t.Fatalf("dest[%d] = %d, want %d", i, dest[i], b)
		}
	}
}

func TestDeviceRGBIsPassthroughAt8Bits(t *testing.T) {
	if !DeviceRGB().IsPassthrough(8) {
		t.Fatal("DeviceRGB must be passthrough at 8 bits")
	}
	if DeviceRGB().IsPassthrough(16) {
		t.Fatal("DeviceRGB must not be passthrough at 16 bits")
	}
}

func TestDeviceRGBPassthroughByteIdentical(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dest := make([]byte, 9)
	DeviceRGB().GetRgbBuffer(src, 0, 3, dest, 0, 8, 0)
	for i := range src {
		if dest[i] != src[i] {
			t.Fatalf("passthrough not byte-identical at %d: got %d want %d", i, dest[i], src[i])
		}
	}
}

func TestDeviceCMYKPureK(t *testing.T) {
	src := []byte{0, 0, 0, 255}
	dest := make([]byte, 3)
	DeviceCMYK().GetRgbBuffer(src, 0, 1, dest, 0, 8, 0)
	for i, b := range dest {
		if b > 5 {
			t.Fatalf("pure-K dest[%d] = %d, want deep black (<=5)", i, b)
		}
	}
}

func TestDeviceCMYKCorners(t *testing.T) {
	corners := [][4]byte{
		{0, 0, 0, 0},
		{255, 0, 0, 0},
		{0, 255, 0, 0},
		{0, 0, 255, 0},
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}
	for _, c := range corners {
		dest := make([]byte, 3)
		DeviceCMYK().GetRgbItem(c[:], 0, dest, 0)
		// Just exercise every corner without crashing or going out of
		// the clamped byte range; exact bytes are pinned by the
		// coefficients themselves, reproduced verbatim in device.go.
		for _, b := range dest {
			if b > 255 {
				t.Fatalf("corner %v produced out-of-range byte %d", c, b)
			}
		}
	}
}

func TestGetRgbConsistentWithItemAndBuffer(t *testing.T) {
	spaces := []ColorSpace{DeviceGray(), DeviceRGB(), DeviceCMYK()}
	src := []byte{10, 20, 30, 40}
	for _, cs := range spaces {
		rgb := cs.GetRgb(src, 0)

		itemDest := make([]byte, 3)
		cs.GetRgbItem(src, 0, itemDest, 0)

		bufDest := make([]byte, 3)
		cs.GetRgbBuffer(src, 0, 1, bufDest, 0, 8, 0)

		for i := 0; i < 3; i++ {
			if rgb[i] != itemDest[i] || rgb[i] != bufDest[i] {
				t.Fatalf("%s: GetRgb/Item/Buffer disagree at %d: %v vs %v vs %v", cs.Name(), i, rgb, itemDest, bufDest)
			}
		}
	}
}

func TestGetOutputLengthInvariant(t *testing.T) {
	spaces := []ColorSpace{DeviceGray(), DeviceRGB(), DeviceCMYK()}
	for _, cs := range spaces {
		for _, alpha01 := range []int{0, 1} {
			count := 7
			got := cs.GetOutputLength(count*cs.NumComps(), alpha01)
			want := count * (3 + alpha01)
			if got != want {
				t.Fatalf("%s: GetOutputLength = %d, want %d", cs.Name(), got, want)
			}
		}
	}
}

func TestIsDefaultDecodeCommon(t *testing.T) {
	if !isDefaultDecodeCommon([]float64{0, 1, 0, 1}, 2) {
		t.Fatal("[0,1,0,1] should be default for numComps=2")
	}
	if isDefaultDecodeCommon([]float64{0.1, 0.9}, 1) {
		t.Fatal("[0.1,0.9] should not be default")
	}
	if !isDefaultDecodeCommon(nil, 3) {
		t.Fatal("nil decode map should be default")
	}
}
