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

func TestFillRGBPassthroughNoResize(t *testing.T) {
	comps := []byte{1, 2, 3, 4, 5, 6}
	dest := make([]byte, 6)
	FillRGB(DeviceRGB(), dest, comps, 2, 1, 2, 1, 1, 8, 0)
	for i := range comps {
		if dest[i] != comps[i] {
			t.Fatalf("passthrough fill mismatch at %d: %d vs %d", i, dest[i], comps[i])
		}
	}
}

func TestFillRGBColorMapMatchesDirectPath(t *testing.T) {
	palette := []byte{0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0, 255}
	cs, err := NewIndexedSpace(DeviceRGB(), 4, palette)
	if err != nil {
		t.Fatalf("NewIndexedSpace: %v", err)
	}

	// count = ow*oh = 9 > 2^bpc = 8 at bpc=3 would trigger the map
	// path; use bpc=8 with a large pixel count instead so count >
	// 2^8=256 forces the color-map optimization deterministically.
	w, h := 20, 20
	comps := make([]byte, w*h)
	for i := range comps {
		comps[i] = byte(i % 4)
	}

	mapDest := make([]byte, w*h*3)
	FillRGB(cs, mapDest, comps, w, h, w, h, h, 8, 0)

	directDest := make([]byte, w*h*3)
	cs.GetRgbBuffer(comps, 0, w*h, directDest, 0, 8, 0)

	for i := range mapDest {
		if mapDest[i] != directDest[i] {
			t.Fatalf("color-map path diverges from direct path at byte %d: %d vs %d", i, mapDest[i], directDest[i])
		}
	}
}

func TestResizeRGBIdentity(t *testing.T) {
	src := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	dest := make([]byte, len(src))
	resizeRGB(dest, src, 2, 2, 2, 2, 0)
	for i := range src {
		if dest[i] != src[i] {
			t.Fatalf("identity resize mismatch at %d: %d vs %d", i, dest[i], src[i])
		}
	}
}

func TestResizeRGBUpscale(t *testing.T) {
	// 1x1 source pixel, upscaled to 2x2: every output pixel must equal
	// the single source pixel.
	src := []byte{10, 20, 30}
	dest := make([]byte, 2*2*3)
	resizeRGB(dest, src, 1, 1, 2, 2, 0)
	for i := 0; i < 4; i++ {
		if dest[i*3] != 10 || dest[i*3+1] != 20 || dest[i*3+2] != 30 {
			t.Fatalf("upscaled pixel %d = %v, want (10,20,30)", i, dest[i*3:i*3+3])
		}
	}
}
