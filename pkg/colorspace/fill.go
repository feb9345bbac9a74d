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

// FillRGB orchestrates a whole-image fill: it converts
// the source component buffer comps (ow x oh pixels, actualHeight
// scanlines actually present) into dest (w x h RGB(+alpha01) bytes),
// taking the color-map fast path for single-component spaces with a
// small input domain and resizing with nearest-neighbor sampling when
// the source and target dimensions differ.
//
// It is implemented as a free function parameterized over the
// ColorSpace interface rather than a method every family
// would otherwise have to embed a shared base to get.
func FillRGB(cs ColorSpace, dest []byte, comps []byte, ow, oh, w, h, actualHeight, bpc, alpha01 int) {
	count := ow * oh
	needsResizing := ow != w || oh != h

	if cs.IsPassthrough(bpc) {
		if !needsResizing {
			copyInterleaved(dest, comps, count, alpha01)
			return
		}
		resizeRGB(dest, comps, ow, oh, w, h, alpha01)
		return
	}

	if cs.NumComps() == 1 && count > (1<<uint(bpc)) && cs.Name() != FamilyDeviceGray && cs.Name() != FamilyDeviceRGB {
		fillRGBViaColorMap(cs, dest, comps, ow, oh, w, h, actualHeight, bpc, alpha01, needsResizing)
		return
	}

	if !needsResizing {
		cs.GetRgbBuffer(comps, 0, w*actualHeight, dest, 0, bpc, alpha01)
		return
	}

	rgbBuf := make([]byte, count*3)
	cs.GetRgbBuffer(comps, 0, count, rgbBuf, 0, bpc, 0)
	resizeRGB(dest, rgbBuf, ow, oh, w, h, alpha01)
}

// fillRGBViaColorMap precomputes a 3-byte-per-entry palette over every
// possible bpc-bit input value, then resolves each source sample
// through the palette instead of reconverting it. This is the "map"
// optimization: Indexed and Alternate are expensive
// per-sample but have a tiny input domain.
func fillRGBViaColorMap(cs ColorSpace, dest, comps []byte, ow, oh, w, h, actualHeight, bpc, alpha01 int, needsResizing bool) {
	domain := 1 << uint(bpc)
	indices := make([]byte, domain)
	for i := range indices {
		indices[i] = byte(i)
	}
	palette := make([]byte, domain*3)
	cs.GetRgbBuffer(indices, 0, domain, palette, 0, bpc, 0)

	if !needsResizing {
		count := w * actualHeight
		destPos := 0
		for i := 0; i < count; i++ {
			idx := int(comps[i])
			p := idx * 3
			dest[destPos] = palette[p]
			dest[destPos+1] = palette[p+1]
			dest[destPos+2] = palette[p+2]
			destPos += 3 + alpha01
		}
		return
	}

	count := ow * oh
	rgbBuf := make([]byte, count*3)
	for i := 0; i < count; i++ {
		idx := int(comps[i])
		p := idx * 3
		rgbBuf[i*3] = palette[p]
		rgbBuf[i*3+1] = palette[p+1]
		rgbBuf[i*3+2] = palette[p+2]
	}
	resizeRGB(dest, rgbBuf, ow, oh, w, h, alpha01)
}

// copyInterleaved spreads count RGB triples from src into dest,
// skipping alpha01 bytes after each triple.
func copyInterleaved(dest, src []byte, count, alpha01 int) {
	if alpha01 == 0 {
		copy(dest[:count*3], src[:count*3])
		return
	}
	srcPos, destPos := 0, 0
	for i := 0; i < count; i++ {
		dest[destPos] = src[srcPos]
		dest[destPos+1] = src[srcPos+1]
		dest[destPos+2] = src[srcPos+2]
		srcPos += 3
		destPos += 3 + alpha01
	}
}

// resizeRGB performs a nearest-neighbor resize of an RGB pixel buffer
// from (w1,h1) to (w2,h2) into dest. alpha01 is forced to
// 0 unless it is exactly 1.
func resizeRGB(dest, src []byte, w1, h1, w2, h2, alpha01 int) {
	if alpha01 != 1 {
		alpha01 = 0
	}

	xScaled := make([]int, w2)
	for i := 0; i < w2; i++ {
		xScaled[i] = (i * w1 / w2) * 3
	}

	destPos := 0
	for y := 0; y < h2; y++ {
		py := (y * h1 / h2) * w1 * 3
		for x := 0; x < w2; x++ {
			p := py + xScaled[x]
			dest[destPos] = src[p]
			dest[destPos+1] = src[p+1]
			dest[destPos+2] = src[p+2]
			destPos += 3 + alpha01
		}
	}
}
