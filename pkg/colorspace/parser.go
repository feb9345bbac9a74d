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

import (
	"github.com/pkg/errors"

	"github.com/pdfcpu/colorspace/pkg/matrix"
	"github.com/pdfcpu/colorspace/pkg/model"
)

// TintFunctionFactory builds the opaque tint-function callable a
// Separation/DeviceN color space needs from its PDF function object
// provided by an external collaborator. Tint-function evaluation itself is out of scope for this
// module; callers supply a factory wired to their own function
// evaluator.
type TintFunctionFactory interface {
	Create(fn model.Object) (TintFunction, error)
}

// Parse turns a PDF color-space descriptor (a Name, an IndirectRef, or
// an Array whose shape depends on its first element) into a
// ColorSpace, consulting and populating cache along the way.
// resources is the page/form resource dictionary consulted
// when cs is an unrecognized name; it may be nil.
//
// Parse never recursively locks cache: each Parse call writes its own
// result only at its own successful return, after any nested Parse
// calls (Indexed/Alternate/Pattern bases, ICCBased alternates,
// resource-name lookups) have returned, so cache is never entered from
// inside one of its own calls. Nested calls are not exempt from
// caching: a base or alternate resolved by a nested call is stored
// under its own name or reference as well as the outer result.
func Parse(cs model.Object, resolver model.Resolver, resources model.Dict, tintFactory TintFunctionFactory, cache Cache) (ColorSpace, error) {
	var ref *model.IndirectRef
	if ir, ok := cs.(model.IndirectRef); ok {
		if hit, ok := cache.GetByRef(ir); ok {
			return hit, nil
		}
		ref = &ir
	}

	obj, err := resolver.Dereference(cs)
	if err != nil {
		return nil, err
	}

	var name string
	var result ColorSpace

	switch o := obj.(type) {
	case model.Name:
		name = string(o)
		if hit, ok := cache.GetByName(name); ok {
			return hit, nil
		}
		result, err = parseNamedColorSpace(o, resolver, resources, tintFactory, cache)
	case model.Array:
		result, err = parseArrayColorSpace(o, resolver, tintFactory, cache)
	default:
		return nil, formatErrorf("colorspace: unsupported color-space descriptor object %T", obj)
	}
	if err != nil {
		return nil, err
	}

	cache.Set(name, ref, result)
	return result, nil
}

// parseNamedColorSpace resolves a bare Name descriptor: the fixed
// device abbreviations and full names, Pattern, or (failing those) a
// lookup in the resource dictionary's ColorSpace sub-dictionary.
func parseNamedColorSpace(n model.Name, resolver model.Resolver, resources model.Dict, tintFactory TintFunctionFactory, cache Cache) (ColorSpace, error) {
	switch n {
	case "G", "DeviceGray":
		return DeviceGray(), nil
	case "RGB", "DeviceRGB":
		return DeviceRGB(), nil
	case "CMYK", "DeviceCMYK":
		return DeviceCMYK(), nil
	case "Pattern":
		return NewPatternSpace(nil), nil
	}

	if resources == nil {
		return nil, formatErrorf("colorspace: unresolvable color-space name %q and no resources dictionary supplied", n)
	}
	csDictObj, ok := resources.Find("ColorSpace")
	if !ok {
		return nil, formatErrorf("colorspace: unresolvable color-space name %q: resources has no ColorSpace entry", n)
	}
	csDict, err := resolver.DereferenceDict(csDictObj)
	if err != nil {
		return nil, err
	}
	if csDict == nil {
		return nil, formatErrorf("colorspace: unresolvable color-space name %q: resources/ColorSpace is not a dictionary", n)
	}
	entry, ok := csDict.Find(string(n))
	if !ok {
		return nil, formatErrorf("colorspace: color-space name %q not found in resources/ColorSpace", n)
	}
	return Parse(entry, resolver, resources, tintFactory, cache)
}

// parseArrayColorSpace dispatches on array[0]'s name.
func parseArrayColorSpace(arr model.Array, resolver model.Resolver, tintFactory TintFunctionFactory, cache Cache) (ColorSpace, error) {
	if len(arr) == 0 {
		return nil, formatErrorf("colorspace: empty color-space array")
	}
	modeObj, err := resolver.Dereference(arr[0])
	if err != nil {
		return nil, err
	}
	mode, ok := modeObj.(model.Name)
	if !ok {
		return nil, formatErrorf("colorspace: color-space array[0] is not a name: %T", modeObj)
	}

	switch mode {
	case "G", "DeviceGray":
		return DeviceGray(), nil
	case "RGB", "DeviceRGB":
		return DeviceRGB(), nil
	case "CMYK", "DeviceCMYK":
		return DeviceCMYK(), nil

	case "CalGray":
		return parseCalGray(arr, resolver)

	case "CalRGB":
		return parseCalRGB(arr, resolver)

	case "Lab":
		return parseLab(arr, resolver)

	case "ICCBased":
		return parseICCBased(arr, resolver, tintFactory, cache)

	case "Pattern":
		if len(arr) < 2 {
			return NewPatternSpace(nil), nil
		}
		base, err := Parse(arr[1], resolver, nil, tintFactory, cache)
		if err != nil {
			return nil, err
		}
		return NewPatternSpace(base), nil

	case "I", "Indexed":
		return parseIndexed(arr, resolver, tintFactory, cache)

	case "Separation", "DeviceN":
		return parseSeparationOrDeviceN(mode, arr, resolver, tintFactory, cache)
	}

	return nil, formatErrorf("colorspace: unrecognized color-space array mode %q", mode)
}

func dictEntryFloat(d model.Dict, key string, fallback float32, present *bool) float32 {
	o, ok := d.Find(key)
	if !ok {
		if present != nil {
			*present = false
		}
		return fallback
	}
	if present != nil {
		*present = true
	}
	return objToFloat32(o, fallback)
}

func objToFloat32(o model.Object, fallback float32) float32 {
	switch v := o.(type) {
	case model.Float:
		return float32(v)
	case model.Integer:
		return float32(v)
	default:
		return fallback
	}
}

func arrayToFloat32Triple(o model.Object) ([3]float32, bool) {
	arr, ok := o.(model.Array)
	if !ok || len(arr) != 3 {
		return [3]float32{}, false
	}
	return [3]float32{
		objToFloat32(arr[0], 0),
		objToFloat32(arr[1], 0),
		objToFloat32(arr[2], 0),
	}, true
}

func dictDereference(resolver model.Resolver, o model.Object) (model.Dict, error) {
	return resolver.DereferenceDict(o)
}

func parseCalGray(arr model.Array, resolver model.Resolver) (ColorSpace, error) {
	if len(arr) < 2 {
		return nil, formatErrorf("colorspace: CalGray array missing parameter dictionary")
	}
	d, err := dictDereference(resolver, arr[1])
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, formatErrorf("colorspace: CalGray array[1] is not a dictionary")
	}

	wpObj, ok := d.Find("WhitePoint")
	if !ok {
		return nil, formatErrorf("colorspace: CalGray missing required WhitePoint")
	}
	wp, ok := arrayToFloat32Triple(wpObj)
	if !ok {
		return nil, formatErrorf("colorspace: CalGray WhitePoint is not a 3-element array")
	}

	bp := [3]float32{0, 0, 0}
	if bpObj, ok := d.Find("BlackPoint"); ok {
		if v, ok := arrayToFloat32Triple(bpObj); ok {
			bp = v
		}
	}

	gamma := dictEntryFloat(d, "Gamma", 1, nil)

	return NewCalGraySpace(wp, bp, gamma)
}

func parseCalRGB(arr model.Array, resolver model.Resolver) (ColorSpace, error) {
	if len(arr) < 2 {
		return nil, formatErrorf("colorspace: CalRGB array missing parameter dictionary")
	}
	d, err := dictDereference(resolver, arr[1])
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, formatErrorf("colorspace: CalRGB array[1] is not a dictionary")
	}

	wpObj, ok := d.Find("WhitePoint")
	if !ok {
		return nil, formatErrorf("colorspace: CalRGB missing required WhitePoint")
	}
	wp, ok := arrayToFloat32Triple(wpObj)
	if !ok {
		return nil, formatErrorf("colorspace: CalRGB WhitePoint is not a 3-element array")
	}

	bp := [3]float32{0, 0, 0}
	if bpObj, ok := d.Find("BlackPoint"); ok {
		if v, ok := arrayToFloat32Triple(bpObj); ok {
			bp = v
		}
	}

	gamma := [3]float32{1, 1, 1}
	if gObj, ok := d.Find("Gamma"); ok {
		if v, ok := arrayToFloat32Triple(gObj); ok {
			gamma = v
		}
	}

	mat := defaultCalRGBMatrix
	if mObj, ok := d.Find("Matrix"); ok {
		if arr9, ok := mObj.(model.Array); ok && len(arr9) == 9 {
			var m matrix.Matrix
			vals := [9]float64{}
			for i := range vals {
				vals[i] = float64(objToFloat32(arr9[i], 0))
			}
			// PDF Matrix entry is [XA YA ZA XB YB ZB XC YC ZC]; X = M*[A,B,C].
			m[0] = [3]float64{vals[0], vals[3], vals[6]}
			m[1] = [3]float64{vals[1], vals[4], vals[7]}
			m[2] = [3]float64{vals[2], vals[5], vals[8]}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					mat[i][j] = float32(m[i][j])
				}
			}
		}
	}

	return NewCalRGBSpace(wp, bp, gamma, mat)
}

func parseLab(arr model.Array, resolver model.Resolver) (ColorSpace, error) {
	if len(arr) < 2 {
		return nil, formatErrorf("colorspace: Lab array missing parameter dictionary")
	}
	d, err := dictDereference(resolver, arr[1])
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, formatErrorf("colorspace: Lab array[1] is not a dictionary")
	}

	wpObj, ok := d.Find("WhitePoint")
	if !ok {
		return nil, formatErrorf("colorspace: Lab missing required WhitePoint")
	}
	wp, ok := arrayToFloat32Triple(wpObj)
	if !ok {
		return nil, formatErrorf("colorspace: Lab WhitePoint is not a 3-element array")
	}

	bp := [3]float32{0, 0, 0}
	if bpObj, ok := d.Find("BlackPoint"); ok {
		if v, ok := arrayToFloat32Triple(bpObj); ok {
			bp = v
		}
	}

	var amin, amax, bmin, bmax float32
	rangeGiven := false
	if rObj, ok := d.Find("Range"); ok {
		if r, ok := rObj.(model.Array); ok && len(r) == 4 {
			amin = objToFloat32(r[0], -100)
			amax = objToFloat32(r[1], 100)
			bmin = objToFloat32(r[2], -100)
			bmax = objToFloat32(r[3], 100)
			rangeGiven = true
		}
	}

	return NewLabSpace(wp, bp, amin, amax, bmin, bmax, rangeGiven)
}

// parseICCBased implements the ICCBased fallback chain: prefer
// the stream's Alternate entry if its component count matches N;
// otherwise fall back to the device singleton matching N.
func parseICCBased(arr model.Array, resolver model.Resolver, tintFactory TintFunctionFactory, cache Cache) (ColorSpace, error) {
	if len(arr) < 2 {
		return nil, formatErrorf("colorspace: ICCBased array missing stream")
	}
	sd, err := resolver.DereferenceStreamDict(arr[1])
	if err != nil {
		return nil, err
	}
	if sd == nil {
		return nil, formatErrorf("colorspace: ICCBased array[1] is not a stream")
	}

	n := 0
	if nObj, ok := sd.Dict.Find("N"); ok {
		if iv, ok := nObj.(model.Integer); ok {
			n = int(iv)
		}
	}

	if altObj, ok := sd.Dict.Find("Alternate"); ok {
		alt, err := Parse(altObj, resolver, nil, tintFactory, cache)
		if err != nil {
			return nil, err
		}
		if alt.NumComps() == n {
			return alt, nil
		}
		warnf("colorspace: ICCBased Alternate has %d components, N declares %d; discarding Alternate", alt.NumComps(), n)
	}

	switch n {
	case 1:
		return DeviceGray(), nil
	case 3:
		return DeviceRGB(), nil
	case 4:
		return DeviceCMYK(), nil
	}
	return nil, formatErrorf("colorspace: ICCBased stream has unsupported N=%d and no usable Alternate", n)
}

func parseIndexed(arr model.Array, resolver model.Resolver, tintFactory TintFunctionFactory, cache Cache) (ColorSpace, error) {
	if len(arr) < 4 {
		return nil, formatErrorf("colorspace: Indexed array requires 4 elements, got %d", len(arr))
	}
	base, err := Parse(arr[1], resolver, nil, tintFactory, cache)
	if err != nil {
		return nil, err
	}

	hivalObj, err := resolver.Dereference(arr[2])
	if err != nil {
		return nil, err
	}
	hival, ok := hivalObj.(model.Integer)
	if !ok {
		return nil, formatErrorf("colorspace: Indexed hival is not an integer: %T", hivalObj)
	}
	count := int(hival) + 1

	lookupObj, err := resolver.Dereference(arr[3])
	if err != nil {
		return nil, err
	}

	var palette []byte
	switch lv := lookupObj.(type) {
	case *model.StreamDict:
		palette = lv.GetBytes(base.NumComps() * count)
	case model.StringLiteral:
		raw := []byte(lv)
		palette = make([]byte, len(raw))
		for i, b := range raw {
			palette[i] = b & 0xff
		}
	default:
		return nil, formatErrorf("colorspace: unrecognized Indexed lookup type %T", lookupObj)
	}

	return NewIndexedSpace(base, count, palette)
}

func parseSeparationOrDeviceN(mode model.Name, arr model.Array, resolver model.Resolver, tintFactory TintFunctionFactory, cache Cache) (ColorSpace, error) {
	if len(arr) < 4 {
		return nil, formatErrorf("colorspace: %s array requires 4 elements, got %d", mode, len(arr))
	}

	numComps := 1
	if mode == "DeviceN" {
		namesObj, err := resolver.Dereference(arr[1])
		if err != nil {
			return nil, err
		}
		names, ok := namesObj.(model.Array)
		if !ok {
			return nil, formatErrorf("colorspace: DeviceN colorant names is not an array: %T", namesObj)
		}
		numComps = len(names)
	}

	base, err := Parse(arr[2], resolver, nil, tintFactory, cache)
	if err != nil {
		return nil, err
	}

	tint, err := tintFactory.Create(arr[3])
	if err != nil {
		return nil, errors.Wrapf(err, "colorspace: building %s tint function", mode)
	}

	return NewAlternateSpace(numComps, base, tint), nil
}
