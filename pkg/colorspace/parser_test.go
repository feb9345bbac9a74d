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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdfcpu/colorspace/pkg/model"
)

// fakeResolver resolves IndirectRefs against an in-memory object table,
// standing in for a real xref table.
type fakeResolver struct {
	objects map[model.IndirectRef]model.Object
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{objects: make(map[model.IndirectRef]model.Object)}
}

func (r *fakeResolver) Dereference(o model.Object) (model.Object, error) {
	ref, ok := o.(model.IndirectRef)
	if !ok {
		return o, nil
	}
	obj, ok := r.objects[ref]
	if !ok {
		return nil, model.ErrMissingData
	}
	return obj, nil
}

func (r *fakeResolver) DereferenceDict(o model.Object) (model.Dict, error) {
	obj, err := r.Dereference(o)
	if err != nil {
		return nil, err
	}
	d, _ := obj.(model.Dict)
	return d, nil
}

func (r *fakeResolver) DereferenceArray(o model.Object) (model.Array, error) {
	obj, err := r.Dereference(o)
	if err != nil {
		return nil, err
	}
	a, _ := obj.(model.Array)
	return a, nil
}

func (r *fakeResolver) DereferenceStreamDict(o model.Object) (*model.StreamDict, error) {
	obj, err := r.Dereference(o)
	if err != nil {
		return nil, err
	}
	sd, _ := obj.(*model.StreamDict)
	return sd, nil
}

type noopTintFactory struct{}

func (noopTintFactory) Create(fn model.Object) (TintFunction, error) {
	return func(src, dst []float32) {
		for i := range dst {
			dst[i] = 1 - src[0]
		}
	}, nil
}

func TestParseCalGrayArray(t *testing.T) {
	resolver := newFakeResolver()
	arr := model.Array{
		model.Name("CalGray"),
		model.Dict{
			"WhitePoint": model.Array{model.Float(0.9505), model.Integer(1), model.Float(1.0888)},
			"Gamma":      model.Float(2.2),
		},
	}

	cs, err := Parse(arr, resolver, nil, noopTintFactory{}, NewCache())
	require.NoError(t, err)

	cg, ok := cs.(*CalGraySpace)
	require.True(t, ok, "expected *CalGraySpace, got %T", cs)
	require.Equal(t, float32(2.2), cg.Gamma)
	require.Equal(t, [3]float32{0.9505, 1, 1.0888}, cg.WhitePoint)
}

func TestParseDeviceRGBNameSharesSingleton(t *testing.T) {
	resolver := newFakeResolver()
	cache := NewCache()

	cs1, err := Parse(model.Name("RGB"), resolver, nil, noopTintFactory{}, cache)
	require.NoError(t, err)

	cs2, err := Parse(model.Name("RGB"), resolver, nil, noopTintFactory{}, cache)
	require.NoError(t, err)

	require.Same(t, cs1, cs2, "two lookups of /RGB must return the same instance")
}

func TestParseICCBasedFallsBackToAlternate(t *testing.T) {
	resolver := newFakeResolver()
	streamRef := model.IndirectRef{ObjectNumber: 1, GenerationNumber: 0}
	resolver.objects[streamRef] = &model.StreamDict{
		Dict: model.Dict{
			"N":         model.Integer(4),
			"Alternate": model.Name("DeviceCMYK"),
		},
	}

	arr := model.Array{model.Name("ICCBased"), streamRef}
	cs, err := Parse(arr, resolver, nil, noopTintFactory{}, NewCache())
	require.NoError(t, err)
	require.Same(t, DeviceCMYK(), cs)
}

func TestParseICCBasedDiscardsMismatchedAlternate(t *testing.T) {
	resolver := newFakeResolver()
	streamRef := model.IndirectRef{ObjectNumber: 2, GenerationNumber: 0}
	resolver.objects[streamRef] = &model.StreamDict{
		Dict: model.Dict{
			"N":         model.Integer(4),
			"Alternate": model.Name("RGB"), // 3 components, mismatches N=4
		},
	}

	arr := model.Array{model.Name("ICCBased"), streamRef}
	cs, err := Parse(arr, resolver, nil, noopTintFactory{}, NewCache())
	require.NoError(t, err)
	require.Same(t, DeviceCMYK(), cs, "mismatched Alternate must be discarded in favor of N=4 fallback")
}

func TestParseIndexedArray(t *testing.T) {
	resolver := newFakeResolver()
	arr := model.Array{
		model.Name("Indexed"),
		model.Name("RGB"),
		model.Integer(2),
		model.StringLiteral(string([]byte{0, 0xFF, 0, 0xFF, 0, 0, 0, 0, 0xFF})),
	}

	cs, err := Parse(arr, resolver, nil, noopTintFactory{}, NewCache())
	require.NoError(t, err)

	idx, ok := cs.(*IndexedSpace)
	require.True(t, ok, "expected *IndexedSpace, got %T", cs)
	require.Equal(t, 3, idx.Count) // hival(2)+1
	require.Equal(t, 9, len(idx.Palette))
}

func TestParseUnresolvableNameErrors(t *testing.T) {
	resolver := newFakeResolver()
	_, err := Parse(model.Name("NotARealColorSpace"), resolver, nil, noopTintFactory{}, NewCache())
	require.Error(t, err)
}

func TestParseCachesByRef(t *testing.T) {
	resolver := newFakeResolver()
	ref := model.IndirectRef{ObjectNumber: 5, GenerationNumber: 0}
	resolver.objects[ref] = model.Name("RGB")

	cache := NewCache()
	cs1, err := Parse(ref, resolver, nil, noopTintFactory{}, cache)
	require.NoError(t, err)

	// A second parse of the same ref should be satisfied entirely from
	// cache without consulting the resolver again; delete the backing
	// object to prove it.
	delete(resolver.objects, ref)
	cs2, err := Parse(ref, resolver, nil, noopTintFactory{}, cache)
	require.NoError(t, err)
	require.Same(t, cs1, cs2)
}
