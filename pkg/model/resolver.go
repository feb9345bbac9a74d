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

package model

import "github.com/pkg/errors"

// ErrMissingData is returned by a Resolver when an indirect reference
// cannot be located in the underlying xref table. Unlike other
// resolution failures this is not wrapped away: callers on the cache
// probe path (colorspace.Cache) must see this sentinel unchanged so
// they can distinguish "not yet resolvable" from a malformed object.
var ErrMissingData = errors.New("model: missing data for indirect reference")

// Resolver dereferences indirect PDF objects. It is the xref-table
// collaborator this package treats as external: this package never
// parses or holds a cross-reference table itself, only consumes one
// through this interface.
//
// A nil Object with a nil error means "the reference resolved to the
// PDF null object", which callers must treat distinctly from
// ErrMissingData.
type Resolver interface {
	// Dereference resolves o if it is an IndirectRef, returning o
	// unchanged otherwise. It returns ErrMissingData if o is an
	// IndirectRef the resolver cannot locate.
	Dereference(o Object) (Object, error)

	// DereferenceDict dereferences o and type-asserts the result to
	// Dict. It returns nil, nil if the resolved object is not a Dict
	// (including the PDF null object).
	DereferenceDict(o Object) (Dict, error)

	// DereferenceArray dereferences o and type-asserts the result to
	// Array. It returns nil, nil if the resolved object is not an
	// Array.
	DereferenceArray(o Object) (Array, error)

	// DereferenceStreamDict dereferences o and type-asserts the result
	// to *StreamDict. It returns nil, nil if the resolved object is
	// not a stream.
	DereferenceStreamDict(o Object) (*StreamDict, error)
}

// ResolveIfReference dereferences o when it is an IndirectRef, using r.
// It is a convenience wrapper for the common "this field might be
// indirect" case that appears throughout a color-space descriptor.
func ResolveIfReference(r Resolver, o Object) (Object, error) {
	if _, ok := o.(IndirectRef); !ok {
		return o, nil
	}
	return r.Dereference(o)
}
