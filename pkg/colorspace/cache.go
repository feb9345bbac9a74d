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
	"sync"

	"github.com/pdfcpu/colorspace/pkg/model"
)

// Cache avoids re-parsing a color-space descriptor seen before, keyed
// by either indirect-reference identity or resource name,
// §4.14, §6). Identity semantics: a miss returns (nil, false); Set is
// idempotent on (name, ref).
type Cache interface {
	GetByRef(ref model.IndirectRef) (ColorSpace, bool)
	GetByName(name string) (ColorSpace, bool)
	Set(name string, ref *model.IndirectRef, cs ColorSpace)
}

// memCache is the default in-memory Cache for callers that don't
// already own a document-scoped one. Safe for concurrent use; the
// color-space evaluation itself stays single-threaded, but
// the cache may be shared across goroutines that each hold their own
// parse call.
type memCache struct {
	mu      sync.RWMutex
	byRef   map[model.IndirectRef]ColorSpace
	byName  map[string]ColorSpace
}

// NewCache returns a fresh in-memory Cache.
func NewCache() Cache {
	return &memCache{
		byRef:  make(map[model.IndirectRef]ColorSpace),
		byName: make(map[string]ColorSpace),
	}
}

func (c *memCache) GetByRef(ref model.IndirectRef) (ColorSpace, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cs, ok := c.byRef[ref]
	return cs, ok
}

func (c *memCache) GetByName(name string) (ColorSpace, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cs, ok := c.byName[name]
	return cs, ok
}

func (c *memCache) Set(name string, ref *model.IndirectRef, cs ColorSpace) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ref != nil {
		c.byRef[*ref] = cs
	}
	if name != "" {
		c.byName[name] = cs
	}
}
