// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

// Store is the resource store: named materials visible to the rest of
// the engine. Besides ordinarily loaded resources it tracks virtual
// resources: generated materials that components register by name while
// attached to a scene node, and unregister when detached.
type Store struct {
	materials map[string]*Material
	virtual   map[string]bool
}

// NewStore returns a new empty resource store.
func NewStore() *Store {
	return &Store{
		materials: map[string]*Material{},
		virtual:   map[string]bool{},
	}
}

// Add adds the given named material to the store as an ordinary
// (loaded) resource.
func (st *Store) Add(mt *Material) {
	st.materials[mt.Name] = mt
}

// Material returns the material with the given name and whether it
// exists in the store.
func (st *Store) Material(name string) (*Material, bool) {
	mt, ok := st.materials[name]
	return mt, ok
}

// GetOrCreateMaterial returns the material with the given name,
// calling create and adding the result under that name when the store
// has none. The second return value reports whether create was called.
func (st *Store) GetOrCreateMaterial(name string, create func() *Material) (*Material, bool) {
	if mt, ok := st.materials[name]; ok {
		return mt, false
	}
	mt := create()
	mt.SetName(name)
	st.materials[name] = mt
	return mt, true
}

// AddVirtual registers the given material as a virtual resource,
// making it visible by name.
func (st *Store) AddVirtual(mt *Material) {
	if mt.Name == "" {
		return
	}
	st.materials[mt.Name] = mt
	st.virtual[mt.Name] = true
}

// RemoveVirtual unregisters the given material as a virtual resource.
// Ordinarily loaded resources of the same name are left alone.
func (st *Store) RemoveVirtual(mt *Material) {
	if mt.Name == "" || !st.virtual[mt.Name] {
		return
	}
	delete(st.virtual, mt.Name)
	if st.materials[mt.Name] == mt {
		delete(st.materials, mt.Name)
	}
}

// IsVirtual returns whether a virtual resource with the given name is
// currently registered.
func (st *Store) IsVirtual(name string) bool {
	return st.virtual[name]
}
