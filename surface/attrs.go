// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/insitu3d/insitu/base/errors"
)

// Attributes is the persisted state of a surface component.
type Attributes struct {
	// RemapMousePosition is whether mouse positions are rewritten to
	// UI-local coordinates.
	RemapMousePosition bool `toml:"remap-mouse-position"`

	// VirtualMaterialName is the name of the virtual material;
	// only used by [MaterialComponent].
	VirtualMaterialName string `toml:"virtual-material-name,omitempty"`
}

// Attributes returns the component's persisted state.
func (co *Component) Attributes() Attributes {
	return Attributes{RemapMousePosition: co.RemapMousePos}
}

// SaveAttributes writes the component's persisted state as TOML.
func (co *Component) SaveAttributes(w io.Writer) error {
	return errors.Log(toml.NewEncoder(w).Encode(co.Attributes()))
}

// LoadAttributes reads persisted state as TOML and applies it.
func (co *Component) LoadAttributes(r io.Reader) error {
	at := Attributes{RemapMousePosition: true}
	if err := toml.NewDecoder(r).Decode(&at); err != nil {
		return errors.Log(err)
	}
	co.RemapMousePos = at.RemapMousePosition
	return nil
}

// Attributes returns the component's persisted state, including the
// virtual material name once a material exists.
func (mc *MaterialComponent) Attributes() Attributes {
	at := mc.Component.Attributes()
	if mc.material != nil {
		at.VirtualMaterialName = mc.material.Name
	}
	return at
}

// SaveAttributes writes the component's persisted state as TOML.
func (mc *MaterialComponent) SaveAttributes(w io.Writer) error {
	return errors.Log(toml.NewEncoder(w).Encode(mc.Attributes()))
}

// LoadAttributes reads persisted state as TOML, applies it, and runs
// [MaterialComponent.ApplyAttributes].
func (mc *MaterialComponent) LoadAttributes(r io.Reader) error {
	at := Attributes{RemapMousePosition: true}
	if err := toml.NewDecoder(r).Decode(&at); err != nil {
		return errors.Log(err)
	}
	mc.RemapMousePos = at.RemapMousePosition
	if at.VirtualMaterialName != "" {
		mc.SetVirtualMaterialName(at.VirtualMaterialName)
	}
	mc.ApplyAttributes()
	return nil
}
