// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

// Technique names a render technique: the shader and pass setup a
// material renders with.
type Technique string

// TechDiffuse is the fixed default technique for materials generated
// around a UI render texture: unlit textured diffuse.
const TechDiffuse Technique = "diffuse"

// Unit is a texture unit slot on a material.
type Unit int32

const (
	// UnitDiffuse is the diffuse (base color) texture unit.
	UnitDiffuse Unit = iota

	// UnitNormal is the normal map texture unit.
	UnitNormal

	// UnitSpecular is the specular map texture unit.
	UnitSpecular
)

// Material describes how a surface is rendered: an ordered list of
// techniques and the textures bound to its units. Materials are either
// anonymous or named; named materials can be registered with a [Store].
type Material struct {
	// Name is the resource name of the material; empty for anonymous
	// materials.
	Name string

	// Techniques are the render techniques, in pass order.
	Techniques []Technique

	textures map[Unit]*RenderTexture
}

// NewMaterial returns a new anonymous material with the given technique.
func NewMaterial(tech Technique) *Material {
	return &Material{
		Techniques: []Technique{tech},
		textures:   map[Unit]*RenderTexture{},
	}
}

// SetName sets the resource name of the material.
func (mt *Material) SetName(name string) *Material {
	mt.Name = name
	return mt
}

// SetTexture binds the given texture to the given unit.
func (mt *Material) SetTexture(unit Unit, tx *RenderTexture) *Material {
	mt.textures[unit] = tx
	return mt
}

// Texture returns the texture bound to the given unit, or nil.
func (mt *Material) Texture(unit Unit) *RenderTexture {
	return mt.textures[unit]
}
