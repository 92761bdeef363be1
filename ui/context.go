// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui provides the minimal retained-mode UI context that insitu
// surfaces render and route input into. A [Context] owns a document
// (an [Element] tree) with hover tracking, and can be bound to a
// render surface that its frames are drawn into.
package ui

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/insitu3d/insitu/gfx"
)

// Context is a UI document bound to at most one render surface.
// An offscreen context starts disabled; its owner enables it once a
// valid render target is attached.
type Context struct {
	// Name is the name of the context.
	Name string

	// Enabled is whether the context renders and accepts input.
	Enabled bool

	// BlockInput is whether the context currently claims all input,
	// keeping it from reaching UIs rendered behind it.
	BlockInput bool

	// Background is the clear color of the document.
	Background color.RGBA

	// Frame is the composed document frame produced by the UI
	// library's own renderer, if any. When set, [Context.Render]
	// copies it into the render target, scaling as needed.
	Frame *image.RGBA

	root   *Element
	hover  *Element
	dims   image.Point
	target *gfx.RenderSurface
}

// NewContext returns a new enabled context with an empty document.
func NewContext(name string) *Context {
	ctx := &Context{
		Name:       name,
		Enabled:    true,
		Background: color.RGBA{A: 255},
	}
	ctx.root = &Element{Name: name}
	ctx.hover = ctx.root
	return ctx
}

// RootElement returns the document root element.
func (ctx *Context) RootElement() *Element {
	return ctx.root
}

// HoverElement returns the element currently under the cursor.
// It is the root element when nothing else is hovered, never nil.
func (ctx *Context) HoverElement() *Element {
	return ctx.hover
}

// CursorMoved updates hover tracking for the given cursor position in
// document pixels.
func (ctx *Context) CursorMoved(pt image.Point) {
	if hit := ctx.root.ElementAt(pt); hit != nil {
		ctx.hover = hit
	} else {
		ctx.hover = ctx.root
	}
}

// Dimensions returns the current pixel dimensions of the document.
func (ctx *Context) Dimensions() image.Point {
	return ctx.dims
}

// SetDimensions sets the pixel dimensions of the document and resizes
// the root element to cover them.
func (ctx *Context) SetDimensions(dims image.Point) {
	ctx.dims = dims
	ctx.root.Rect = image.Rectangle{Max: dims}
}

// RenderTarget returns the render surface the context renders into,
// or nil if detached.
func (ctx *Context) RenderTarget() *gfx.RenderSurface {
	return ctx.target
}

// SetRenderTarget attaches the context to the given render surface and
// adopts its dimensions; nil detaches.
func (ctx *Context) SetRenderTarget(rs *gfx.RenderSurface) {
	ctx.target = rs
	if rs != nil {
		ctx.SetDimensions(rs.Size())
	}
}

// Render draws the current document frame into the render target.
// A detached or unallocated target is a no-op.
func (ctx *Context) Render() {
	if ctx.target == nil || ctx.target.Texture.RGBA == nil {
		return
	}
	dst := ctx.target.Texture.RGBA
	if ctx.Frame == nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(ctx.Background), image.Point{}, draw.Src)
		return
	}
	if ctx.Frame.Bounds().Size() == dst.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), ctx.Frame, ctx.Frame.Bounds().Min, draw.Src)
		return
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), ctx.Frame, ctx.Frame.Bounds(), xdraw.Src, nil)
}
