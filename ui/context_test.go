// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insitu3d/insitu/gfx"
)

func TestContextHover(t *testing.T) {
	ctx := NewContext("menu")
	ctx.SetDimensions(image.Pt(200, 200))
	root := ctx.RootElement()
	btn := root.NewChild("button", image.Rect(10, 10, 50, 30))
	inner := btn.NewChild("label", image.Rect(12, 12, 30, 28))

	assert.Equal(t, root, ctx.HoverElement(), "root hovered by default")

	ctx.CursorMoved(image.Pt(100, 100))
	assert.Equal(t, root, ctx.HoverElement())

	ctx.CursorMoved(image.Pt(40, 20))
	assert.Equal(t, btn, ctx.HoverElement())

	ctx.CursorMoved(image.Pt(15, 15))
	assert.Equal(t, inner, ctx.HoverElement(), "deepest element wins")

	ctx.CursorMoved(image.Pt(-5, -5))
	assert.Equal(t, root, ctx.HoverElement(), "outside falls back to root")
}

func TestContextRenderTarget(t *testing.T) {
	ctx := NewContext("menu")
	tx := gfx.NewRenderTexture("menu")
	require.NoError(t, tx.SetSize(gfx.MemDevice{}, 64, 64))

	ctx.SetRenderTarget(tx.Surface())
	assert.Equal(t, image.Pt(64, 64), ctx.Dimensions(), "context adopts target size")
	assert.Equal(t, image.Rect(0, 0, 64, 64), ctx.RootElement().Rect)

	ctx.SetRenderTarget(nil)
	assert.Nil(t, ctx.RenderTarget())
	assert.Equal(t, image.Pt(64, 64), ctx.Dimensions(), "dimensions kept on detach")
}

func TestContextRenderBackground(t *testing.T) {
	ctx := NewContext("menu")
	ctx.Background = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	tx := gfx.NewRenderTexture("menu")
	require.NoError(t, tx.SetSize(gfx.MemDevice{}, 8, 8))
	ctx.SetRenderTarget(tx.Surface())

	ctx.Render()
	assert.Equal(t, ctx.Background, tx.RGBA.RGBAAt(4, 4))
}

func TestContextRenderFrameScaled(t *testing.T) {
	ctx := NewContext("menu")
	tx := gfx.NewRenderTexture("menu")
	require.NoError(t, tx.SetSize(gfx.MemDevice{}, 16, 16))
	ctx.SetRenderTarget(tx.Surface())

	// a solid white frame at a different size gets scaled to fill
	frame := image.NewRGBA(image.Rect(0, 0, 32, 32))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			frame.SetRGBA(x, y, white)
		}
	}
	ctx.Frame = frame
	ctx.Render()
	assert.Equal(t, white, tx.RGBA.RGBAAt(8, 8))
	assert.Equal(t, white, tx.RGBA.RGBAAt(0, 0))

	// detached render is a no-op
	ctx.SetRenderTarget(nil)
	ctx.Render()
}
