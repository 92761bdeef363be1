// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface projects a retained-mode UI document onto surfaces in
// a 3D scene and maps picking back into 2D UI coordinates.
//
// A [Surface] owns a square render-target texture and the offscreen UI
// context rendering into it. A [Mapper] rewrites screen-space cursor
// positions into UI-local pixel coordinates by raycasting the scene.
// [ModelComponent] and [MaterialComponent] bind both to a scene node.
//
// Everything here runs synchronously on the host engine's update
// thread, inside its event callbacks; nothing locks or blocks.
package surface

import (
	"fmt"
	"log/slog"

	"github.com/insitu3d/insitu/gfx"
	"github.com/insitu3d/insitu/ui"
)

const (
	// DefaultSize is the initial render-target texture size.
	DefaultSize = 512

	// MinSize and MaxSize bound the render-target texture size.
	MinSize = 64
	MaxSize = 4096
)

// Surface is an offscreen UI surface: a square render-target texture
// and the UI context bound 1:1 to it. The context is enabled exactly
// when the render target is valid; [Surface.SetSize] is the only path
// that flips it.
type Surface struct {
	// Device allocates the render-target storage.
	Device gfx.Device

	// Texture is the render-target texture. Its identity is stable
	// across resizes, so materials keep their binding.
	Texture *gfx.RenderTexture

	// UI is the offscreen UI context rendering into Texture.
	UI *ui.Context
}

// NewSurface returns a new surface of [DefaultSize] on the given
// device. If the device cannot allocate the default size, the surface
// is returned with its UI context disabled.
func NewSurface(dev gfx.Device, name string) *Surface {
	sf := &Surface{
		Device:  dev,
		Texture: gfx.NewRenderTexture(name),
		UI:      ui.NewContext(name),
	}
	sf.UI.Enabled = false
	sf.SetSize(DefaultSize, DefaultSize)
	return sf
}

// SetSize resizes the render-target texture.
//
// A non-square size or one outside [MinSize, MaxSize] is rejected:
// the error is logged and the previous texture and context state are
// kept. On allocation failure the render target is detached and the
// UI context disabled, as the safe fallback. On success the render
// surface is attached to the UI context with a manual update policy
// and the context is enabled.
func (sf *Surface) SetSize(width, height int) error {
	if width != height || width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		err := fmt.Errorf("surface: invalid texture size %dx%d", width, height)
		slog.Error("surface: rejecting texture size", "name", sf.Texture.Name, "width", width, "height", height)
		return err
	}
	if err := sf.Texture.SetSize(sf.Device, width, height); err != nil {
		sf.UI.SetRenderTarget(nil)
		sf.UI.Enabled = false
		slog.Error("surface: resizing render-target texture failed", "name", sf.Texture.Name, "error", err)
		return err
	}
	rs := sf.Texture.Surface()
	rs.UpdateMode = gfx.UpdateManual
	sf.UI.SetRenderTarget(rs)
	sf.UI.Enabled = true
	return nil
}

// Render renders the UI context into the texture when the context
// is enabled.
func (sf *Surface) Render() {
	if sf.UI.Enabled {
		sf.UI.Render()
	}
}
