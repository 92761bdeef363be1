// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "image"

// Element is one element of a retained-mode UI document: a rectangle
// in document pixel coordinates with child elements inside it.
type Element struct {
	// Name is the name of the element.
	Name string

	// Rect is the bounds of the element in document pixels.
	// The root element's rect is the whole document.
	Rect image.Rectangle

	// Parent is the parent element; nil for the root.
	Parent *Element

	// Children are the child elements, in document order.
	Children []*Element
}

// NewChild adds and returns a new child element with the given name
// and bounds.
func (el *Element) NewChild(name string, rect image.Rectangle) *Element {
	child := &Element{Name: name, Rect: rect, Parent: el}
	el.Children = append(el.Children, child)
	return child
}

// IsRoot returns whether this is the document root element.
func (el *Element) IsRoot() bool {
	return el.Parent == nil
}

// ElementAt returns the deepest element whose bounds contain the given
// point, or nil if the point is outside this element.
func (el *Element) ElementAt(pt image.Point) *Element {
	if !pt.In(el.Rect) {
		return nil
	}
	// later children are on top
	for i := len(el.Children) - 1; i >= 0; i-- {
		if hit := el.Children[i].ElementAt(pt); hit != nil {
			return hit
		}
	}
	return el
}
