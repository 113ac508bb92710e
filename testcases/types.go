// seehuhn.de/go/render3d - a software 3D rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines the scenes used to test the rasterizer against
// reference images, and a reference vertex type.
package testcases

import "github.com/go-gl/mathgl/mgl64"

// Case defines a single rendering test.
type Case struct {
	Name       string     // lowercase a-z, 0-9 and _ only
	Width      int        // canvas width in pixels
	Height     int        // canvas height in pixels
	Projection Projection // camera projection
	View       mgl64.Mat4 // world to view coordinates (zero-value means identity)
	Objects    []Object   // drawn in order
}

// Object is a mesh drawn with a constant gray level.
type Object struct {
	Mesh  []Triangle
	World mgl64.Mat4 // object to world coordinates (zero-value means identity)
	Gray  uint8      // value written to covered pixels
}

// Triangle is a mesh element.
type Triangle [3]Vertex

// ProjectionKind selects the type of camera projection.
type ProjectionKind int

const (
	Orthographic ProjectionKind = iota
	Perspective
)

func (k ProjectionKind) String() string {
	switch k {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return "unknown"
	}
}

// Projection describes the view volume of a camera.
type Projection struct {
	Kind                     ProjectionKind
	Left, Right, Top, Bottom float64
	Near, Far                float64
}

// unitOrtho maps the cube [-1,1]^3 onto the canvas, with y pointing down.
var unitOrtho = Projection{
	Kind: Orthographic,
	Left: -1, Right: 1, Top: -1, Bottom: 1,
	Near: -1, Far: 1,
}

// unitPerspective is the camera of the cube demo: a 90 degree field of
// view, with depth ranging from 1 to 2.
var unitPerspective = Projection{
	Kind: Perspective,
	Left: -1, Right: 1, Top: -1, Bottom: 1,
	Near: 1, Far: 2,
}

// Identity returns m, or the identity matrix if m is the zero matrix.
func Identity(m mgl64.Mat4) mgl64.Mat4 {
	if m == (mgl64.Mat4{}) {
		return mgl64.Ident4()
	}
	return m
}
