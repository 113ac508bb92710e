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

package testcases

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a mesh vertex with a position, a color and texture
// coordinates.
type Vertex struct {
	X, Y, Z float64 // position
	R, G, B float64 // color
	U, V    float64 // texture coordinates
}

// vtx returns a vertex at the given position, with all other attributes
// set to zero.
func vtx(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// Position returns the position of the vertex.
func (v Vertex) Position() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// WithPosition returns a copy of v, moved to p.
func (v Vertex) WithPosition(p mgl64.Vec3) Vertex {
	v.X, v.Y, v.Z = p[0], p[1], p[2]
	return v
}

// Interpolate returns v*w + other*(1-w), component by component.
func (v Vertex) Interpolate(other Vertex, w float64) Vertex {
	u := 1 - w
	return Vertex{
		X: v.X*w + other.X*u,
		Y: v.Y*w + other.Y*u,
		Z: v.Z*w + other.Z*u,
		R: v.R*w + other.R*u,
		G: v.G*w + other.G*u,
		B: v.B*w + other.B*u,
		U: v.U*w + other.U*u,
		V: v.V*w + other.V*u,
	}
}

// PerspectiveCorrect replaces Z by 1/Z and multiplies the color and texture
// coordinates by the new Z.  Applying the method twice gives back the
// original vertex, up to rounding.  Vertices with Z=0 are returned
// unchanged.
func (v Vertex) PerspectiveCorrect() Vertex {
	if v.Z == 0 {
		return v
	}
	z := 1 / v.Z
	v.Z = z
	v.R *= z
	v.G *= z
	v.B *= z
	v.U *= z
	v.V *= z
	return v
}
