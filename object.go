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

package render3d

import (
	"image"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Object is a triangle mesh together with the shader used to draw it.
//
// The vertex type of the mesh is fixed when the object is created, so that
// objects with different vertex types can share one [Scene].
type Object[T any] struct {
	// World maps object coordinates to world coordinates.
	// NewObject and NewObjectFunc initialise this to the identity.
	World mgl64.Mat4

	textures  []image.Image
	triangles int
	draw      func(r *Rasterizer[T], modelView mgl64.Mat4)
}

// NewObject creates an object which uses the vertex type's own
// interpolation and perspective correction.  The mesh is copied.
//
// The textures are stored with the object, for the use of shaders which
// keep a reference to the object.  The rasterizer does not read them.
func NewObject[V Vertex[V], T any](mesh []Triangle[V], shade Shader[V, T], textures ...image.Image) *Object[T] {
	return NewObjectFunc(mesh, shade, interpolateMethod[V], correctMethod[V], textures...)
}

// NewObjectFunc creates an object with explicit interpolation and
// perspective correction strategies.  The mesh is copied.
func NewObjectFunc[V Positioned[V], T any](mesh []Triangle[V], shade Shader[V, T],
	interp Interpolator[V], correct Corrector[V], textures ...image.Image) *Object[T] {
	mesh = slices.Clone(mesh)

	draw := func(r *Rasterizer[T], modelView mgl64.Mat4) {
		for _, tri := range mesh {
			v1 := transformVertex(modelView, tri[0])
			v2 := transformVertex(modelView, tri[1])
			v3 := transformVertex(modelView, tri[2])
			DrawTriangleFunc(r, v1, v2, v3, shade, interp, correct)
		}
	}

	return &Object[T]{
		World:     mgl64.Ident4(),
		textures:  slices.Clone(textures),
		triangles: len(mesh),
		draw:      draw,
	}
}

// Textures returns the textures attached to the object.
func (o *Object[T]) Textures() []image.Image {
	return o.textures
}

// TriangleCount returns the number of triangles in the mesh.
func (o *Object[T]) TriangleCount() int {
	return o.triangles
}

// Render draws the object directly, transformed by view*World.
// This bypasses the worker gate.
func (o *Object[T]) Render(r *Rasterizer[T], view mgl64.Mat4) {
	o.draw(r, view.Mul4(o.World))
}

// transformVertex moves a vertex by an affine transformation.
func transformVertex[V Positioned[V]](m mgl64.Mat4, v V) V {
	p := m.Mul4x1(v.Position().Vec4(1)).Vec3()
	return v.WithPosition(p)
}
