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

// Package render3d implements a software rasterizer for triangle meshes.
//
// Triangles are projected through a [Matrix4], converted to pixel spans and
// shaded by a caller-supplied function, which decides what is written into
// the caller-owned target buffer.  A depth buffer resolves visibility, so
// that objects can be drawn in any order and from several goroutines at
// once.  A [Scene] draws a list of independently transformed objects,
// using the worker gate of the rasterizer to bound the number of objects
// in progress.
package render3d

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "seehuhn.de/go/render3d/testcases"

// RenderCase renders a test case into a grayscale buffer using r.
// The buffer must hold tc.Width*tc.Height bytes in row-major order and is
// normally pre-initialized with zeros.  Every covered pixel is set to the
// gray level of the visible object.
func RenderCase(r *Rasterizer[byte], tc testcases.Case, buf []byte) error {
	if err := r.SetTarget(tc.Width, tc.Height, buf); err != nil {
		return err
	}

	p := tc.Projection
	var err error
	switch p.Kind {
	case testcases.Perspective:
		err = r.SetPerspective(p.Left, p.Right, p.Top, p.Bottom, p.Near, p.Far)
	default:
		err = r.SetOrthographic(p.Left, p.Right, p.Top, p.Bottom, p.Near, p.Far)
	}
	if err != nil {
		return err
	}

	scene := NewScene[byte]()
	scene.View = testcases.Identity(tc.View)
	for _, obj := range tc.Objects {
		gray := obj.Gray
		o := NewObject[testcases.Vertex, byte](meshOf(obj), func(testcases.Vertex) byte {
			return gray
		})
		o.World = testcases.Identity(obj.World)
		scene.Add(o)
	}
	return scene.Render(r)
}

// meshOf converts the mesh of a test case object.
func meshOf(obj testcases.Object) []Triangle[testcases.Vertex] {
	mesh := make([]Triangle[testcases.Vertex], len(obj.Mesh))
	for i, t := range obj.Mesh {
		mesh[i] = Triangle[testcases.Vertex](t)
	}
	return mesh
}
