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

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DemoView is the camera of the cube demo: objects are scaled by one half
// and moved to (0.7, 0.7, 0.9).
var DemoView = mgl64.Mat4{
	0.5, 0, 0, 0,
	0, 0.5, 0, 0,
	0, 0, 0.5, 0,
	0.7, 0.7, 0.9, 1,
}

// DemoProjection is the projection used by the cube demo.
var DemoProjection = unitPerspective

// DemoObjects returns n cubes laid out on a ring in front of the demo
// camera.  Each cube is rotated differently so that several faces are
// visible.
func DemoObjects(n int) []Object {
	objects := make([]Object, n)
	for i := range objects {
		a := 2 * math.Pi * float64(i) / float64(n)
		world := mgl64.Translate3D(0.9*math.Cos(a)-1.4, 0.5*math.Sin(a)-1.4, 0.8+0.1*float64(i%3))
		world = world.Mul4(mgl64.HomogRotate3DY(a + 0.4)).Mul4(mgl64.HomogRotate3DX(0.5))
		objects[i] = Object{
			Mesh:  Cube(0.25),
			World: world,
			Gray:  uint8(80 + 175*i/max(n-1, 1)),
		}
	}
	return objects
}

var sceneCases = []Case{
	{
		Name:       "cube",
		Width:      96,
		Height:     96,
		Projection: unitPerspective,
		Objects: []Object{
			{
				Mesh:  Cube(0.3),
				World: mgl64.Translate3D(0, 0, 1.5).Mul4(mgl64.HomogRotate3DY(math.Pi / 5)).Mul4(mgl64.HomogRotate3DX(math.Pi / 7)),
				Gray:  200,
			},
		},
	},
	{
		Name:       "demo",
		Width:      150,
		Height:     50,
		Projection: DemoProjection,
		View:       DemoView,
		Objects:    DemoObjects(6),
	},
	{
		Name:       "many_objects",
		Width:      128,
		Height:     128,
		Projection: unitOrtho,
		Objects:    manyTriangles(40),
	},
}

// manyTriangles returns n single-triangle objects at increasing depth,
// each overlapping its predecessor.
func manyTriangles(n int) []Object {
	objects := make([]Object, n)
	for i := range objects {
		t := float64(i) / float64(n)
		x := -0.8 + 1.4*t
		y := -0.7 + 1.2*math.Sin(3*t)*0.5
		z := 0.9 - 1.8*t
		objects[i] = Object{
			Mesh: Tri(vtx(x, y, z), vtx(x+0.35, y+0.05, z), vtx(x+0.1, y+0.4, z)),
			Gray: uint8(40 + 215*i/n),
		}
	}
	return objects
}
