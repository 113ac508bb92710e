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

// All cases in this category render to an empty image.
var degenerateCases = []Case{
	{
		Name:       "collinear",
		Width:      32,
		Height:     32,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.8, -0.8, 0), vtx(0, 0, 0), vtx(0.8, 0.8, 0)), Gray: 255},
		},
	},
	{
		Name:       "point",
		Width:      32,
		Height:     32,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(0.1, 0.1, 0), vtx(0.1, 0.1, 0), vtx(0.1, 0.1, 0)), Gray: 255},
		},
	},
	{
		Name:       "horizontal_line",
		Width:      32,
		Height:     32,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.8, 0.3, 0), vtx(0.8, 0.3, 0), vtx(0.1, 0.3, 0)), Gray: 255},
		},
	},
	{
		Name:       "above",
		Width:      32,
		Height:     32,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.5, -3, 0), vtx(0.5, -3, 0), vtx(0, -1.2, 0)), Gray: 255},
		},
	},
	{
		Name:       "below",
		Width:      32,
		Height:     32,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.5, 1.2, 0), vtx(0.5, 1.2, 0), vtx(0, 3, 0)), Gray: 255},
		},
	},
	{
		Name:       "left_and_right",
		Width:      32,
		Height:     32,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-3, -0.5, 0), vtx(-1.2, 0, 0), vtx(-3, 0.5, 0)), Gray: 255},
			{Mesh: Tri(vtx(3, -0.5, 0), vtx(3, 0.5, 0), vtx(1.2, 0, 0)), Gray: 255},
		},
	},
	{
		Name:       "camera_plane",
		Width:      32,
		Height:     32,
		Projection: unitPerspective,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.5, -0.5, 0), vtx(0.5, -0.5, 1.5), vtx(0, 0.5, 1.5)), Gray: 255},
		},
	},
	{
		Name:       "beyond_far_plane",
		Width:      32,
		Height:     32,
		Projection: unitPerspective,
		Objects: []Object{
			{Mesh: square(0.5), World: mgl64.Translate3D(0, 0, 3), Gray: 255},
		},
	},
}
