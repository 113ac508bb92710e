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

var triangleCases = []Case{
	{
		Name:       "upright",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.8, 0.8, 0), vtx(0.8, 0.8, 0), vtx(0, -0.8, 0)), Gray: 255},
		},
	},
	{
		Name:       "flat_top",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.8, -0.6, 0), vtx(0.8, -0.6, 0), vtx(0.1, 0.9, 0)), Gray: 255},
		},
	},
	{
		Name:       "flat_bottom",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.2, -0.9, 0), vtx(0.9, 0.7, 0), vtx(-0.9, 0.7, 0)), Gray: 255},
		},
	},
	{
		Name:       "right_angle",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.7, -0.7, 0), vtx(0.7, -0.7, 0), vtx(-0.7, 0.7, 0)), Gray: 255},
		},
	},
	{
		Name:       "obtuse",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.9, 0, 0), vtx(0.9, 0.2, 0), vtx(0.5, -0.3, 0)), Gray: 255},
		},
	},
	{
		Name:       "shallow",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.9, -0.1, 0), vtx(0.9, 0.1, 0), vtx(-0.9, 0.25, 0)), Gray: 255},
		},
	},
	{
		Name:       "steep",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.1, -0.9, 0), vtx(0.1, 0.9, 0), vtx(0.25, -0.9, 0)), Gray: 255},
		},
	},
	{
		Name:       "partly_outside",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-1.5, -0.5, 0), vtx(0.5, -1.6, 0), vtx(0.8, 1.4, 0)), Gray: 255},
		},
	},
	{
		Name:       "covering",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-3, -3, 0), vtx(3, -3, 0), vtx(0, 4, 0)), Gray: 255},
		},
	},
	{
		Name:       "two_tone",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.7, -0.7, 0), vtx(0.7, -0.7, 0), vtx(0.7, 0.7, 0)), Gray: 255},
			{Mesh: Tri(vtx(-0.7, -0.7, 0), vtx(0.7, 0.7, 0), vtx(-0.7, 0.7, 0)), Gray: 128},
		},
	},
}
