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

var depthCases = []Case{
	{
		Name:       "near_over_far",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.5), World: mgl64.Translate3D(-0.2, -0.2, 0.5), Gray: 100},
			{Mesh: square(0.5), World: mgl64.Translate3D(0.2, 0.2, -0.5), Gray: 220},
		},
	},
	{
		Name:       "far_under_near",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.5), World: mgl64.Translate3D(0.2, 0.2, -0.5), Gray: 220},
			{Mesh: square(0.5), World: mgl64.Translate3D(-0.2, -0.2, 0.5), Gray: 100},
		},
	},
	{
		Name:       "three_layers",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.45), World: mgl64.Translate3D(0, 0, 0), Gray: 150},
			{Mesh: square(0.45), World: mgl64.Translate3D(-0.3, -0.3, 0.6), Gray: 80},
			{Mesh: square(0.45), World: mgl64.Translate3D(0.3, 0.3, -0.6), Gray: 250},
		},
	},
	{
		Name:       "beyond_far",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.5), World: mgl64.Translate3D(0, 0, 1.5), Gray: 255},
			{Mesh: square(0.3), World: mgl64.Translate3D(0.3, 0.3, 0.9), Gray: 128},
		},
	},
	{
		Name:       "perspective_layers",
		Width:      64,
		Height:     64,
		Projection: unitPerspective,
		Objects: []Object{
			{Mesh: square(0.6), World: mgl64.Translate3D(0.2, 0, 1.8), Gray: 90},
			{Mesh: square(0.3), World: mgl64.Translate3D(-0.1, 0, 1.2), Gray: 230},
		},
	},
}
