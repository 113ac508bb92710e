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

// square is a quad of side 2*half in the plane z=0.
func square(half float64) []Triangle {
	return Quad(vtx(-half, -half, 0), vtx(half, -half, 0), vtx(half, half, 0), vtx(-half, half, 0))
}

var transformCases = []Case{
	{
		Name:       "translate",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.4), World: mgl64.Translate3D(0.3, -0.2, 0), Gray: 255},
		},
	},
	{
		Name:       "scale",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.8), World: mgl64.Scale3D(0.5, 0.9, 1), Gray: 255},
		},
	},
	{
		Name:       "rotate_z",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.5), World: mgl64.HomogRotate3DZ(math.Pi / 6), Gray: 255},
		},
	},
	{
		Name:       "rotate_y",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: square(0.6), World: mgl64.HomogRotate3DY(math.Pi / 3), Gray: 255},
		},
	},
	{
		Name:       "view_translate",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		View:       mgl64.Translate3D(-0.3, 0.1, 0),
		Objects: []Object{
			{Mesh: square(0.3), World: mgl64.Translate3D(0.5, 0.5, 0), Gray: 255},
			{Mesh: square(0.2), World: mgl64.Translate3D(-0.2, -0.4, 0), Gray: 160},
		},
	},
	{
		Name:       "combined",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		View:       mgl64.Scale3D(0.8, 0.8, 0.8),
		Objects: []Object{
			{
				Mesh:  square(0.5),
				World: mgl64.Translate3D(0.2, 0.1, 0).Mul4(mgl64.HomogRotate3DZ(-math.Pi / 8)),
				Gray:  255,
			},
		},
	},
	{
		Name:       "perspective_square",
		Width:      64,
		Height:     64,
		Projection: unitPerspective,
		Objects: []Object{
			{
				Mesh:  square(0.5),
				World: mgl64.Translate3D(0, 0, 1.5).Mul4(mgl64.HomogRotate3DX(math.Pi / 4)),
				Gray:  255,
			},
		},
	},
}
