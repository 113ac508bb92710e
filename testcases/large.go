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

// checkerboard returns an n by n board of squares covering [-s,s]^2,
// split into two objects with the given gray levels.
func checkerboard(n int, s float64, dark, light uint8) []Object {
	var black, white []Triangle
	step := 2 * s / float64(n)
	for j := range n {
		for i := range n {
			x0 := -s + float64(i)*step
			y0 := -s + float64(j)*step
			cell := Quad(vtx(x0, y0, 0), vtx(x0+step, y0, 0), vtx(x0+step, y0+step, 0), vtx(x0, y0+step, 0))
			if (i+j)%2 == 0 {
				black = append(black, cell...)
			} else {
				white = append(white, cell...)
			}
		}
	}
	return []Object{
		{Mesh: black, Gray: dark},
		{Mesh: white, Gray: light},
	}
}

var largeCases = []Case{
	{
		Name:       "big_triangle",
		Width:      512,
		Height:     512,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.97, 0.9, 0), vtx(0.95, 0.97, 0), vtx(0.1, -0.95, 0)), Gray: 255},
		},
	},
	{
		Name:       "checkerboard",
		Width:      512,
		Height:     512,
		Projection: unitOrtho,
		Objects:    checkerboard(16, 0.9, 60, 255),
	},
	{
		Name:       "grid_wave",
		Width:      400,
		Height:     300,
		Projection: unitPerspective,
		Objects: []Object{
			{
				Mesh: Grid(24, 24, -1, -1, 1, 1, func(x, y float64) float64 {
					return 0.1 * math.Sin(3*x) * math.Cos(3*y)
				}),
				World: mgl64.Translate3D(0, 0.2, 1.6).Mul4(mgl64.HomogRotate3DX(-math.Pi / 3)).Mul4(mgl64.Scale3D(0.8, 0.8, 0.8)),
				Gray:  200,
			},
		},
	},
}
