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

import "math"

// ndc returns the normalised device coordinate of pixel coordinate p on
// an axis with n pixels, for the unit orthographic camera.
func ndc(p float64, n int) float64 {
	return 2*p/float64(n-1) - 1
}

// fan returns n triangles around the centre (cx, cy), together covering a
// regular polygon of radius r.
func fan(cx, cy, r float64, n int) []Triangle {
	var mesh []Triangle
	centre := vtx(cx, cy, 0)
	for i := range n {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		mesh = append(mesh, Triangle{
			centre,
			vtx(cx+r*math.Cos(a0), cy+r*math.Sin(a0), 0),
			vtx(cx+r*math.Cos(a1), cy+r*math.Sin(a1), 0),
		})
	}
	return mesh
}

var precisionCases = []Case{
	{
		Name:       "tiny",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(ndc(20, 64), ndc(20, 64), 0), vtx(ndc(22.5, 64), ndc(20.5, 64), 0), vtx(ndc(20.5, 64), ndc(22.5, 64), 0)), Gray: 255},
			{Mesh: Tri(vtx(ndc(40.2, 64), ndc(40.2, 64), 0), vtx(ndc(40.8, 64), ndc(40.3, 64), 0), vtx(ndc(40.4, 64), ndc(40.9, 64), 0)), Gray: 255},
		},
	},
	{
		Name:       "pixel_centres",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(ndc(8, 64), ndc(8, 64), 0), vtx(ndc(56, 64), ndc(8, 64), 0), vtx(ndc(8, 64), ndc(56, 64), 0)), Gray: 255},
		},
	},
	{
		Name:       "half_offsets",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(ndc(8.49, 64), ndc(8.49, 64), 0), vtx(ndc(55.51, 64), ndc(8.51, 64), 0), vtx(ndc(30.5, 64), ndc(55.49, 64), 0)), Gray: 255},
		},
	},
	{
		Name:       "needle",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-0.95, -0.9, 0), vtx(0.95, 0.9, 0), vtx(0.9, 0.95, 0)), Gray: 255},
		},
	},
	{
		Name:       "far_coordinates",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: Tri(vtx(-1e6, -1e6, 0), vtx(1e6, -1e6, 0), vtx(0.5, 1e6, 0)), Gray: 255},
		},
	},
	{
		Name:       "fan",
		Width:      64,
		Height:     64,
		Projection: unitOrtho,
		Objects: []Object{
			{Mesh: fan(0.05, -0.03, 0.8, 16), Gray: 255},
		},
	},
}
