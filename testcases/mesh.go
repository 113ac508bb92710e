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

// Tri returns a mesh consisting of a single triangle.
func Tri(a, b, c Vertex) []Triangle {
	return []Triangle{{a, b, c}}
}

// Quad returns a mesh for the quadrilateral a-b-c-d, split along the
// diagonal a-c.
func Quad(a, b, c, d Vertex) []Triangle {
	return []Triangle{{a, b, c}, {a, c, d}}
}

// Cube returns the 12 triangles of an axis-aligned cube, centred at the
// origin with the given half side length.  Each corner is colored by its
// position, and each face carries texture coordinates in [0,1]^2.
func Cube(half float64) []Triangle {
	var corners [8]Vertex
	for i := range corners {
		v := Vertex{X: -half, Y: -half, Z: -half}
		if i&1 != 0 {
			v.X = half
		}
		if i&2 != 0 {
			v.Y = half
		}
		if i&4 != 0 {
			v.Z = half
		}
		v.R = float64(i & 1)
		v.G = float64((i >> 1) & 1)
		v.B = float64((i >> 2) & 1)
		corners[i] = v
	}

	faces := [6][4]int{
		{0, 1, 3, 2}, // z = -half
		{4, 6, 7, 5}, // z = +half
		{0, 4, 5, 1}, // y = -half
		{2, 3, 7, 6}, // y = +half
		{0, 2, 6, 4}, // x = -half
		{1, 5, 7, 3}, // x = +half
	}
	uv := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	mesh := make([]Triangle, 0, 12)
	for _, f := range faces {
		var q [4]Vertex
		for k, idx := range f {
			q[k] = corners[idx]
			q[k].U, q[k].V = uv[k][0], uv[k][1]
		}
		mesh = append(mesh, Quad(q[0], q[1], q[2], q[3])...)
	}
	return mesh
}

// Grid returns a mesh covering the rectangle [x0,x1]x[y0,y1] with nx*ny
// cells, two triangles each.  The depth of each grid point is given by z.
// Texture coordinates run from 0 to 1 across the grid.
func Grid(nx, ny int, x0, y0, x1, y1 float64, z func(x, y float64) float64) []Triangle {
	if nx <= 0 || ny <= 0 {
		return nil
	}
	point := func(i, j int) Vertex {
		u := float64(i) / float64(nx)
		v := float64(j) / float64(ny)
		x := x0 + u*(x1-x0)
		y := y0 + v*(y1-y0)
		return Vertex{X: x, Y: y, Z: z(x, y), U: u, V: v, R: u, G: v, B: 1}
	}

	mesh := make([]Triangle, 0, 2*nx*ny)
	for j := range ny {
		for i := range nx {
			mesh = append(mesh, Quad(point(i, j), point(i+1, j), point(i+1, j+1), point(i, j+1))...)
		}
	}
	return mesh
}

// flat is a depth function for Grid which places all points at depth d.
func flat(d float64) func(x, y float64) float64 {
	return func(float64, float64) float64 { return d }
}
