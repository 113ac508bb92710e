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
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Matrix4 is a 4x4 projection matrix in row-major order.
//
// The element in row i and column j is stored at index 4*i+j.
// A point (x, y, z) is mapped to homogeneous coordinates by multiplying
// the column vector (x, y, z, 1) from the left.
type Matrix4 [16]float64

// Apply maps a point through m, including the homogeneous division.
// The second return value is false if the homogeneous coordinate is zero
// or the result is not finite.
func (m *Matrix4) Apply(p mgl64.Vec3) (mgl64.Vec3, bool) {
	x := m[0]*p[0] + m[1]*p[1] + m[2]*p[2] + m[3]
	y := m[4]*p[0] + m[5]*p[1] + m[6]*p[2] + m[7]
	z := m[8]*p[0] + m[9]*p[1] + m[10]*p[2] + m[11]
	w := m[12]*p[0] + m[13]*p[1] + m[14]*p[2] + m[15]
	if w == 0 {
		return mgl64.Vec3{}, false
	}
	ndc := mgl64.Vec3{x / w, y / w, z / w}
	if !isFinite(ndc[0]) || !isFinite(ndc[1]) || !isFinite(ndc[2]) {
		return mgl64.Vec3{}, false
	}
	return ndc, true
}

// Mat4 returns m as a column-major mgl64 matrix.
func (m *Matrix4) Mat4() mgl64.Mat4 {
	var res mgl64.Mat4
	for i := range 4 {
		for j := range 4 {
			res[4*j+i] = m[4*i+j]
		}
	}
	return res
}

// PerspectiveMatrix returns the perspective projection for the given
// view frustum.  The camera looks along the positive z-axis; points at
// z=near map to depth -1 and points at z=far map to depth +1.
// The vertical extent runs from top (NDC y=-1) to bottom (NDC y=+1).
func PerspectiveMatrix(left, right, top, bottom, near, far float64) (Matrix4, error) {
	if err := checkFrustum(left, right, top, bottom, near, far); err != nil {
		return Matrix4{}, err
	}
	w := right - left
	h := bottom - top
	d := far - near

	var m Matrix4
	m[0] = 2 * near / w
	m[2] = -(right + left) / w
	m[5] = 2 * near / h
	m[6] = -(bottom + top) / h
	m[10] = (far + near) / d
	m[11] = -2 * far * near / d
	m[14] = 1
	return m, nil
}

// OrthographicMatrix returns the parallel projection for the given box.
// Points at z=near map to depth -1 and points at z=far map to depth +1.
func OrthographicMatrix(left, right, top, bottom, near, far float64) (Matrix4, error) {
	if err := checkFrustum(left, right, top, bottom, near, far); err != nil {
		return Matrix4{}, err
	}
	w := right - left
	h := bottom - top
	d := far - near

	var m Matrix4
	m[0] = 2 / w
	m[3] = -(right + left) / w
	m[5] = 2 / h
	m[7] = -(bottom + top) / h
	m[10] = 2 / d
	m[11] = -(far + near) / d
	m[15] = 1
	return m, nil
}

func checkFrustum(left, right, top, bottom, near, far float64) error {
	for _, v := range []float64{left, right, top, bottom, near, far} {
		if !isFinite(v) {
			return fmt.Errorf("%w: non-finite parameter %g", ErrDegenerateProjection, v)
		}
	}
	switch {
	case right == left:
		return fmt.Errorf("%w: left = right = %g", ErrDegenerateProjection, left)
	case bottom == top:
		return fmt.Errorf("%w: top = bottom = %g", ErrDegenerateProjection, top)
	case far == near:
		return fmt.Errorf("%w: near = far = %g", ErrDegenerateProjection, near)
	}
	return nil
}

// viewportMatrix maps normalised device coordinates in [-1, 1] to
// continuous pixel coordinates in [0, width-1] and [0, height-1].
// Integer pixel coordinates are the pixel centres.
func viewportMatrix(width, height int) matrix.Matrix {
	sx := float64(width-1) / 2
	sy := float64(height-1) / 2
	return matrix.Matrix{sx, 0, 0, sy, sx, sy}
}

// toPixel applies the viewport transformation to the x and y components
// of a point in normalised device coordinates.
func toPixel(m matrix.Matrix, ndc mgl64.Vec3) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*ndc[0] + m[2]*ndc[1] + m[4],
		Y: m[1]*ndc[0] + m[3]*ndc[1] + m[5],
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
