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

import "github.com/go-gl/mathgl/mgl64"

// Point is implemented by vertex types which carry a position.
// The position is given in view coordinates, before projection.
type Point interface {
	Position() mgl64.Vec3
}

// Positioned is implemented by vertex types whose position can be replaced.
// Scenes use this to move mesh vertices from object coordinates into view
// coordinates.
type Positioned[V any] interface {
	Point
	WithPosition(p mgl64.Vec3) V
}

// Vertex is implemented by vertex types which know how to interpolate and
// perspective-correct themselves.
//
// Interpolate returns v*w + other*(1-w) for every attribute, so that w=1
// gives v and w=0 gives other.
//
// PerspectiveCorrect is applied once to each corner of a triangle before
// interpolation, and once more to each interpolated pixel vertex before
// shading.  The usual implementation replaces the depth z by 1/z and
// multiplies all other attributes by the new value.  Applying it twice then
// restores the original vertex, and attributes interpolated between
// corrected corners come out perspective-correct.
type Vertex[V any] interface {
	Positioned[V]
	Interpolate(other V, w float64) V
	PerspectiveCorrect() V
}

// Triangle is a mesh element.
type Triangle[V any] [3]V

// Shader computes the value written to the target buffer for a covered
// pixel.
type Shader[V, T any] func(v V) T

// Interpolator blends two vertices.  The weight w=1 gives a and w=0 gives b.
type Interpolator[V any] func(a, b V, w float64) V

// Corrector applies perspective correction to a vertex in place.
type Corrector[V any] func(v *V)

// interpolateMethod and correctMethod adapt the methods of a [Vertex] to
// the explicit strategy types.
func interpolateMethod[V Vertex[V]](a, b V, w float64) V {
	return a.Interpolate(b, w)
}

func correctMethod[V Vertex[V]](v *V) {
	*v = (*v).PerspectiveCorrect()
}

// Lerp blends two scalars with the same convention as [Interpolator]:
// w=1 gives a and w=0 gives b.
func Lerp(a, b, w float64) float64 {
	return a*w + b*(1-w)
}
