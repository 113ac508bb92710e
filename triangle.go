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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DrawTriangle rasterizes a triangle, using the vertex type's own
// interpolation and perspective correction.
//
// The vertex positions are given in view coordinates.  Pixel (x, y) has its
// centre at integer coordinates, and a continuous coordinate maps to the
// pixel index by rounding down.  In every row from the one containing the
// top corner to the one containing the bottom corner, the pixels between the
// rounded-down edge crossings of that row are drawn, if they pass the depth
// test.  Edges which are flatter than 45 degrees are sampled half a row
// further down.  The drawn pixels therefore differ from those whose centre
// lies inside the triangle along the edges: by up to one pixel for steep
// edges, and by up to half the horizontal run of one row for flat edges.
// Tiny triangles still cover the pixel which contains them.
//
// Triangles which are degenerate, outside the clip rectangle, or which
// cannot be projected are skipped silently.
func DrawTriangle[V Vertex[V], T any](r *Rasterizer[T], v1, v2, v3 V, shade Shader[V, T]) {
	DrawTriangleFunc(r, v1, v2, v3, shade, interpolateMethod[V], correctMethod[V])
}

// DrawTriangleFunc is like [DrawTriangle], but uses explicit strategies for
// interpolation and perspective correction.  If correct is nil, no
// perspective correction is applied.  Shade and interp must not be nil.
func DrawTriangleFunc[V Point, T any](r *Rasterizer[T], v1, v2, v3 V,
	shade Shader[V, T], interp Interpolator[V], correct Corrector[V]) {
	if shade == nil || interp == nil {
		panic("render3d: DrawTriangleFunc needs a shader and an interpolator")
	}

	n1, ok1 := r.proj.Apply(v1.Position())
	n2, ok2 := r.proj.Apply(v2.Position())
	n3, ok3 := r.proj.Apply(v3.Position())
	if !ok1 || !ok2 || !ok3 {
		return
	}

	// sort the corners from top to bottom
	if n1[1] > n2[1] {
		v1, v2 = v2, v1
		n1, n2 = n2, n1
	}
	if n1[1] > n3[1] {
		v1, v3 = v3, v1
		n1, n3 = n3, n1
	}
	if n2[1] > n3[1] {
		v2, v3 = v3, v2
		n2, n3 = n3, n2
	}

	if correct != nil {
		correct(&v1)
		correct(&v2)
		correct(&v3)
	}

	t := &walker[V, T]{
		r:       r,
		v:       [3]V{v1, v2, v3},
		z:       [3]float64{n1[2], n2[2], n3[2]},
		p:       [3]vec.Vec2{toPixel(r.viewport, n1), toPixel(r.viewport, n2), toPixel(r.viewport, n3)},
		shade:   shade,
		interp:  interp,
		correct: correct,
	}
	t.draw()
}

// walker holds the state for rasterizing a single triangle.
// The corners are sorted by increasing y.
type walker[V any, T any] struct {
	r *Rasterizer[T]

	v [3]V        // perspective-corrected vertices
	z [3]float64  // depth in normalised device coordinates
	p [3]vec.Vec2 // continuous pixel coordinates

	shade   Shader[V, T]
	interp  Interpolator[V]
	correct Corrector[V]
}

func (t *walker[V, T]) draw() {
	r := t.r
	p1, p2, p3 := t.p[0], t.p[1], t.p[2]

	y1 := pixelIndex(p1.Y, r.height)
	y2 := pixelIndex(p2.Y, r.height)
	y3 := pixelIndex(p3.Y, r.height)
	if y1 >= r.clipY1 || y3 < r.clipY0 {
		return
	}

	d12 := p2.Sub(p1)
	d13 := p3.Sub(p1)
	if math.Abs(d12.X*d13.Y-d12.Y*d13.X) < degenerateAreaThreshold {
		return
	}

	e12 := newEdge(p1, p2, 0, 1)
	e13 := newEdge(p1, p3, 0, 2)
	e23 := newEdge(p2, p3, 1, 2)

	// The middle corner lies left of the long edge if it is left of the
	// point on v1-v3 at the same height.
	shortLeft := p2.X < p1.X+(p2.Y-p1.Y)*e13.dxdy

	top := max(y1, r.clipY0)
	bottom := min(y3, r.clipY1-1)

	// rows above the middle corner
	if top < y2 {
		e13.start(top)
		e12.start(top)
		for y := top; y < y2 && y <= bottom; y++ {
			t.row(y, &e13, &e12, shortLeft)
			e13.next()
			e12.next()
		}
	}

	// the row containing the middle corner
	if y2 >= top && y2 <= bottom {
		e13.start(y2)
		e12.start(y2)
		long, longCol := t.end(&e13)
		short, shortCol := t.end(&e12)

		corner := span[V]{x: p2.X, v: t.v[1], z: t.z[1]}
		cornerCol := pixelIndex(p2.X, r.width)
		if shortLeft {
			if corner.x < short.x {
				short = corner
			}
			shortCol = min(shortCol, cornerCol)
			scanline(r, y2, shortCol, longCol, short, long, t.shade, t.interp, t.correct)
		} else {
			if corner.x > short.x {
				short = corner
			}
			shortCol = max(shortCol, cornerCol)
			scanline(r, y2, longCol, shortCol, long, short, t.shade, t.interp, t.correct)
		}
	}

	// rows below the middle corner
	if first := max(y2+1, top); first <= bottom {
		e13.start(first)
		e23.start(first)
		for y := first; y <= bottom; y++ {
			t.row(y, &e13, &e23, shortLeft)
			e13.next()
			e23.next()
		}
	}
}

// row draws the span between the long edge and a short edge.
func (t *walker[V, T]) row(y int, long, short *edge, shortLeft bool) {
	l, lCol := t.end(long)
	s, sCol := t.end(short)
	if shortLeft {
		scanline(t.r, y, sCol, lCol, s, l, t.shade, t.interp, t.correct)
	} else {
		scanline(t.r, y, lCol, sCol, l, s, t.shade, t.interp, t.correct)
	}
}

// end returns the scanline end point where the edge crosses its current
// row, together with the pixel column of the end point.
func (t *walker[V, T]) end(e *edge) (span[V], int) {
	x, w, clamped := e.sample()

	s := span[V]{x: x, z: Lerp(t.z[e.a], t.z[e.b], w)}
	switch w {
	case 1:
		s.v = t.v[e.a]
	case 0:
		s.v = t.v[e.b]
	default:
		s.v = t.interp(t.v[e.a], t.v[e.b], w)
	}

	// Shallow edges cross several pixels per row.  For these, the
	// column is taken half a row further down.
	if !clamped && math.Abs(e.dxdy) > 1 {
		x = min(max(x+0.5*e.dxdy, e.xMin), e.xMax)
	}
	return s, pixelIndex(x, t.r.width)
}

// edge is a triangle edge in pixel coordinates, walked one row at a time.
type edge struct {
	a, b       int      // corner indices of the top and bottom end points
	top, bot   vec.Vec2 // end points, top.Y <= bot.Y
	xMin, xMax float64  // horizontal extent

	dxdy float64 // change of x per row
	dwdy float64 // change of the top weight per row
	flat bool    // vertical extent below horizontalEdgeThreshold

	y int     // current row
	x float64 // x-intercept at the current row
	w float64 // weight of the top end point at the current row
}

func newEdge(top, bot vec.Vec2, a, b int) edge {
	e := edge{
		a:    a,
		b:    b,
		top:  top,
		bot:  bot,
		xMin: min(top.X, bot.X),
		xMax: max(top.X, bot.X),
	}
	dy := bot.Y - top.Y
	if dy < horizontalEdgeThreshold {
		e.flat = true
	} else {
		e.dxdy = (bot.X - top.X) / dy
		e.dwdy = 1 / dy
	}
	return e
}

// start positions the edge at row y.
func (e *edge) start(y int) {
	e.y = y
	if e.flat {
		e.x, e.w = e.top.X, 1
		return
	}
	fy := float64(y)
	e.x = e.top.X + (fy-e.top.Y)*e.dxdy
	e.w = (e.bot.Y - fy) * e.dwdy
}

// next advances the edge by one row.
func (e *edge) next() {
	e.y++
	e.x += e.dxdy
	e.w -= e.dwdy
}

// sample returns the x-intercept and top weight at the current row.
// Rows outside the vertical extent of the edge give the nearest end point,
// and clamped is set.
func (e *edge) sample() (x, w float64, clamped bool) {
	fy := float64(e.y)
	switch {
	case fy < e.top.Y:
		return e.top.X, 1, true
	case fy > e.bot.Y:
		return e.bot.X, 0, true
	case e.flat:
		return e.top.X, 1, false
	}
	x = min(max(e.x, e.xMin), e.xMax)
	w = min(max(e.w, 0), 1)
	return x, w, false
}

// pixelIndex returns the index of the pixel containing the continuous
// coordinate x.  The result is limited to the range -1, ..., n so that
// far away coordinates do not overflow.
func pixelIndex(x float64, n int) int {
	if x < -1 {
		return -1
	}
	if x > float64(n) {
		return n
	}
	return int(math.Floor(x))
}
