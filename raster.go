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
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/render3d/gate"
)

var (
	// ErrInvalidTarget is returned by SetTarget for non-positive dimensions
	// or a buffer which is too short.
	ErrInvalidTarget = errors.New("invalid render target")

	// ErrDegenerateProjection is returned when a projection would divide by
	// zero or has non-finite parameters.
	ErrDegenerateProjection = errors.New("degenerate projection")

	// ErrNoTarget is returned when rendering before SetTarget was called.
	ErrNoTarget = errors.New("no render target set")

	// ErrNoProjection is returned when rendering before a projection was
	// set.
	ErrNoProjection = errors.New("no projection set")

	// ErrShader is returned when a shader panics during a render pass.
	ErrShader = errors.New("shader failed")
)

// Rasterizer draws triangles into a caller-owned target buffer, using a
// depth buffer to resolve visibility.
//
// Configure the rasterizer with SetTarget and one of the projection setters,
// then submit triangles with [DrawTriangle] or [DrawTriangleFunc], or
// render a whole [Scene].  Drawing triangles is safe for concurrent use;
// updates to a pixel and its depth value happen atomically.  The setters
// must not be called while triangles are being drawn.
type Rasterizer[T any] struct {
	// Workers limits how many scene objects are rendered concurrently.
	// A capacity of 1 renders scenes sequentially on the calling goroutine.
	Workers *gate.Gate

	proj    Matrix4
	hasProj bool

	width, height int
	target        []T
	depth         []float64

	viewport matrix.Matrix

	// clip is the scissor rectangle in pixel coordinates.  Only pixels
	// with clipX0 <= x < clipX1 and clipY0 <= y < clipY1 are drawn.
	clip           rect.Rect
	clipX0, clipX1 int
	clipY0, clipY1 int

	locks shardLocks
}

// NewRasterizer returns a Rasterizer without target or projection.
// The worker gate admits as many objects as there are logical CPUs.
func NewRasterizer[T any]() *Rasterizer[T] {
	return &Rasterizer[T]{
		Workers: gate.New(0),
	}
}

// SetTarget sets the buffer which receives the shaded pixels.
// The buffer holds the rows of the image from top to bottom, each row from
// left to right.  Only the first width*height elements are used.
//
// SetTarget allocates a fresh depth buffer with all entries set to 1.
func (r *Rasterizer[T]) SetTarget(width, height int, buf []T) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidTarget, width, height)
	}
	if len(buf) < width*height {
		return fmt.Errorf("%w: buffer has %d elements, need %d",
			ErrInvalidTarget, len(buf), width*height)
	}

	r.width = width
	r.height = height
	r.target = buf[:width*height]
	r.depth = make([]float64, width*height)
	r.ClearDepth()

	r.viewport = viewportMatrix(width, height)
	r.SetClip(rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(width),
		URy: float64(height),
	})
	return nil
}

// SetClip restricts drawing to the pixels inside c.  Pixel (x, y) covers
// the unit square with lower left corner (x, y), and is drawn if this
// square lies inside c.  The rectangle is reduced to the target area.
// SetTarget resets the clip rectangle to the whole target.
func (r *Rasterizer[T]) SetClip(c rect.Rect) {
	x0 := min(max(int(math.Ceil(c.LLx)), 0), r.width)
	x1 := min(max(int(math.Floor(c.URx)), x0), r.width)
	y0 := min(max(int(math.Ceil(c.LLy)), 0), r.height)
	y1 := min(max(int(math.Floor(c.URy)), y0), r.height)

	r.clipX0, r.clipX1 = x0, x1
	r.clipY0, r.clipY1 = y0, y1
	r.clip = rect.Rect{
		LLx: float64(x0),
		LLy: float64(y0),
		URx: float64(x1),
		URy: float64(y1),
	}
}

// SetPerspective sets a perspective projection.
// See [PerspectiveMatrix] for the meaning of the parameters.
func (r *Rasterizer[T]) SetPerspective(left, right, top, bottom, near, far float64) error {
	m, err := PerspectiveMatrix(left, right, top, bottom, near, far)
	if err != nil {
		return err
	}
	r.SetProjection(m)
	return nil
}

// SetOrthographic sets a parallel projection.
// See [OrthographicMatrix] for the meaning of the parameters.
func (r *Rasterizer[T]) SetOrthographic(left, right, top, bottom, near, far float64) error {
	m, err := OrthographicMatrix(left, right, top, bottom, near, far)
	if err != nil {
		return err
	}
	r.SetProjection(m)
	return nil
}

// SetProjection sets an arbitrary projection matrix.
func (r *Rasterizer[T]) SetProjection(m Matrix4) {
	r.proj = m
	r.hasProj = true
}

// Projection returns the current projection matrix.
func (r *Rasterizer[T]) Projection() Matrix4 {
	return r.proj
}

// Size returns the dimensions of the current target.
func (r *Rasterizer[T]) Size() (width, height int) {
	return r.width, r.height
}

// Clip returns the rectangle of pixels which may be drawn, after
// reduction to the target area and to whole pixels.
func (r *Rasterizer[T]) Clip() rect.Rect {
	return r.clip
}

// Depth returns a copy of the depth buffer.
func (r *Rasterizer[T]) Depth() []float64 {
	return slices.Clone(r.depth)
}

// DepthAt returns the depth value stored for the given pixel.
// DepthAt panics if the pixel lies outside the target.
func (r *Rasterizer[T]) DepthAt(x, y int) float64 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		panic(fmt.Sprintf("render3d: pixel (%d,%d) outside %dx%d target",
			x, y, r.width, r.height))
	}
	return r.depth[y*r.width+x]
}

// ClearDepth resets all depth values to 1, the far end of the depth range,
// without reallocating the buffer.  Call this between frames which reuse
// the same target.
func (r *Rasterizer[T]) ClearDepth() {
	for i := range r.depth {
		r.depth[i] = 1
	}
}

// ready checks that the rasterizer has been configured for drawing.
func (r *Rasterizer[T]) ready() error {
	if r.target == nil {
		return ErrNoTarget
	}
	if !r.hasProj {
		return ErrNoProjection
	}
	return nil
}

// Numerical tolerances for the rasterizer.
const (
	// depthEpsilon is the tolerance of the depth test.  A fragment passes
	// if its depth does not exceed the stored depth by more than this,
	// so that the most recent of two equally deep fragments wins.
	depthEpsilon = 1e-8

	// degenerateAreaThreshold is the minimum value of the cross product of
	// two triangle edges, in square pixels.  Triangles below this are
	// treated as having zero area and are skipped.
	degenerateAreaThreshold = 1e-12

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// in pixels.  Shorter edges are treated as horizontal.
	horizontalEdgeThreshold = 1e-10

	// spanThreshold is the minimum horizontal extent of a scanline span
	// for which weights are interpolated.  Narrower spans use the left
	// end point throughout.
	spanThreshold = 1e-10
)
