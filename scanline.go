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
	"sync"
)

// numShards is the number of mutexes guarding the target and depth buffers.
// It must be a power of two.
const numShards = 4096

// shardLocks guards pixels in shards.  Pixel idx always maps to the same
// mutex, so that the depth test and the following writes to the depth and
// target buffers are atomic.
type shardLocks struct{ mu [numShards]sync.Mutex }

func (sl *shardLocks) lock(idx int)   { sl.mu[idx&(numShards-1)].Lock() }
func (sl *shardLocks) unlock(idx int) { sl.mu[idx&(numShards-1)].Unlock() }

// span is one end of a scanline.
type span[V any] struct {
	x float64 // continuous pixel coordinate
	v V       // corrected vertex
	z float64 // depth in normalised device coordinates
}

// scanline shades the pixels first, ..., last of row y which lie inside
// the clip rectangle.  The vertex and depth at each pixel are interpolated
// between the two ends of the span, based on the pixel centre.
func scanline[V any, T any](r *Rasterizer[T], y, first, last int, left, right span[V],
	shade Shader[V, T], interp Interpolator[V], correct Corrector[V]) {
	if y < r.clipY0 || y >= r.clipY1 {
		return
	}
	first = max(first, r.clipX0)
	last = min(last, r.clipX1-1)
	if first > last {
		return
	}

	// weight of the left end at pixel x: w(x) = (right.x - x) * step
	var step, w float64
	if dx := right.x - left.x; dx > spanThreshold {
		step = 1 / dx
		w = (right.x - float64(first)) * step
	} else {
		w = 1
	}

	row := y * r.width
	for x := first; x <= last; x++ {
		wc := min(max(w, 0), 1)
		plot(r, row+x, wc, &left, &right, shade, interp, correct)
		w -= step
	}
}

// plot runs the depth test for one pixel and, if the test passes, stores
// the depth and the shaded value.  The vertex is only interpolated and
// shaded for pixels which pass.
func plot[V any, T any](r *Rasterizer[T], idx int, w float64, left, right *span[V],
	shade Shader[V, T], interp Interpolator[V], correct Corrector[V]) {
	z := Lerp(left.z, right.z, w)
	if math.IsNaN(z) {
		return
	}

	r.locks.lock(idx)
	defer r.locks.unlock(idx)

	if z > r.depth[idx]+depthEpsilon {
		return
	}
	p := interp(left.v, right.v, w)
	if correct != nil {
		correct(&p)
	}
	r.target[idx] = shade(p)
	r.depth[idx] = z
}
