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
	"iter"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// Scene is an ordered collection of objects viewed through one camera.
type Scene[T any] struct {
	// View maps world coordinates to view coordinates.
	// NewScene initialises this to the identity.
	View mgl64.Mat4

	objects   []*Object[T]
	completed atomic.Int64
}

// NewScene returns an empty scene.
func NewScene[T any]() *Scene[T] {
	return &Scene[T]{
		View: mgl64.Ident4(),
	}
}

// Add appends an object to the scene.
func (s *Scene[T]) Add(o *Object[T]) {
	s.objects = append(s.objects, o)
}

// Len returns the number of objects in the scene.
func (s *Scene[T]) Len() int {
	return len(s.objects)
}

// Object returns the i-th object of the scene.
func (s *Scene[T]) Object(i int) *Object[T] {
	return s.objects[i]
}

// All iterates over the objects of the scene in insertion order.
func (s *Scene[T]) All() iter.Seq2[int, *Object[T]] {
	return func(yield func(int, *Object[T]) bool) {
		for i, o := range s.objects {
			if !yield(i, o) {
				return
			}
		}
	}
}

// Completed returns the number of objects finished during the most recent
// call to Render.
func (s *Scene[T]) Completed() int {
	return int(s.completed.Load())
}

// Render draws all objects of the scene into the target of r.
//
// If r.Workers is nil or has capacity 1, objects are drawn one after another
// on the calling goroutine, in insertion order.  Otherwise each object is
// drawn on its own goroutine, with at most r.Workers.Capacity() objects in
// progress at any time; the depth test then decides visibility regardless
// of the order in which objects finish.  Render returns after all objects
// have been drawn.
//
// A panic in a shader is recovered and reported as an error wrapping
// [ErrShader].  The remaining objects are still drawn.  The View and World
// matrices must not be changed while Render is running.
func (s *Scene[T]) Render(r *Rasterizer[T]) error {
	if err := r.ready(); err != nil {
		return err
	}

	s.completed.Store(0)
	start := time.Now()

	workers := 1
	if r.Workers != nil {
		workers = r.Workers.Capacity()
	}
	var err error
	if workers <= 1 || len(s.objects) <= 1 {
		err = s.renderSequential(r)
	} else {
		err = s.renderConcurrent(r)
	}

	Logger().Debug("scene rendered",
		"objects", len(s.objects),
		"concurrent", workers > 1 && len(s.objects) > 1,
		"workers", workers,
		"elapsed", time.Since(start))

	if err != nil {
		return err
	}
	if n := s.Completed(); n != len(s.objects) {
		return fmt.Errorf("render: %d of %d objects completed", n, len(s.objects))
	}
	return nil
}

func (s *Scene[T]) renderSequential(r *Rasterizer[T]) error {
	var firstErr error
	for i, o := range s.objects {
		if err := s.renderObject(r, i, o); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Scene[T]) renderConcurrent(r *Rasterizer[T]) error {
	var g errgroup.Group
	for i, o := range s.objects {
		r.Workers.Acquire()
		g.Go(func() error {
			defer r.Workers.Release()
			return s.renderObject(r, i, o)
		})
	}
	return g.Wait()
}

// renderObject draws one object and counts it as completed.
// Panics raised while drawing are returned as errors.
func (s *Scene[T]) renderObject(r *Rasterizer[T], i int, o *Object[T]) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("object %d: %w: %v", i, ErrShader, p)
		}
		s.completed.Add(1)
	}()

	o.Render(r, s.View)
	return nil
}
