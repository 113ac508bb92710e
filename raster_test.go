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
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"
)

func TestSetTarget(t *testing.T) {
	r := NewRasterizer[byte]()

	tests := []struct {
		name          string
		width, height int
		bufLen        int
	}{
		{"zero width", 0, 10, 100},
		{"negative height", 10, -1, 100},
		{"short buffer", 10, 10, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.SetTarget(tt.width, tt.height, make([]byte, tt.bufLen))
			if !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("got %v, want ErrInvalidTarget", err)
			}
		})
	}

	if err := r.SetTarget(7, 5, make([]byte, 40)); err != nil {
		t.Fatal(err)
	}
	if w, h := r.Size(); w != 7 || h != 5 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	depth := r.Depth()
	if len(depth) != 35 {
		t.Fatalf("depth buffer has %d entries, want 35", len(depth))
	}
	for i, d := range depth {
		if d != 1 {
			t.Fatalf("depth[%d] = %g, want 1", i, d)
		}
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 7, URy: 5}
	if r.Clip() != want {
		t.Errorf("Clip() = %v, want %v", r.Clip(), want)
	}
}

func TestDepthIsCopy(t *testing.T) {
	r := NewRasterizer[byte]()
	if err := r.SetTarget(2, 2, make([]byte, 4)); err != nil {
		t.Fatal(err)
	}
	d := r.Depth()
	d[0] = -5
	if r.DepthAt(0, 0) != 1 {
		t.Error("modifying the result of Depth changed the depth buffer")
	}
}

func TestClearDepth(t *testing.T) {
	r, buf := newOrtho(t, 10, 10)
	DrawTriangle(r, vtx(-1, -1, 0), vtx(1, -1, 0), vtx(0, 1, 0), constant(1))
	if r.DepthAt(5, 0) != 0 {
		t.Fatalf("depth at (5,0) is %g, want 0", r.DepthAt(5, 0))
	}

	r.ClearDepth()
	for i, d := range r.Depth() {
		if d != 1 {
			t.Fatalf("depth[%d] = %g after ClearDepth", i, d)
		}
	}
	if buf[5] != 1 {
		t.Error("ClearDepth modified the target")
	}
}

func TestProjectionErrors(t *testing.T) {
	r := NewRasterizer[byte]()
	nan := math.NaN()
	tests := []struct {
		name   string
		params [6]float64
	}{
		{"left=right", [6]float64{1, 1, -1, 1, 1, 2}},
		{"top=bottom", [6]float64{-1, 1, 0.5, 0.5, 1, 2}},
		{"near=far", [6]float64{-1, 1, -1, 1, 2, 2}},
		{"nan", [6]float64{-1, 1, -1, nan, 1, 2}},
		{"inf", [6]float64{-1, math.Inf(1), -1, 1, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.params
			if err := r.SetPerspective(p[0], p[1], p[2], p[3], p[4], p[5]); !errors.Is(err, ErrDegenerateProjection) {
				t.Errorf("SetPerspective: got %v", err)
			}
			if err := r.SetOrthographic(p[0], p[1], p[2], p[3], p[4], p[5]); !errors.Is(err, ErrDegenerateProjection) {
				t.Errorf("SetOrthographic: got %v", err)
			}
		})
	}
	if r.hasProj {
		t.Error("failed setter installed a projection")
	}
}

func TestPerspectiveMatrix(t *testing.T) {
	m, err := PerspectiveMatrix(-1, 1, -1, 1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 3, -4,
		0, 0, 1, 0,
	}
	if m != want {
		t.Errorf("got %v, want %v", m, want)
	}

	tests := []struct {
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}},
		{mgl64.Vec3{0, 0, 2}, mgl64.Vec3{0, 0, 1}},
		{mgl64.Vec3{1, -1, 1}, mgl64.Vec3{1, -1, -1}},
		{mgl64.Vec3{1, 1, 2}, mgl64.Vec3{0.5, 0.5, 1}},
	}
	for _, tt := range tests {
		got, ok := m.Apply(tt.in)
		if !ok || !got.ApproxEqual(tt.want) {
			t.Errorf("Apply(%v) = %v, %t, want %v", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := m.Apply(mgl64.Vec3{1, 1, 0}); ok {
		t.Error("point in the camera plane was projected")
	}
}

func TestOrthographicMatrix(t *testing.T) {
	m, err := OrthographicMatrix(-2, 2, -1, 1, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := Matrix4{
		0.5, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.5, -1,
		0, 0, 0, 1,
	}
	if m != want {
		t.Errorf("got %v, want %v", m, want)
	}

	got, ok := m.Apply(mgl64.Vec3{2, -1, 4})
	if !ok || !got.ApproxEqual(mgl64.Vec3{1, -1, 1}) {
		t.Errorf("Apply gave %v, %t", got, ok)
	}
}

func TestMatrix4Mat4(t *testing.T) {
	m, err := PerspectiveMatrix(-1, 2, -0.5, 1.5, 0.5, 3)
	if err != nil {
		t.Fatal(err)
	}
	p := mgl64.Vec3{0.3, -0.7, 1.9}

	h := m.Mat4().Mul4x1(p.Vec4(1))
	want := h.Vec3().Mul(1 / h[3])
	got, ok := m.Apply(p)
	if !ok || !got.ApproxEqual(want) {
		t.Errorf("Apply(%v) = %v, want %v", p, got, want)
	}
}

func TestViewport(t *testing.T) {
	m := viewportMatrix(10, 5)
	tests := []struct {
		x, y   float64
		px, py float64
	}{
		{-1, -1, 0, 0},
		{1, 1, 9, 4},
		{0, 0, 4.5, 2},
	}
	for _, tt := range tests {
		p := toPixel(m, mgl64.Vec3{tt.x, tt.y, 0})
		if p.X != tt.px || p.Y != tt.py {
			t.Errorf("toPixel(%g, %g) = %v, want (%g, %g)", tt.x, tt.y, p, tt.px, tt.py)
		}
	}
}

func TestDepthAtOutside(t *testing.T) {
	r := NewRasterizer[byte]()
	if err := r.SetTarget(3, 2, make([]byte, 6)); err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("DepthAt(%d, %d) did not panic", p[0], p[1])
				}
			}()
			r.DepthAt(p[0], p[1])
		}()
	}
	if d := r.DepthAt(2, 1); d != 1 {
		t.Errorf("DepthAt(2, 1) = %g, want 1", d)
	}
}
