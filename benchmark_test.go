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
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/render3d/testcases"
)

// BenchmarkTriangle measures a single triangle covering about 40% of the
// target.
func BenchmarkTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r, _ := newOrtho(b, size, size)
			v1, v2, v3 := vtx(-0.9, -0.8, 0), vtx(0.85, -0.3, 0), vtx(-0.2, 0.9, 0)
			shade := constant(255)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.ClearDepth()
				DrawTriangle(r, v1, v2, v3, shade)
			}
		})
	}
}

// BenchmarkVectorTriangle benchmarks x/image/vector filling the same
// triangle.
func BenchmarkVectorTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			s := float32(size-1) / 2
			px := func(x float32) float32 { return (x+1)*s + 0.5 }

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(px(-0.9), px(-0.8))
				r.LineTo(px(0.85), px(-0.3))
				r.LineTo(px(-0.2), px(0.9))
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkScene compares sequential and concurrent rendering of a scene
// with many small objects.
func BenchmarkScene(b *testing.B) {
	cases := testcases.All["scene"]
	i := slices.IndexFunc(cases, func(tc testcases.Case) bool { return tc.Name == "many_objects" })
	tc := cases[i]

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			buf := make([]byte, tc.Width*tc.Height)
			r := NewRasterizer[byte]()
			r.Workers.ForceCapacity(workers)

			b.ResetTimer()
			for b.Loop() {
				if err := RenderCase(r, tc, buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRenderAll measures steady-state performance by reusing a single
// Rasterizer across all test cases.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.Case
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	size := 0
	for _, tc := range cases {
		size = max(size, tc.Width*tc.Height)
	}
	buf := make([]byte, size)

	r := NewRasterizer[byte]()

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			if err := RenderCase(r, tc, buf); err != nil {
				b.Fatal(err)
			}
		}
	}
}
