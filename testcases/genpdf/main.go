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

// Command genpdf generates reference images for the rasterizer tests.
// It draws the projected triangles of each test case into a PDF, far
// triangles first, and renders the PDFs to PNGs using Ghostscript.
package main

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/testcases"
)

const refDir = "testdata/reference"

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// face is a projected triangle, ready for painting.
type face struct {
	outline path.Path // in pixel coordinates, y pointing down
	depth   float64   // mean depth of the corners
	gray    uint8
}

func generatePDF(tc testcases.Case, pdfPath string) error {
	faces, err := projectFaces(tc)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, matching the zero-initialised target buffer.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; pixel rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for _, f := range faces {
		page.SetFillColor(color.DeviceGray(float64(f.gray) / 255))
		for cmd, pts := range f.outline {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// projectFaces maps all triangles of the test case to pixel coordinates
// and sorts them from far to near.  Triangles which the rasterizer would
// skip or which lie entirely beyond the far plane are left out.
func projectFaces(tc testcases.Case) ([]face, error) {
	p := tc.Projection
	var proj render3d.Matrix4
	var err error
	switch p.Kind {
	case testcases.Perspective:
		proj, err = render3d.PerspectiveMatrix(p.Left, p.Right, p.Top, p.Bottom, p.Near, p.Far)
	default:
		proj, err = render3d.OrthographicMatrix(p.Left, p.Right, p.Top, p.Bottom, p.Near, p.Far)
	}
	if err != nil {
		return nil, err
	}

	// Pixel centres sit at integer coordinates in the rasterizer, and at
	// half-integer coordinates on the PDF page.
	sx := float64(tc.Width-1) / 2
	sy := float64(tc.Height-1) / 2
	toPage := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: (x+1)*sx + 0.5, Y: (y+1)*sy + 0.5}
	}

	var faces []face
	view := testcases.Identity(tc.View)
	for _, obj := range tc.Objects {
		modelView := view.Mul4(testcases.Identity(obj.World))
	triangles:
		for _, tri := range obj.Mesh {
			var corners [3]vec.Vec2
			var depth float64
			nearest := math.Inf(1)
			for k, v := range tri {
				q := modelView.Mul4x1(v.Position().Vec4(1)).Vec3()
				ndc, ok := proj.Apply(q)
				if !ok {
					continue triangles
				}
				corners[k] = toPage(ndc[0], ndc[1])
				depth += ndc[2] / 3
				nearest = min(nearest, ndc[2])
			}
			if nearest > 1 {
				continue
			}
			d1 := corners[1].Sub(corners[0])
			d2 := corners[2].Sub(corners[0])
			if math.Abs(d1.X*d2.Y-d1.Y*d2.X) < 1e-12 {
				continue
			}

			faces = append(faces, face{outline: trianglePath(corners), depth: depth, gray: obj.Gray})
		}
	}

	// Far faces first.  Among faces of equal depth, later ones are painted
	// on top, as in the rasterizer.
	slices.SortStableFunc(faces, func(a, b face) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return faces, nil
}

// trianglePath returns the closed outline of a triangle.
func trianglePath(corners [3]vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{corners[0]}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{corners[1]}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{corners[2]}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, as in the rasterizer
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
