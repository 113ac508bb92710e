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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/render3d/testcases"
)

func TestAgainstReference(t *testing.T) {
	// Test each case in both scene modes:
	// - "seq": objects drawn one after another on the test goroutine
	// - "par": objects drawn concurrently, four at a time
	modes := []struct {
		name    string
		workers int
	}{
		{"seq", 1},
		{"par", 4},
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			baseName := category + "_" + tc.Name
			for _, mode := range modes {
				name := baseName + "_" + mode.name
				workers := mode.workers
				t.Run(name, func(t *testing.T) {
					// load reference image
					refPath := filepath.Join("testdata", "reference", baseName+".png")
					ref, err := loadGray(refPath)
					if errors.Is(err, fs.ErrNotExist) {
						t.Skip("reference image missing, run go generate")
					} else if err != nil {
						t.Fatalf("loading reference: %v", err)
					}

					// allocate output buffer
					w, h := tc.Width, tc.Height
					actual := make([]byte, w*h)

					r := NewRasterizer[byte]()
					r.Workers.ForceCapacity(workers)
					if err := RenderCase(r, tc, actual); err != nil {
						t.Fatal(err)
					}

					// compare
					if err := compareImages(name, ref, actual, w, h); err != nil {
						t.Error(err)
					}
				})
			}
		}
	}
}

// TestRenderCases checks properties of the test cases which hold without
// reference images.
func TestRenderCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				buf := make([]byte, tc.Width*tc.Height)
				r := NewRasterizer[byte]()
				r.Workers.ForceCapacity(1)
				if err := RenderCase(r, tc, buf); err != nil {
					t.Fatal(err)
				}

				grays := map[byte]bool{0: true}
				for _, obj := range tc.Objects {
					grays[obj.Gray] = true
				}
				for i, c := range buf {
					if !grays[c] {
						t.Fatalf("pixel %d has gray level %d, which no object uses", i, c)
					}
				}

				empty := !bytes.ContainsFunc(buf, func(c rune) bool { return c != 0 })
				if category == "degenerate" && !empty {
					t.Error("degenerate case drew pixels")
				} else if category != "degenerate" && empty {
					t.Error("nothing was drawn")
				}

				for i, d := range r.Depth() {
					if d > 1+depthEpsilon || math.IsNaN(d) {
						t.Fatalf("depth[%d] = %g", i, d)
					}
				}
			})
		}
	}
}

func TestRenderCaseInvalid(t *testing.T) {
	tc := testcases.Case{Name: "broken", Width: 4, Height: 4}
	r := NewRasterizer[byte]()
	err := RenderCase(r, tc, make([]byte, 16))
	if !errors.Is(err, ErrDegenerateProjection) {
		t.Errorf("got %v, want ErrDegenerateProjection", err)
	}

	tc.Width = 0
	err = RenderCase(r, tc, nil)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("got %v, want ErrInvalidTarget", err)
	}
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts small differences along triangle edges, where the
// reference renderer and the rasterizer may disagree on which pixels are
// covered.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	if len(expected) != total {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), total)
	}

	diffs := make([]int, total)
	for i := range total {
		e, a := int(expected[i]), int(actual[i])
		diff := e - a
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p90 := diffs[int(math.Round(0.90*float64(total-1)))]
	p98 := diffs[int(math.Round(0.98*float64(total-1)))]

	// - at least 90% of pixels are identical
	// - at least 98% of differences are < 64
	var failures []string
	if p90 > 0 {
		failures = append(failures, fmt.Sprintf("90th percentile diff is %d (want 0)", p90))
	}
	if p98 >= 64 {
		failures = append(failures, fmt.Sprintf("98th percentile diff is %d (want <64)", p98))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// 3 panels: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green: too dark, red: too bright
			diff := int(expected[i]) - int(actual[i])
			diffColor := color.RGBA{A: 255}
			if diff > 0 {
				diffColor.G = uint8(diff)
			} else if diff < 0 {
				diffColor.R = uint8(-diff)
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestLicenseHeader checks that every Go file starts with the license
// header, followed by exactly one blank line.
func TestLicenseHeader(t *testing.T) {
	const first = "// seehuhn.de/go/render3d - a software 3D rasteriser"
	err := filepath.WalkDir(".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".") || d.Name() == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) != ".go" {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		lines := strings.SplitN(string(data), "\n", 19)
		switch {
		case len(lines) < 18 || lines[0] != first:
			t.Errorf("%s: missing license header", p)
		case !strings.HasSuffix(lines[14], "<https://www.gnu.org/licenses/>."):
			t.Errorf("%s: license header has the wrong length", p)
		case lines[15] != "" || lines[16] == "":
			t.Errorf("%s: want exactly one blank line after the license header", p)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
