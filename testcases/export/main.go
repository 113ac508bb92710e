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

// Command export writes test case definitions to JSON, for use by external
// reference renderers.
// Run from the render3d module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/render3d/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Projection jsonProjection `json:"projection"`
	View       [16]float64    `json:"view"` // column-major
	Objects    []jsonObject   `json:"objects"`
}

type jsonProjection struct {
	Kind   string  `json:"kind"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`
}

type jsonObject struct {
	World     [16]float64     `json:"world"` // column-major
	Gray      uint8           `json:"gray"`
	Triangles [][3][3]float64 `json:"triangles"`
}

func toJSON(category string, tc testcases.Case) jsonTestCase {
	p := tc.Projection
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Projection: jsonProjection{
			Kind:   p.Kind.String(),
			Left:   p.Left,
			Right:  p.Right,
			Top:    p.Top,
			Bottom: p.Bottom,
			Near:   p.Near,
			Far:    p.Far,
		},
		View: testcases.Identity(tc.View),
	}

	for _, obj := range tc.Objects {
		jobj := jsonObject{
			World:     testcases.Identity(obj.World),
			Gray:      obj.Gray,
			Triangles: make([][3][3]float64, len(obj.Mesh)),
		}
		for i, tri := range obj.Mesh {
			for k, v := range tri {
				jobj.Triangles[i][k] = [3]float64{v.X, v.Y, v.Z}
			}
		}
		jtc.Objects = append(jtc.Objects, jobj)
	}
	return jtc
}
