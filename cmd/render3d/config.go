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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/render3d/testcases"
)

// Config describes a scene to render.
type Config struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Workers int         `json:"workers,omitempty"` // 0 means one per CPU
	Force   bool        `json:"force,omitempty"`   // allow more workers than CPUs
	PNG     string      `json:"png,omitempty"`     // optional image output
	Camera  CameraCfg   `json:"camera"`
	View    Transform   `json:"view"`
	Objects []ObjectCfg `json:"objects,omitempty"` // empty means the cube demo
}

// CameraCfg selects the projection.
type CameraCfg struct {
	Kind   string  `json:"kind"` // "perspective" or "orthographic"
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`
}

// Transform is an affine map given as scale, then rotation (in degrees,
// about x, then y, then z), then translation.
type Transform struct {
	Scale     [3]float64 `json:"scale,omitempty"` // zero components default to 1
	RotDeg    [3]float64 `json:"rotDeg,omitempty"`
	Translate [3]float64 `json:"translate,omitempty"`
}

// ObjectCfg places a mesh in the scene.
type ObjectCfg struct {
	Mesh      string    `json:"mesh"` // "cube" or "grid"
	Size      float64   `json:"size,omitempty"`
	Transform Transform `json:"transform"`
}

// DefaultConfig returns the configuration of the cube demo: a 150x50
// character screen showing six cubes.
func DefaultConfig() Config {
	p := testcases.DemoProjection
	return Config{
		Width:  150,
		Height: 50,
		Camera: CameraCfg{
			Kind: "perspective",
			Left: p.Left, Right: p.Right, Top: p.Top, Bottom: p.Bottom,
			Near: p.Near, Far: p.Far,
		},
		View: Transform{
			Scale:     [3]float64{0.5, 0.5, 0.5},
			Translate: [3]float64{0.7, 0.7, 0.9},
		},
	}
}

// LoadConfig reads a JSON configuration file.  Settings missing from the
// file keep their values from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var errInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for errors which would only show up
// during rendering.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", errInvalidConfig, c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d workers", errInvalidConfig, c.Workers)
	}
	switch c.Camera.Kind {
	case "perspective", "orthographic":
	default:
		return fmt.Errorf("%w: unknown camera kind %q", errInvalidConfig, c.Camera.Kind)
	}
	for i, o := range c.Objects {
		switch o.Mesh {
		case "cube", "grid":
		default:
			return fmt.Errorf("%w: object %d: unknown mesh %q", errInvalidConfig, i, o.Mesh)
		}
		if o.Size < 0 {
			return fmt.Errorf("%w: object %d: negative size %g", errInvalidConfig, i, o.Size)
		}
	}
	return nil
}

// Matrix returns the transformation as a 4x4 matrix.
func (t Transform) Matrix() mgl64.Mat4 {
	const k = math.Pi / 180
	s := t.Scale
	for i := range s {
		if s[i] == 0 {
			s[i] = 1
		}
	}
	m := mgl64.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2])
	m = m.Mul4(mgl64.HomogRotate3DZ(t.RotDeg[2] * k))
	m = m.Mul4(mgl64.HomogRotate3DY(t.RotDeg[1] * k))
	m = m.Mul4(mgl64.HomogRotate3DX(t.RotDeg[0] * k))
	return m.Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

// Build returns the mesh and world matrix of the object.
func (o ObjectCfg) Build() ([]testcases.Triangle, mgl64.Mat4) {
	size := o.Size
	if size == 0 {
		size = 0.5
	}
	var mesh []testcases.Triangle
	switch o.Mesh {
	case "grid":
		mesh = testcases.Grid(8, 8, -size, -size, size, size, func(x, y float64) float64 {
			return 0.2 * size * math.Sin(4*x/size) * math.Cos(4*y/size)
		})
	default:
		mesh = testcases.Cube(size / 2)
	}
	return mesh, o.Transform.Matrix()
}
