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

// Command render3d renders a scene of triangle meshes into a character
// screen and prints it, framed, to standard output.  Each character shows
// the distance of the visible surface from the camera.
//
// Usage:
//
//	render3d [-config scene.json] [-width N] [-height N] [-workers N] [-force] [-png out.png] [-v]
//
// Without a configuration file, the cube demo is rendered.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/testcases"
)

func main() {
	configPath := flag.String("config", "", "JSON scene `file`")
	width := flag.Int("width", 0, "screen width in characters")
	height := flag.Int("height", 0, "screen height in characters")
	workers := flag.Int("workers", 0, "number of objects rendered concurrently (0: one per CPU)")
	force := flag.Bool("force", false, "allow more workers than CPUs")
	pngPath := flag.String("png", "", "also write the screen as a PNG `file`")
	verbose := flag.Bool("v", false, "log debug information to stderr")
	flag.Parse()

	if *verbose {
		render3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "render3d:", err)
			os.Exit(1)
		}
	}

	// explicitly given flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "workers":
			cfg.Workers = *workers
		case "force":
			cfg.Force = *force
		case "png":
			cfg.PNG = *pngPath
		}
	})

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "render3d:", err)
		os.Exit(1)
	}
}

// run renders the configured scene and prints it to w.
func run(cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	r := render3d.NewRasterizer[byte]()
	if cfg.Force {
		r.Workers.ForceCapacity(cfg.Workers)
	} else {
		r.Workers.SetCapacity(cfg.Workers)
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "Number of worker-threads: %d\n", r.Workers.Capacity())

	start := time.Now()
	screen, err := renderScreen(r, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total elapsed time: %s\n", time.Since(start))

	fmt.Fprint(out, "\n\n")
	printFrame(out, screen, cfg.Width, cfg.Height)
	if err := out.Flush(); err != nil {
		return err
	}

	if cfg.PNG != "" {
		return writePNG(cfg.PNG, screen, cfg.Width, cfg.Height)
	}
	return nil
}

// renderScreen draws the configured scene into a fresh character screen.
func renderScreen(r *render3d.Rasterizer[byte], cfg Config) ([]byte, error) {
	screen := []byte(strings.Repeat(".", cfg.Width*cfg.Height))
	if err := r.SetTarget(cfg.Width, cfg.Height, screen); err != nil {
		return nil, err
	}

	c := cfg.Camera
	var err error
	if c.Kind == "orthographic" {
		err = r.SetOrthographic(c.Left, c.Right, c.Top, c.Bottom, c.Near, c.Far)
	} else {
		err = r.SetPerspective(c.Left, c.Right, c.Top, c.Bottom, c.Near, c.Far)
	}
	if err != nil {
		return nil, err
	}

	scene := render3d.NewScene[byte]()
	scene.View = cfg.View.Matrix()
	if len(cfg.Objects) == 0 {
		for _, obj := range testcases.DemoObjects(6) {
			scene.Add(newObject(obj.Mesh, testcases.Identity(obj.World)))
		}
	} else {
		for _, oc := range cfg.Objects {
			mesh, world := oc.Build()
			scene.Add(newObject(mesh, world))
		}
	}

	if err := scene.Render(r); err != nil {
		return nil, err
	}
	return screen, nil
}

func newObject(mesh []testcases.Triangle, world mgl64.Mat4) *render3d.Object[byte] {
	tris := make([]render3d.Triangle[testcases.Vertex], len(mesh))
	for i, t := range mesh {
		tris[i] = render3d.Triangle[testcases.Vertex](t)
	}
	o := render3d.NewObject[testcases.Vertex, byte](tris, depthShader)
	o.World = world
	return o
}

// depthShader shows the distance from the camera in steps of 0.1 as a
// digit, wrapping around after 9.
func depthShader(v testcases.Vertex) byte {
	d := int(math.Floor((v.Z-1)*10 + 0.5))
	return byte('0' + (d%10+10)%10)
}

// printFrame writes the screen with a frame around it.
func printFrame(w io.Writer, screen []byte, width, height int) {
	border := "+" + strings.Repeat("-", width) + "+\n"
	io.WriteString(w, border)
	for y := range height {
		io.WriteString(w, "|")
		w.Write(screen[y*width : (y+1)*width])
		io.WriteString(w, "|\n")
	}
	io.WriteString(w, border)
}

// writePNG stores the screen as a grayscale image, with near surfaces
// shown bright and empty pixels black.
func writePNG(path string, screen []byte, width, height int) (err error) {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, c := range screen {
		var g uint8
		if c >= '0' && c <= '9' {
			g = 255 - (c-'0')*20
		}
		img.Pix[i] = g
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
