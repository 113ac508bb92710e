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
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/render3d/gate"
)

func TestSetLogger(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	if Logger() != l {
		t.Error("Logger() does not return the installed logger")
	}
	if gate.Logger() != l {
		t.Error("logger was not forwarded to the gate package")
	}

	r, _ := newOrtho(t, 8, 8)
	r.Workers.ForceCapacity(1)
	s := NewScene[byte]()
	s.Add(NewObject(coveringMesh(0), constant(1)))
	if err := s.Render(r); err != nil {
		t.Fatal(err)
	}

	msg := out.String()
	for _, want := range []string{"level=DEBUG", "scene rendered", "objects=1", "concurrent=false"} {
		if !strings.Contains(msg, want) {
			t.Errorf("log output %q does not contain %q", msg, want)
		}
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
	if gate.Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default gate logger is enabled")
	}
}
