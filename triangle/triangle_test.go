package triangle

import (
	"errors"
	"strings"
	"testing"

	"dasa.cc/hellotri/glw"
	"dasa.cc/hellotri/glw/glwtest"
)

func TestFloats(t *testing.T) {
	want := [9]float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}
	if have := Default().Floats(); have != want {
		t.Fatalf("have %v, want %v.", have, want)
	}
}

func TestSources(t *testing.T) {
	tests := []struct {
		cfg     Config
		version string
		prec    bool
	}{
		{Default(), "#version 330 core\n", false},
		{ES(), "#version 300 es\n", true},
	}
	for i, tt := range tests {
		vs, fs := string(tt.cfg.VertSrc()), string(tt.cfg.FragSrc())
		if !strings.HasPrefix(vs, tt.version) || !strings.HasPrefix(fs, tt.version) {
			t.Errorf("tests[%v]: sources missing %q", i, tt.version)
		}
		if !strings.Contains(vs, "layout (location = 0) in vec3 aPos;") {
			t.Errorf("tests[%v]: vertex shader does not read slot 0:\n%s", i, vs)
		}
		if have, want := strings.Contains(fs, "precision mediump float;"), tt.prec; have != want {
			t.Errorf("tests[%v]: have precision %v, want %v.", i, have, want)
		}
		if !strings.Contains(fs, "FragColor = vec4(1.0, 0.5, 0.2, 1.0);") {
			t.Errorf("tests[%v]: fragment shader does not shade fill color:\n%s", i, fs)
		}
	}
}

func TestLit(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{0.2, "0.2"},
		{-3, "-3.0"},
		{1e-7, "1e-07"},
	}
	for _, tt := range tests {
		if have := lit(tt.in); have != tt.want {
			t.Errorf("lit(%v): have %q, want %q.", tt.in, have, tt.want)
		}
	}
}

func TestSetup(t *testing.T) {
	ctx := glwtest.NewRecorder()
	cfg := Default()
	sc, err := Setup(ctx, cfg, cfg.VertSrc(), cfg.FragSrc())
	if err != nil {
		t.Fatal(err)
	}
	if have, want := sc.Program.Status(), glw.Linked; have != want {
		t.Fatalf("have %v, want %v.", have, want)
	}
	if err := sc.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	d := ctx.Draws[0]
	if have, want := d.Clear, [4]float32{0.2, 0.3, 0.3, 1.0}; have != want {
		t.Fatalf("have clear %v, want %v.", have, want)
	}
	if d.Mode != glw.Triangles || d.Count != 3 {
		t.Fatalf("have draw %+v", d)
	}
	if have, want := ctx.Floats(sc.Array.Floats.Name()), cfg.Floats(); len(have) != 9 || [9]float32(have) != want {
		t.Fatalf("have vertices %v, want %v.", have, want)
	}

	sc.Delete()
	if have := ctx.Live(); have != 0 {
		t.Fatalf("have %v live objects after Delete, want 0.", have)
	}
}

func TestSetupMalformed(t *testing.T) {
	ctx := glwtest.NewRecorder()
	cfg := Default()
	bad := glw.FragSrc(strings.Replace(string(cfg.FragSrc()), ");", ")", 1))

	sc, err := Setup(ctx, cfg, cfg.VertSrc(), bad)
	var berr *glw.BuildError
	if !errors.As(err, &berr) || berr.Stage != "FragmentShader" || berr.Log == "" {
		t.Fatalf("have err %v, want FragmentShader diagnostics", err)
	}
	if sc == nil || sc.Array == nil {
		t.Fatal("Setup did not return scene on build failure")
	}
	if err := sc.Draw(ctx); !errors.Is(err, glw.ErrProgramNotLinked) {
		t.Fatalf("have %v, want ErrProgramNotLinked", err)
	}
	sc.Delete()
	if have := ctx.Live(); have != 0 {
		t.Fatalf("have %v live objects after Delete, want 0.", have)
	}
}
