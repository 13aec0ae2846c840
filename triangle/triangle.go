// Package triangle describes the one-triangle scene and sets it up on a
// glw.Context.
package triangle

import (
	"fmt"
	"strings"

	"dasa.cc/hellotri/glw"
	"golang.org/x/image/math/f32"
)

// Config holds everything needed to build the scene. Values are fixed at
// startup and passed explicitly.
type Config struct {
	// Version is the GLSL version directive, e.g. "330 core".
	Version string

	// Precision is an optional default float precision for fragment shaders,
	// required by GLSL ES.
	Precision string

	Vertices [3]f32.Vec3
	Clear    f32.Vec4
	Fill     f32.Vec4
}

// Default returns the scene for desktop GL 3.3 core.
func Default() Config {
	return Config{
		Version: "330 core",
		Vertices: [3]f32.Vec3{
			{-0.5, -0.5, 0},
			{+0.5, -0.5, 0},
			{+0.0, +0.5, 0},
		},
		Clear: f32.Vec4{0.2, 0.3, 0.3, 1.0},
		Fill:  f32.Vec4{1.0, 0.5, 0.2, 1.0},
	}
}

// ES returns the scene for GLES 3.0.
func ES() Config {
	cfg := Default()
	cfg.Version = "300 es"
	cfg.Precision = "mediump"
	return cfg
}

// Floats flattens Vertices.
func (cfg Config) Floats() (v [9]float32) {
	for i, p := range cfg.Vertices {
		copy(v[3*i:], p[:])
	}
	return v
}

// VertSrc returns a vertex shader passing attribute 0 through as clip-space position.
func (cfg Config) VertSrc() glw.VertSrc {
	return glw.VertSrc(fmt.Sprintf(`#version %s
layout (location = 0) in vec3 aPos;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}`, cfg.Version))
}

// FragSrc returns a fragment shader shading solid Fill.
func (cfg Config) FragSrc() glw.FragSrc {
	var b strings.Builder
	fmt.Fprintf(&b, "#version %s\n", cfg.Version)
	if cfg.Precision != "" {
		fmt.Fprintf(&b, "precision %s float;\n", cfg.Precision)
	}
	c := cfg.Fill
	fmt.Fprintf(&b, `out vec4 FragColor;
void main()
{
	FragColor = vec4(%s, %s, %s, %s);
}`, lit(c[0]), lit(c[1]), lit(c[2]), lit(c[3]))
	return glw.FragSrc(b.String())
}

// lit formats x as a GLSL float literal.
func lit(x float32) string {
	s := fmt.Sprint(x)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Scene is the frame drawn each iteration plus ownership of its resources.
type Scene struct {
	glw.Frame
}

// Setup uploads cfg's vertices and builds vsrc and fsrc into a program.
//
// Build diagnostics are not fatal: the returned Scene is always usable for
// release and the error, if any, describes the failed shaders or link.
// Drawing such a scene reports glw.ErrProgramNotLinked.
func Setup(ctx glw.Context, cfg Config, vsrc glw.VertSrc, fsrc glw.FragSrc) (*Scene, error) {
	sc := &Scene{Frame: glw.Frame{Clear: cfg.Clear}}
	sc.Array = glw.Upload(ctx, cfg.Floats())
	prg, err := glw.Build(ctx, vsrc, fsrc)
	sc.Program = prg
	return sc, err
}

// Delete releases the program and vertex array.
func (sc *Scene) Delete() {
	sc.Program.Delete()
	sc.Array.Delete()
}
