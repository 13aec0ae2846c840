// Package glw wraps the handful of graphics calls needed to build a shader
// program, upload vertex data, and draw it.
//
// Calls go through Context so the same code runs against desktop GL
// (package glw/desktop) and GLES (package glw/mobile).
package glw

import (
	"fmt"
	"runtime"
	"strings"
)

// Enum is a GLenum. Values below are shared by desktop GL 3.3 core and GLES 3.0.
type Enum uint32

const (
	Triangles      Enum = 0x0004
	Float          Enum = 0x1406
	ColorBufferBit Enum = 0x4000
	ArrayBuffer    Enum = 0x8892
	StaticDraw     Enum = 0x88E4
	DynamicDraw    Enum = 0x88E8
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
)

// Context is the subset of a graphics context used by this package.
// Object names are plain uint32 values; zero is never a valid name.
//
// Method names and argument order follow golang.org/x/mobile/gl.Context.
type Context interface {
	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	CreateVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
}

// caller returns the file and line number of the first frame outside of this
// package on the calling goroutine's stack.
func caller() string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/hellotri/glw.") }
	)

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
	}

	return fmt.Sprintf("%s:%v", frame.File, frame.Line)
}
