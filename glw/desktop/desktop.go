// Package desktop implements glw.Context with OpenGL 3.3 core.
package desktop

import (
	"fmt"
	"strings"
	"unsafe"

	"dasa.cc/hellotri/glw"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Context issues calls to the GL context current on the calling thread.
type Context struct{}

var _ glw.Context = Context{}

// Load resolves GL entry points with resolve, e.g. glfw.GetProcAddress.
// A context must be current on the calling thread.
func Load(resolve func(name string) unsafe.Pointer) (Context, error) {
	if err := gl.InitWithProcAddrFunc(resolve); err != nil {
		return Context{}, fmt.Errorf("desktop: load gl: %w", err)
	}
	return Context{}, nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (Context) CreateShader(typ glw.Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (Context) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Context) GetShaderi(shader uint32, pname glw.Enum) int {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return int(v)
}

func (Context) GetShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	msg := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &msg[0])
	return strings.TrimRight(string(msg), "\x00")
}

func (Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Context) CreateProgram() uint32               { return gl.CreateProgram() }
func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Context) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (Context) GetProgrami(program uint32, pname glw.Enum) int {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (Context) GetProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	msg := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &msg[0])
	return strings.TrimRight(string(msg), "\x00")
}

func (Context) UseProgram(program uint32)    { gl.UseProgram(program) }
func (Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Context) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Context) BindBuffer(target glw.Enum, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	var ptr unsafe.Pointer
	if len(src) > 0 {
		ptr = gl.Ptr(src)
	}
	gl.BufferData(uint32(target), len(src), ptr, uint32(usage))
}

func (Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Context) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Context) BindVertexArray(array uint32)   { gl.BindVertexArray(array) }
func (Context) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (Context) VertexAttribPointer(index uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Context) Clear(mask glw.Enum)           { gl.Clear(uint32(mask)) }

func (Context) DrawArrays(mode glw.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
