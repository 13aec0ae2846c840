// Package mobile adapts golang.org/x/mobile/gl.Context to glw.Context.
package mobile

import (
	"dasa.cc/hellotri/glw"
	"golang.org/x/mobile/gl"
)

// Context forwards calls to a GLES context.
type Context struct{ glctx gl.Context }

var _ glw.Context = Context{}

// New returns a Context backed by glctx, typically the DrawContext of a
// lifecycle.Event.
func New(glctx gl.Context) Context { return Context{glctx} }

func (c Context) CreateShader(typ glw.Enum) uint32 { return c.glctx.CreateShader(gl.Enum(typ)).Value }

func (c Context) ShaderSource(shader uint32, src string) {
	c.glctx.ShaderSource(gl.Shader{Value: shader}, src)
}

func (c Context) CompileShader(shader uint32) { c.glctx.CompileShader(gl.Shader{Value: shader}) }

func (c Context) GetShaderi(shader uint32, pname glw.Enum) int {
	return c.glctx.GetShaderi(gl.Shader{Value: shader}, gl.Enum(pname))
}

func (c Context) GetShaderInfoLog(shader uint32) string {
	return c.glctx.GetShaderInfoLog(gl.Shader{Value: shader})
}

func (c Context) DeleteShader(shader uint32) { c.glctx.DeleteShader(gl.Shader{Value: shader}) }

func (c Context) CreateProgram() uint32 { return c.glctx.CreateProgram().Value }

func (c Context) AttachShader(program, shader uint32) {
	c.glctx.AttachShader(prog(program), gl.Shader{Value: shader})
}

func (c Context) LinkProgram(program uint32) { c.glctx.LinkProgram(prog(program)) }

func (c Context) GetProgrami(program uint32, pname glw.Enum) int {
	return c.glctx.GetProgrami(prog(program), gl.Enum(pname))
}

func (c Context) GetProgramInfoLog(program uint32) string {
	return c.glctx.GetProgramInfoLog(prog(program))
}

func (c Context) UseProgram(program uint32)    { c.glctx.UseProgram(prog(program)) }
func (c Context) DeleteProgram(program uint32) { c.glctx.DeleteProgram(prog(program)) }

func (c Context) CreateBuffer() uint32 { return c.glctx.CreateBuffer().Value }

func (c Context) BindBuffer(target glw.Enum, buffer uint32) {
	c.glctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: buffer})
}

func (c Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	c.glctx.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (c Context) DeleteBuffer(buffer uint32) { c.glctx.DeleteBuffer(gl.Buffer{Value: buffer}) }

func (c Context) CreateVertexArray() uint32 { return c.glctx.CreateVertexArray().Value }

func (c Context) BindVertexArray(array uint32) {
	c.glctx.BindVertexArray(gl.VertexArray{Value: array})
}

func (c Context) DeleteVertexArray(array uint32) {
	c.glctx.DeleteVertexArray(gl.VertexArray{Value: array})
}

func (c Context) VertexAttribPointer(index uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	c.glctx.VertexAttribPointer(gl.Attrib{Value: uint(index)}, size, gl.Enum(typ), normalized, stride, offset)
}

func (c Context) EnableVertexAttribArray(index uint32) {
	c.glctx.EnableVertexAttribArray(gl.Attrib{Value: uint(index)})
}

func (c Context) Viewport(x, y, width, height int) { c.glctx.Viewport(x, y, width, height) }
func (c Context) ClearColor(r, g, b, a float32)    { c.glctx.ClearColor(r, g, b, a) }
func (c Context) Clear(mask glw.Enum)              { c.glctx.Clear(gl.Enum(mask)) }

func (c Context) DrawArrays(mode glw.Enum, first, count int) {
	c.glctx.DrawArrays(gl.Enum(mode), first, count)
}

// prog returns the x/mobile program value for name. Init is only false for
// the zero program.
func prog(name uint32) gl.Program { return gl.Program{Init: name != 0, Value: name} }
