// Package glwtest provides an in-memory glw.Context for tests.
package glwtest

import (
	"fmt"
	"math"
	"strings"

	"dasa.cc/hellotri/glw"
)

// Recorder is an in-memory glw.Context that records state and draw calls.
//
// Compiling is a crude syntax check that only knows about statement
// terminators: a statement inside a block without a trailing semicolon fails,
// as does a source without main.
type Recorder struct {
	next uint32

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32][]byte
	Arrays   map[uint32]bool

	CompileLog string // forces compile failure
	LinkLog    string // forces link failure

	Program uint32     // in use
	Array   uint32     // bound
	Buffer  uint32     // bound to ArrayBuffer
	Rect    [4]int     // viewport
	RGBA    [4]float32 // clear color
	Attribs map[uint32]glw.Attrib
	Enabled map[uint32]bool
	Draws   []Draw
	Calls   []string
}

type Shader struct {
	Kind     glw.Enum
	Src      string
	Compiled bool
	Log      string
}

type Program struct {
	Attached []uint32
	Linked   bool
	Log      string
}

// Draw is one recorded DrawArrays call and the state it saw.
type Draw struct {
	Mode         glw.Enum
	First, Count int
	Program      uint32
	Array        uint32
	Clear        [4]float32
}

var _ glw.Context = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		Shaders:  make(map[uint32]*Shader),
		Programs: make(map[uint32]*Program),
		Buffers:  make(map[uint32][]byte),
		Arrays:   make(map[uint32]bool),
		Attribs:  make(map[uint32]glw.Attrib),
		Enabled:  make(map[uint32]bool),
	}
}

func (r *Recorder) gen() uint32 { r.next++; return r.next }

func (r *Recorder) call(name string) { r.Calls = append(r.Calls, name) }

// Live returns the number of objects not yet deleted.
func (r *Recorder) Live() int {
	return len(r.Shaders) + len(r.Programs) + len(r.Buffers) + len(r.Arrays)
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) (n int) {
	for _, call := range r.Calls {
		if call == name {
			n++
		}
	}
	return n
}

// Floats decodes the little-endian contents of buffer.
func (r *Recorder) Floats(buffer uint32) []float32 {
	b := r.Buffers[buffer]
	out := make([]float32, len(b)/4)
	for i := range out {
		u := uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
		out[i] = math.Float32frombits(u)
	}
	return out
}

func (r *Recorder) CreateShader(typ glw.Enum) uint32 {
	name := r.gen()
	r.Shaders[name] = &Shader{Kind: typ}
	r.call("CreateShader")
	return name
}

func (r *Recorder) ShaderSource(shader uint32, src string) { r.Shaders[shader].Src = src }

func (r *Recorder) CompileShader(shader uint32) {
	r.call("CompileShader")
	shd := r.Shaders[shader]
	shd.Compiled, shd.Log = check(shd.Src)
	if r.CompileLog != "" {
		shd.Compiled, shd.Log = false, r.CompileLog
	}
}

func check(src string) (bool, string) {
	if !strings.Contains(src, "void main()") {
		return false, "0:1(1): error: no function main"
	}
	depth := 0
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case line == "{":
			depth++
		case line == "}":
			depth--
		case depth > 0 && !strings.HasSuffix(line, ";"):
			return false, fmt.Sprintf("0:%v(1): error: syntax error, unexpected end of statement", i+1)
		}
	}
	return true, ""
}

func (r *Recorder) GetShaderi(shader uint32, pname glw.Enum) int {
	if pname == glw.CompileStatus && r.Shaders[shader].Compiled {
		return 1
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string { return r.Shaders[shader].Log }

func (r *Recorder) DeleteShader(shader uint32) {
	r.call("DeleteShader")
	delete(r.Shaders, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	name := r.gen()
	r.Programs[name] = &Program{}
	r.call("CreateProgram")
	return name
}

func (r *Recorder) AttachShader(program, shader uint32) {
	prg := r.Programs[program]
	prg.Attached = append(prg.Attached, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.call("LinkProgram")
	prg := r.Programs[program]
	prg.Linked, prg.Log = r.LinkLog == "", r.LinkLog
	for _, name := range prg.Attached {
		if shd, ok := r.Shaders[name]; !ok || !shd.Compiled {
			prg.Linked, prg.Log = false, "error: linking with uncompiled shader"
		}
	}
}

func (r *Recorder) GetProgrami(program uint32, pname glw.Enum) int {
	if pname == glw.LinkStatus && r.Programs[program].Linked {
		return 1
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(program uint32) string { return r.Programs[program].Log }

func (r *Recorder) UseProgram(program uint32) {
	r.call("UseProgram")
	r.Program = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.call("DeleteProgram")
	delete(r.Programs, program)
}

func (r *Recorder) CreateBuffer() uint32 {
	name := r.gen()
	r.Buffers[name] = nil
	return name
}

func (r *Recorder) BindBuffer(target glw.Enum, buffer uint32) { r.Buffer = buffer }

func (r *Recorder) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	r.Buffers[r.Buffer] = append([]byte(nil), src...)
}

func (r *Recorder) DeleteBuffer(buffer uint32) { delete(r.Buffers, buffer) }

func (r *Recorder) CreateVertexArray() uint32 {
	name := r.gen()
	r.Arrays[name] = true
	return name
}

func (r *Recorder) BindVertexArray(array uint32)   { r.Array = array }
func (r *Recorder) DeleteVertexArray(array uint32) { delete(r.Arrays, array) }

func (r *Recorder) VertexAttribPointer(index uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	r.Attribs[index] = glw.Attrib{Index: index, Size: size, Type: typ, Normalized: normalized, Stride: stride, Offset: offset}
}

func (r *Recorder) EnableVertexAttribArray(index uint32) { r.Enabled[index] = true }

func (r *Recorder) Viewport(x, y, width, height int) { r.Rect = [4]int{x, y, width, height} }

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.RGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask glw.Enum) { r.call("Clear") }

func (r *Recorder) DrawArrays(mode glw.Enum, first, count int) {
	r.call("DrawArrays")
	r.Draws = append(r.Draws, Draw{mode, first, count, r.Program, r.Array, r.RGBA})
}
