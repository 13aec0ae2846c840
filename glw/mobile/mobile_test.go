package mobile

import (
	"testing"

	"dasa.cc/hellotri/glw"
	"golang.org/x/mobile/gl"
)

// glctx records the x/mobile calls made by glw.Upload and glw.Frame.Draw.
// Calls not overridden panic through the nil embedded interface.
type glctx struct {
	gl.Context
	next    uint32
	attrib  [6]interface{}
	data    []byte
	program gl.Program
	draw    [3]int
}

func (c *glctx) gen() uint32 { c.next++; return c.next }

func (c *glctx) CreateVertexArray() gl.VertexArray           { return gl.VertexArray{Value: c.gen()} }
func (c *glctx) BindVertexArray(gl.VertexArray)              {}
func (c *glctx) CreateBuffer() gl.Buffer                     { return gl.Buffer{Value: c.gen()} }
func (c *glctx) BindBuffer(gl.Enum, gl.Buffer)               {}
func (c *glctx) EnableVertexAttribArray(gl.Attrib)           {}
func (c *glctx) ClearColor(r, g, b, a float32)               {}
func (c *glctx) Clear(gl.Enum)                               {}
func (c *glctx) UseProgram(p gl.Program)                     { c.program = p }
func (c *glctx) BufferData(_ gl.Enum, src []byte, _ gl.Enum) { c.data = src }

func (c *glctx) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	c.attrib = [6]interface{}{dst.Value, size, ty, normalized, stride, offset}
}

func (c *glctx) DrawArrays(mode gl.Enum, first, count int) {
	c.draw = [3]int{int(mode), first, count}
}

func (c *glctx) CreateShader(ty gl.Enum) gl.Shader   { return gl.Shader{Value: c.gen()} }
func (c *glctx) ShaderSource(gl.Shader, string)      {}
func (c *glctx) CompileShader(gl.Shader)             {}
func (c *glctx) GetShaderi(gl.Shader, gl.Enum) int   { return 1 }
func (c *glctx) DeleteShader(gl.Shader)              {}
func (c *glctx) CreateProgram() gl.Program           { return gl.Program{Init: true, Value: c.gen()} }
func (c *glctx) AttachShader(gl.Program, gl.Shader)  {}
func (c *glctx) LinkProgram(gl.Program)              {}
func (c *glctx) GetProgrami(gl.Program, gl.Enum) int { return 1 }

func TestUploadLayout(t *testing.T) {
	c := &glctx{}
	va := glw.Upload(New(c), [9]float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0})

	want := [6]interface{}{uint(0), 3, gl.Enum(gl.FLOAT), false, 12, 0}
	if have := c.attrib; have != want {
		t.Fatalf("have %v, want %v.", have, want)
	}
	if have, want := len(c.data), 36; have != want {
		t.Fatalf("have %v bytes, want %v.", have, want)
	}
	if have, want := va.Count(), 3; have != want {
		t.Fatalf("have %v vertices, want %v.", have, want)
	}
}

func TestDraw(t *testing.T) {
	c := &glctx{}
	ctx := New(c)
	prg, err := glw.Build(ctx, "#version 300 es\nvoid main() {}", "#version 300 es\nvoid main() {}")
	if err != nil {
		t.Fatal(err)
	}
	f := glw.Frame{Program: prg, Array: glw.Upload(ctx, [9]float32{})}
	if err := f.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	if !c.program.Init || c.program.Value == 0 {
		t.Fatalf("have program %+v in use", c.program)
	}
	if have, want := c.draw, [3]int{gl.TRIANGLES, 0, 3}; have != want {
		t.Fatalf("have draw %v, want %v.", have, want)
	}
}

func TestEnumsMatch(t *testing.T) {
	tests := []struct {
		have glw.Enum
		want gl.Enum
	}{
		{glw.Triangles, gl.TRIANGLES},
		{glw.Float, gl.FLOAT},
		{glw.ColorBufferBit, gl.COLOR_BUFFER_BIT},
		{glw.ArrayBuffer, gl.ARRAY_BUFFER},
		{glw.StaticDraw, gl.STATIC_DRAW},
		{glw.DynamicDraw, gl.DYNAMIC_DRAW},
		{glw.FragmentShader, gl.FRAGMENT_SHADER},
		{glw.VertexShader, gl.VERTEX_SHADER},
		{glw.CompileStatus, gl.COMPILE_STATUS},
		{glw.LinkStatus, gl.LINK_STATUS},
	}
	for i, tt := range tests {
		if gl.Enum(tt.have) != tt.want {
			t.Errorf("tests[%v]: have %#x, want %#x.", i, tt.have, tt.want)
		}
	}
}
