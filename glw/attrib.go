package glw

// Attrib describes how one vertex attribute is read from the bound buffer.
type Attrib struct {
	Index      uint32
	Size       int // components per vertex
	Type       Enum
	Normalized bool
	Stride     int // bytes
	Offset     int // bytes
}

// Pointer enables the attribute and sets its layout.
func (a Attrib) Pointer(ctx Context) {
	ctx.EnableVertexAttribArray(a.Index)
	ctx.VertexAttribPointer(a.Index, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
}

// VertexArray owns a vertex array object, its float buffer and the layout of
// attribute slot 0.
type VertexArray struct {
	Floats FloatBuffer
	Attrib Attrib

	ctx  Context
	name uint32
}

// Create generates and binds the vertex array, then uploads data into a new
// buffer. Call StepSize to describe the layout.
func (va *VertexArray) Create(ctx Context, usage Enum, data []float32) {
	va.ctx = ctx
	va.name = ctx.CreateVertexArray()
	ctx.BindVertexArray(va.name)
	va.Floats.Create(ctx, usage, data)
}

// StepSize sets attribute slot 0 to size float components per vertex. A zero
// stride means tightly packed.
func (va *VertexArray) StepSize(size, stride, offset int) {
	if stride == 0 {
		stride = size * 4
	}
	va.Attrib = Attrib{Index: 0, Size: size, Type: Float, Stride: stride, Offset: offset}
	va.ctx.BindVertexArray(va.name)
	va.Floats.Bind()
	va.Attrib.Pointer(va.ctx)
}

// Count returns the number of vertices available for drawing.
func (va *VertexArray) Count() int {
	if va.Attrib.Stride == 0 {
		return 0
	}
	return (va.Floats.Len()*4 - va.Attrib.Offset) / va.Attrib.Stride
}

func (va *VertexArray) Name() uint32 { return va.name }
func (va *VertexArray) Bind()        { va.ctx.BindVertexArray(va.name) }
func (va *VertexArray) Unbind()      { va.ctx.BindVertexArray(0) }

// Draw issues one draw of all vertices with mode.
func (va *VertexArray) Draw(mode Enum) { va.ctx.DrawArrays(mode, 0, va.Count()) }

// Delete releases the vertex array and its buffer. Safe to call more than once.
func (va *VertexArray) Delete() {
	if va.name != 0 {
		va.ctx.DeleteVertexArray(va.name)
		va.name = 0
	}
	va.Floats.Delete()
}

// Upload copies nine floats, three vertices of x, y, z, into static storage
// and describes them at attribute slot 0.
func Upload(ctx Context, vertices [9]float32) *VertexArray {
	va := new(VertexArray)
	va.Create(ctx, StaticDraw, vertices[:])
	va.StepSize(3, 0, 0)
	return va
}
