package glw

import "math"

// FloatBuffer is an array buffer of float32 values.
type FloatBuffer struct {
	ctx   Context
	name  uint32
	bin   []byte
	count int
	usage Enum
}

// Create generates the buffer, binds it to ArrayBuffer and uploads data.
func (buf *FloatBuffer) Create(ctx Context, usage Enum, data []float32) {
	buf.ctx = ctx
	buf.usage = usage
	buf.name = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

func (buf *FloatBuffer) Name() uint32 { return buf.name }
func (buf *FloatBuffer) Bind()        { buf.ctx.BindBuffer(ArrayBuffer, buf.name) }
func (buf *FloatBuffer) Unbind()      { buf.ctx.BindBuffer(ArrayBuffer, 0) }

// Len returns the number of float32 values uploaded.
func (buf *FloatBuffer) Len() int { return buf.count }

// Delete releases the buffer. Safe to call more than once.
func (buf *FloatBuffer) Delete() {
	if buf.name == 0 {
		return
	}
	buf.ctx.DeleteBuffer(buf.name)
	buf.name = 0
}

// Update encodes data little-endian and uploads it to the bound buffer.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	if n := len(data) * 4; cap(buf.bin) < n {
		buf.bin = make([]byte, n)
	} else {
		buf.bin = buf.bin[:n]
	}
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	buf.ctx.BufferData(ArrayBuffer, buf.bin, buf.usage)
}
