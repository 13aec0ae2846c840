package glw

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Surface presents frames and delivers input for Run.
type Surface interface {
	// ProcessInput polls input state, e.g. requesting close on Escape.
	ProcessInput()
	SwapBuffers()
	PollEvents()
}

// Frame is what gets drawn every iteration of Run.
type Frame struct {
	Clear   f32.Vec4
	Program *Program
	Array   *VertexArray
}

// Draw clears the color buffer and draws Array as triangles with Program.
// If Program is not linked, the buffer is still cleared but nothing is drawn
// and ErrProgramNotLinked is returned.
func (f Frame) Draw(ctx Context) error {
	ctx.ClearColor(f.Clear[0], f.Clear[1], f.Clear[2], f.Clear[3])
	ctx.Clear(ColorBufferBit)
	if err := f.Program.Use(); err != nil {
		return err
	}
	f.Array.Bind()
	f.Array.Draw(Triangles)
	return nil
}

// Run draws f to s until shouldTerminate returns true. The predicate is
// checked once before each frame; a frame in progress always completes.
// The first draw error stops the loop.
func Run(ctx Context, s Surface, f Frame, shouldTerminate func() bool) error {
	for n := 0; !shouldTerminate(); n++ {
		s.ProcessInput()
		if err := f.Draw(ctx); err != nil {
			return fmt.Errorf("frame %v: %w", n, err)
		}
		s.SwapBuffers()
		s.PollEvents()
	}
	return nil
}

// Resize sets the viewport to cover a framebuffer of width by height pixels.
// Non-positive sizes, as reported for minimized windows, are ignored and
// Resize returns false.
func Resize(ctx Context, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	ctx.Viewport(0, 0, width, height)
	return true
}
