package nui

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw event handling must run on the main thread.
	runtime.LockOSThread()
}

var (
	pollEvents     = glfw.PollEvents
	getProcAddress = glfw.GetProcAddress
)

// Window is a glfw window with a current GL context.
type Window struct {
	*glfw.Window
}

// Open initializes glfw and creates a window as described by cfg, making its
// context current on the calling thread. On error glfw is left terminated.
func Open(cfg Config) (*Window, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: init glfw: %v", ErrNoWindow, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	if cfg.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrNoWindow, err)
	}
	window.MakeContextCurrent()
	logger.Printf("opened %q %vx%v, requested GL %v.%v", cfg.Title, cfg.Width, cfg.Height, cfg.Major, cfg.Minor)

	return &Window{window}, nil
}

// ProcessInput requests the window to close when Escape is pressed.
func (w *Window) ProcessInput() {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

// PollEvents processes pending window-system events, invoking callbacks.
func (w *Window) PollEvents() { pollEvents() }

// OnResize calls fn with the new framebuffer size whenever it changes.
func (w *Window) OnResize(fn func(width, height int)) {
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) { fn(width, height) })
}

// ProcAddress resolves a GL function of the current context.
func (w *Window) ProcAddress(name string) unsafe.Pointer { return getProcAddress(name) }

// Terminate destroys the window and releases glfw.
func (w *Window) Terminate() {
	w.Destroy()
	glfw.Terminate()
}
