package glw

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/mobile/asset"
)

// InfoLogSize bounds diagnostics kept from compile and link.
const InfoLogSize = 512

var (
	// ErrProgramNotLinked is returned when using a program that did not link.
	ErrProgramNotLinked = errors.New("glw: program not linked")

	// ErrShaderNotCompiled is returned when linking a shader that did not compile.
	ErrShaderNotCompiled = errors.New("glw: shader not compiled")
)

// Status is a build state of a shader or program.
//
// Shaders go Created, Compiling, then Compiled or Failed.
// Programs go Created, Linking, then Linked or Failed.
// Failed is terminal.
type Status int

const (
	Created Status = iota
	Compiling
	Compiled
	Linking
	Linked
	Failed
)

func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Compiling:
		return "Compiling"
	case Compiled:
		return "Compiled"
	case Linking:
		return "Linking"
	case Linked:
		return "Linked"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// BuildError carries diagnostics of a failed compile or link.
type BuildError struct {
	Stage string // VertexShader, FragmentShader or LinkProgram
	Where string // file:line of the caller that requested the build
	Log   string
}

func (e *BuildError) Error() string { return fmt.Sprintf("%s %s\n%s", e.Stage, e.Where, e.Log) }

func truncate(msg string) string {
	if len(msg) > InfoLogSize {
		return msg[:InfoLogSize]
	}
	return msg
}

// Source is shader source code tagged by kind.
type Source interface {
	Kind() Enum
	Text() string
}

// VertSrc is vertex shader source code.
type VertSrc string

func (src VertSrc) Kind() Enum   { return VertexShader }
func (src VertSrc) Text() string { return string(src) }

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile(ctx Context) (*Shader, error) { return Compile(ctx, src) }

// FragSrc is fragment shader source code.
type FragSrc string

func (src FragSrc) Kind() Enum   { return FragmentShader }
func (src FragSrc) Text() string { return string(src) }

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile(ctx Context) (*Shader, error) { return Compile(ctx, src) }

// VertAsset is a filename in assets containing vertex shader source code.
type VertAsset string

// Source returns the contents of the named file in assets.
func (name VertAsset) Source() (VertSrc, error) {
	b, err := readAll(string(name))
	return VertSrc(b), err
}

// FragAsset is a filename in assets containing fragment shader source code.
type FragAsset string

// Source returns the contents of the named file in assets.
func (name FragAsset) Source() (FragSrc, error) {
	b, err := readAll(string(name))
	return FragSrc(b), err
}

func readAll(name string) ([]byte, error) {
	f, err := asset.Open(name)
	if err != nil {
		return nil, fmt.Errorf("glw: open asset: %w", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("glw: read asset %q: %w", name, err)
	}
	return b, nil
}

func stage(kind Enum) string {
	if kind == VertexShader {
		return "VertexShader"
	}
	return "FragmentShader"
}

// Shader is a compiled, or failed, shader object.
type Shader struct {
	ctx    Context
	name   uint32
	kind   Enum
	status Status
	log    string
}

// Compile creates a shader of src's kind and compiles it. On failure the
// shader is returned in state Failed alongside a *BuildError; it still
// must be released with Delete.
func Compile(ctx Context, src Source) (*Shader, error) {
	shd := &Shader{ctx: ctx, kind: src.Kind()}
	shd.name = ctx.CreateShader(shd.kind)
	ctx.ShaderSource(shd.name, src.Text())

	shd.status = Compiling
	ctx.CompileShader(shd.name)
	if ctx.GetShaderi(shd.name, CompileStatus) == 0 {
		shd.status = Failed
		shd.log = truncate(ctx.GetShaderInfoLog(shd.name))
		return shd, &BuildError{Stage: stage(shd.kind), Where: caller(), Log: shd.log}
	}
	shd.status = Compiled
	return shd, nil
}

func (shd *Shader) Name() uint32   { return shd.name }
func (shd *Shader) Kind() Enum     { return shd.kind }
func (shd *Shader) Status() Status { return shd.status }

// Log returns the compile diagnostics, if any.
func (shd *Shader) Log() string { return shd.log }

// Deleted reports whether the shader object has been released.
func (shd *Shader) Deleted() bool { return shd.name == 0 }

// Delete releases the shader object. Safe to call more than once.
func (shd *Shader) Delete() {
	if shd == nil || shd.name == 0 {
		return
	}
	shd.ctx.DeleteShader(shd.name)
	shd.name = 0
}

// Program identifies a shader program and its link state.
type Program struct {
	ctx    Context
	name   uint32
	status Status
	log    string
}

// Link attaches vs and fs to a new program and links it. Both shaders must be
// Compiled, otherwise no link is attempted and the program is Failed with
// ErrShaderNotCompiled. After a successful link vs and fs are released.
func Link(ctx Context, vs, fs *Shader) (*Program, error) {
	prg := &Program{ctx: ctx}
	if !ready(vs, VertexShader) || !ready(fs, FragmentShader) {
		prg.status = Failed
		return prg, ErrShaderNotCompiled
	}

	prg.name = ctx.CreateProgram()
	ctx.AttachShader(prg.name, vs.name)
	ctx.AttachShader(prg.name, fs.name)

	prg.status = Linking
	ctx.LinkProgram(prg.name)
	if ctx.GetProgrami(prg.name, LinkStatus) == 0 {
		prg.status = Failed
		prg.log = truncate(ctx.GetProgramInfoLog(prg.name))
		return prg, &BuildError{Stage: "LinkProgram", Where: caller(), Log: prg.log}
	}
	prg.status = Linked

	vs.Delete()
	fs.Delete()
	return prg, nil
}

func ready(shd *Shader, kind Enum) bool {
	return shd != nil && shd.kind == kind && shd.status == Compiled && shd.name != 0
}

// Build compiles vsrc and fsrc and links them. Both sources are compiled even
// if the first fails so all diagnostics are reported. Shaders are released on
// every path. The returned program is never nil; check its Status or the error.
func Build(ctx Context, vsrc VertSrc, fsrc FragSrc) (*Program, error) {
	vshd, verr := vsrc.Compile(ctx)
	defer vshd.Delete()

	fshd, ferr := fsrc.Compile(ctx)
	defer fshd.Delete()

	prg, lerr := Link(ctx, vshd, fshd)
	if verr != nil || ferr != nil {
		return prg, errors.Join(verr, ferr)
	}
	return prg, lerr
}

func (prg *Program) Name() uint32   { return prg.name }
func (prg *Program) Status() Status { return prg.status }

// Log returns the link diagnostics, if any.
func (prg *Program) Log() string { return prg.log }

// Use installs program as part of current rendering state.
func (prg *Program) Use() error {
	if prg == nil || prg.status != Linked || prg.name == 0 {
		return ErrProgramNotLinked
	}
	prg.ctx.UseProgram(prg.name)
	return nil
}

// Delete frees the memory and invalidates the name associated with the program.
func (prg *Program) Delete() {
	if prg == nil || prg.name == 0 {
		return
	}
	prg.ctx.DeleteProgram(prg.name)
	prg.name = 0
}
