// Command hellotri opens a window and draws one orange triangle on a
// teal background until the window is closed or Escape is pressed.
//
// Shaders default to the built-in sources and can be replaced from files:
//
//	hellotri -vert tri.vert -frag tri.frag
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"dasa.cc/hellotri/glw"
	"dasa.cc/hellotri/glw/desktop"
	"dasa.cc/hellotri/nui"
	"dasa.cc/hellotri/triangle"
)

var (
	flagWidth  = flag.Int("width", 800, "window width")
	flagHeight = flag.Int("height", 600, "window height")
	flagTitle  = flag.String("title", "LearnOpenGL", "window title")
	flagVert   = flag.String("vert", "", "vertex shader file, built-in if empty")
	flagFrag   = flag.String("frag", "", "fragment shader file, built-in if empty")
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("hellotri: ")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg := triangle.Default()
	vsrc, fsrc, err := sources(cfg)
	if err != nil {
		return err
	}

	wcfg := nui.DefaultConfig()
	wcfg.Width, wcfg.Height, wcfg.Title = *flagWidth, *flagHeight, *flagTitle
	win, err := nui.Open(wcfg)
	if err != nil {
		return err
	}
	defer win.Terminate()

	ctx, err := desktop.Load(win.ProcAddress)
	if err != nil {
		return err
	}
	log.Printf("GL %s", desktop.Version())

	width, height := win.GetFramebufferSize()
	glw.Resize(ctx, width, height)
	win.OnResize(func(width, height int) { glw.Resize(ctx, width, height) })

	sc, err := triangle.Setup(ctx, cfg, vsrc, fsrc)
	if err != nil {
		// reported again by Run when the first frame is drawn
		log.Println(err)
	}
	defer sc.Delete()

	return glw.Run(ctx, win, sc.Frame, win.ShouldClose)
}

// sources returns the built-in shaders of cfg unless overridden by flags.
func sources(cfg triangle.Config) (vsrc glw.VertSrc, fsrc glw.FragSrc, err error) {
	vsrc, fsrc = cfg.VertSrc(), cfg.FragSrc()
	if *flagVert != "" {
		name, err := filepath.Abs(*flagVert)
		if err != nil {
			return "", "", err
		}
		if vsrc, err = glw.VertAsset(name).Source(); err != nil {
			return "", "", err
		}
	}
	if *flagFrag != "" {
		name, err := filepath.Abs(*flagFrag)
		if err != nil {
			return "", "", err
		}
		if fsrc, err = glw.FragAsset(name).Source(); err != nil {
			return "", "", err
		}
	}
	return vsrc, fsrc, nil
}
