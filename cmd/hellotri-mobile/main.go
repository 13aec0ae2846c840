// Command hellotri-mobile draws the triangle scene with GLES 3.0 through
// golang.org/x/mobile. Build with gomobile, or run directly on desktop.
package main

import (
	"log"
	"os"

	"dasa.cc/hellotri/glw"
	"dasa.cc/hellotri/glw/mobile"
	"dasa.cc/hellotri/triangle"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("hellotri-mobile: ")
}

func main() {
	app.Main(func(a app.App) {
		var (
			ctx glw.Context
			sc  *triangle.Scene
			sz  size.Event
		)
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ := e.DrawContext.(gl.Context)
					ctx = mobile.New(glctx)
					cfg := triangle.ES()
					var err error
					if sc, err = triangle.Setup(ctx, cfg, cfg.VertSrc(), cfg.FragSrc()); err != nil {
						log.Println(err)
					}
					glw.Resize(ctx, sz.WidthPx, sz.HeightPx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					sc.Delete()
					sc, ctx = nil, nil
				}
			case size.Event:
				sz = e
				if ctx != nil {
					glw.Resize(ctx, sz.WidthPx, sz.HeightPx)
				}
			case paint.Event:
				if ctx == nil || e.External {
					continue
				}
				if err := sc.Draw(ctx); err != nil {
					log.Fatal(err)
				}
				a.Publish()
				a.Send(paint.Event{})
			case key.Event:
				if e.Code == key.CodeEscape {
					os.Exit(0)
				}
			}
		}
	})
}
