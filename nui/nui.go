// Package nui aims to be unremarkable in aiding windowing.
//
// It opens one window with a current GL context and reports input and
// framebuffer size changes. All functions must be called from the main
// goroutine; the package locks it to the main OS thread on init.
package nui

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "nui: ", 0)

// ErrNoWindow is returned when the window or its context could not be created.
var ErrNoWindow = errors.New("nui: failed to create window")

// Config describes the window and the GL context requested for it.
type Config struct {
	Width, Height int
	Title         string

	// Major and Minor request a context version.
	Major, Minor int

	// Core requests a forward-compatible core profile.
	Core bool

	// Hidden creates the window invisible, e.g. for tests.
	Hidden bool
}

// DefaultConfig returns an 800x600 window with a 3.3 core context.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "LearnOpenGL",
		Major:  3,
		Minor:  3,
		Core:   true,
	}
}

func (cfg Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("nui: invalid window size %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Major <= 0 || cfg.Minor < 0 {
		return fmt.Errorf("nui: invalid context version %v.%v", cfg.Major, cfg.Minor)
	}
	return nil
}
