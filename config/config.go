// Package config handles spirovm.toml run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/spirovm/render"
	"github.com/ezrec/spirovm/translate"
)

var f = translate.From

var (
	ErrNegative      = errors.New(f("is negative"))
	ErrTicksPerFrame = errors.New(f("must be at least 1"))
)

// ErrUnknownKeys lists configuration keys that were not recognized.
type ErrUnknownKeys []toml.Key

func (err ErrUnknownKeys) Error() string {
	return f("unknown keys %v", []toml.Key(err))
}

// Config represents a spirovm.toml run configuration.
type Config struct {
	Language string  `toml:"language"`
	Run      Run     `toml:"run"`
	Display  Display `toml:"display"`
	Rom      Rom     `toml:"rom"`

	// Path is the file the configuration was loaded from, if any.
	Path string `toml:"-"`
}

// Run configures the frame loop.
type Run struct {
	Frames        int `toml:"frames"`          // Frames to run. 0 runs until halted.
	TicksPerFrame int `toml:"ticks_per_frame"` // Commands executed per frame.
}

// Display configures the rendered image.
type Display struct {
	Scale  int      `toml:"scale"`
	Border int      `toml:"border"`
	Cursor bool     `toml:"cursor"`
	Theme  []string `toml:"theme"`
}

// Rom configures where ROM images are loaded.
type Rom struct {
	Address uint32 `toml:"address"` // Load and entry address. 0 selects ROM_BASE.
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Run: Run{
			TicksPerFrame: 1,
		},
		Display: Display{
			Scale:  1,
			Cursor: true,
			Theme:  render.DefaultTheme.Strings(),
		},
	}
}

// Load parses a configuration file. Values missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", f("cannot read %s", path), err)
	}

	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", f("parse error in %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%v: %w", path, ErrUnknownKeys(undecoded))
	}

	c.Path = path

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Run.Frames < 0 {
		return fmt.Errorf("%v: %w", f("run.frames %d", c.Run.Frames), ErrNegative)
	}
	if c.Run.TicksPerFrame < 1 {
		return fmt.Errorf("%v: %w", f("run.ticks_per_frame %d", c.Run.TicksPerFrame), ErrTicksPerFrame)
	}
	if c.Display.Scale < 1 || c.Display.Scale > render.SCALE_LIMIT {
		return fmt.Errorf("%v: %w", f("display.scale %d", c.Display.Scale), render.ErrScale)
	}
	if c.Display.Border < 0 {
		return fmt.Errorf("%v: %w", f("display.border %d", c.Display.Border), render.ErrBorder)
	}
	if _, err := c.Theme(); err != nil {
		return fmt.Errorf("%v: %w", f("display.theme"), err)
	}

	return nil
}

// Theme returns the parsed display theme.
func (c *Config) Theme() (render.Theme, error) {
	return render.ParseTheme(c.Display.Theme)
}

// RenderOptions returns the render options for the display configuration.
func (c *Config) RenderOptions() (opts render.Options, err error) {
	opts.Theme, err = c.Theme()
	if err != nil {
		return
	}

	opts.Scale = c.Display.Scale
	opts.Border = c.Display.Border
	opts.Cursor = c.Display.Cursor

	return
}
