package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/spirovm/render"
)

func writeConfig(t *testing.T, text string) (path string) {
	path = filepath.Join(t.TempDir(), "spirovm.toml")
	err := os.WriteFile(path, []byte(text), 0o644)
	assert.NoError(t, err)
	return
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	c := Default()
	assert.NoError(c.Validate())

	opts, err := c.RenderOptions()
	assert.NoError(err)
	assert.Equal(render.DefaultTheme, opts.Theme)
	assert.Equal(1, opts.Scale)
	assert.Equal(0, opts.Border)
	assert.True(opts.Cursor)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `
language = "de-DE"

[run]
frames = 120
ticks_per_frame = 16

[display]
scale = 3
border = 2
theme = ["#000", "#fff", "#f00", "#888888"]

[rom]
address = 0x8100
`)

	c, err := Load(path)
	assert.NoError(err)
	if err != nil {
		t.FailNow()
	}

	assert.Equal(path, c.Path)
	assert.Equal("de-DE", c.Language)
	assert.Equal(120, c.Run.Frames)
	assert.Equal(16, c.Run.TicksPerFrame)
	assert.Equal(uint32(0x8100), c.Rom.Address)

	opts, err := c.RenderOptions()
	assert.NoError(err)
	assert.Equal(3, opts.Scale)
	assert.Equal(2, opts.Border)
	// Not in the file, so the default is kept.
	assert.True(opts.Cursor)
	assert.Equal(uint8(0xff), opts.Theme[render.THEME_INK].R)
	assert.Equal(uint8(0x88), opts.Theme[render.THEME_BORDER].G)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"unknown", "[run]\nspeed = 3\n", nil},
		{"syntax", "[run\n", nil},
		{"frames", "[run]\nframes = -1\n", ErrNegative},
		{"ticks", "[run]\nticks_per_frame = 0\n", ErrTicksPerFrame},
		{"scale", "[display]\nscale = 99\n", render.ErrScale},
		{"border", "[display]\nborder = -2\n", render.ErrBorder},
		{"theme", "[display]\ntheme = [\"#000\"]\n", render.ErrThemeLength},
		{"color", "[display]\ntheme = [\"#000\", \"#fff\", \"red\", \"#888\"]\n", render.ErrColor("red")},
	}

	for _, entry := range table {
		_, err := Load(writeConfig(t, entry.text))
		assert.Error(err, entry.name)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestLoad_UnknownKeys(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(writeConfig(t, "speed = 3\n[display]\nzoom = 2\n"))
	var unknown ErrUnknownKeys
	if assert.True(errors.As(err, &unknown)) {
		assert.Len(unknown, 2)
		assert.Contains(err.Error(), "display.zoom")
	}
}

func TestDefault_Theme(t *testing.T) {
	assert := assert.New(t)

	theme, err := Default().Theme()
	assert.NoError(err)
	assert.Equal(render.DefaultTheme, theme)
}

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
