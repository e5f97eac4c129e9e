package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	size float64
	bold bool
}

// fontSet holds the regular and bold Go fonts and caches faces by size.
type fontSet struct {
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
	closed  bool
}

func loadFonts() (*fontSet, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("raster: load bold font: %w", err)
	}
	return &fontSet{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
	}, nil
}

func (fs *fontSet) face(size float64, bold bool) text.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	src := fs.regular
	if bold {
		src = fs.bold
	}
	f := src.Face(size)
	fs.faces[key] = f
	return f
}

func (fs *fontSet) close() error {
	if fs.closed {
		return nil
	}
	fs.closed = true
	fs.faces = nil
	return errors.Join(fs.regular.Close(), fs.bold.Close())
}
