// Package assets loads named sprite graphics from paired text files: for a
// graphic N, N.txt carries the glyphs and N.color a single-letter color
// code per glyph. The loader works over any fs.FS so callers can swap the
// built-in set for a directory on disk.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/borkshop/sungrove/internal/raster"
)

//go:embed assets
var embedded embed.FS

// Default is the built-in asset set: hex, dot, empty, vert, horiz.
var Default fs.FS

func init() {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	Default = sub
}

// Load reads the paired files for one graphic and parses them into a
// raster. A missing file or a bad color code fails the load; asset files
// ship with the program, so a failure here is a packaging mistake.
func Load(fsys fs.FS, name string) (raster.Raster, error) {
	glyphs, err := fs.ReadFile(fsys, name+".txt")
	if err != nil {
		return raster.Raster{}, fmt.Errorf("assets: load %q: %w", name, err)
	}
	colors, err := fs.ReadFile(fsys, name+".color")
	if err != nil {
		return raster.Raster{}, fmt.Errorf("assets: load %q: %w", name, err)
	}
	r, err := raster.Parse(string(glyphs), string(colors))
	if err != nil {
		return raster.Raster{}, fmt.Errorf("assets: load %q: %w", name, err)
	}
	return r, nil
}

// LoadAll loads every named graphic from the filesystem.
func LoadAll(fsys fs.FS, names ...string) (map[string]raster.Raster, error) {
	out := make(map[string]raster.Raster, len(names))
	for _, name := range names {
		r, err := Load(fsys, name)
		if err != nil {
			return nil, err
		}
		out[name] = r
	}
	return out, nil
}
