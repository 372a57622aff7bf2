package dot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Format is a Graphviz output format.
type Format string

// Supported output formats.
const (
	SVG Format = "svg"
	PNG Format = "png"
	JPG Format = "jpg"
	DOT Format = "dot" // laid-out DOT with positions
)

// ErrUnknownFormat is returned for an output format Render cannot produce.
var ErrUnknownFormat = errors.New("dot: unknown output format")

var gvFormats = map[Format]graphviz.Format{
	SVG: graphviz.SVG,
	PNG: graphviz.PNG,
	JPG: graphviz.JPG,
	DOT: graphviz.XDOT,
}

// FormatFromPath picks the output format from a file extension
// (".svg", ".png", ".jpg"/".jpeg", ".dot"/".gv"), case-insensitively.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpeg":
		return JPG, nil
	case "gv":
		return DOT, nil
	}
	f := Format(ext)
	if _, ok := gvFormats[f]; !ok {
		return "", fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}

	return f, nil
}

// Render lays out the DOT source src and writes it to w in the given format.
func Render(ctx context.Context, src string, format Format, w io.Writer) error {
	gf, ok := gvFormats[format]
	if !ok {
		return fmt.Errorf("Render(%q): %w", format, ErrUnknownFormat)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, gf, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
