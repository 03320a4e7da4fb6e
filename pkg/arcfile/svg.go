package arcfile

import (
	"fmt"
	"html"
	"strings"

	"seehuhn.de/go/geom/path"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// SVGOptions controls SVG rendering.
type SVGOptions struct {
	Title     string // drawn at the top, overrides the scene name
	FontSize  int    // label font size
	TitleSize int    // title font size (0 = FontSize + 4)
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{FontSize: 14}
}

// GenerateSVG renders the scene to SVG at the canvas size.
func GenerateSVG(s *Scene, opts SVGOptions) string {
	if opts.FontSize == 0 {
		opts.FontSize = 14
	}
	if opts.TitleSize == 0 {
		opts.TitleSize = opts.FontSize + 4
	}
	title := opts.Title
	if title == "" {
		title = s.Name
	}

	pad := s.Canvas.Pad()
	w, h := s.Canvas.Width, s.Canvas.Height

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	fmt.Fprintf(&sb, `  <rect width="%d" height="%d" fill="white"/>`+"\n", w, h)

	if title != "" {
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="%d" font-weight="bold">%s</text>`+"\n",
			w/2, opts.TitleSize+8, opts.TitleSize, html.EscapeString(title))
	}

	arcs := s.Build(pad)
	for i, a := range arcs {
		spec := s.Arcs[i]
		c := LineColor(spec.Line.Color)
		width := lineWidth(spec.Line.Width)

		fmt.Fprintf(&sb, `  <path d="%s" fill="none" stroke="#%02x%02x%02x" stroke-width="%s" stroke-linejoin="round" stroke-linecap="round"`,
			svgPath(a.Path(), pad), c.R, c.G, c.B, fmtFloat(width))
		if p := dashPattern(spec.Line.Style); p != nil {
			parts := make([]string, len(p))
			for j, v := range p {
				parts[j] = fmtFloat(v * width)
			}
			fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
		}
		sb.WriteString("/>\n")

		if spec.Label != "" {
			x, y := labelAnchor(a.BBox())
			fmt.Fprintf(&sb, `  <text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="%d">%s</text>`+"\n",
				x, y, opts.FontSize, html.EscapeString(spec.Label))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// svgPath converts a logical path to SVG path data in pixels.
func svgPath(p *path.Data, pad *host.Pad) string {
	var sb strings.Builder
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			q := pad.ToPixelF(p.Coords[k])
			k++
			op := "L"
			if cmd == path.CmdMoveTo {
				op = "M"
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s%.2f %.2f", op, q.X, q.Y)
		case path.CmdClose:
			sb.WriteString(" Z")
		}
	}
	return sb.String()
}

// labelAnchor places a label just above a bounding box.
func labelAnchor(b host.BBox) (int, int) {
	return b.X + b.Width/2, b.Y - 6
}
