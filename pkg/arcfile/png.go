// Native PNG rendering for arc scenes.
// Mirrors the SVG renderer output using Go's image packages.

package arcfile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Supersample int    // render at this multiple and downscale (0 = 4)
	Title       string // drawn at the top, overrides the scene name
	FontSize    int    // label font size in points
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{Supersample: 4, FontSize: 14}
}

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorText       = color.RGBA{51, 51, 51, 255} // #333
)

// renderContext holds the image being drawn at supersampled size.
type renderContext struct {
	img   *image.RGBA
	scale float64
	face  font.Face
	title font.Face
}

func newRenderContext(img *image.RGBA, scale int, fontSize int) (*renderContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone, // supersampled instead
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	title, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64((fontSize + 4) * scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	return &renderContext{img: img, scale: float64(scale), face: face, title: title}, nil
}

// RenderPNG renders the scene to PNG at the canvas size.
func RenderPNG(s *Scene, w io.Writer, opts PNGOptions) error {
	img, err := RenderImage(s, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// RenderImage renders the scene to an image at the canvas size.
func RenderImage(s *Scene, opts PNGOptions) (*image.RGBA, error) {
	if err := s.Canvas.Validate(); err != nil {
		return nil, err
	}
	scale := opts.Supersample
	if scale <= 0 {
		scale = 4
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}

	cw, ch := s.Canvas.Width, s.Canvas.Height
	large := image.NewRGBA(image.Rect(0, 0, cw*scale, ch*scale))
	draw.Draw(large, large.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	ctx, err := newRenderContext(large, scale, opts.FontSize)
	if err != nil {
		return nil, err
	}

	pad := s.Canvas.Pad()
	arcs := s.Build(pad)
	for i, a := range arcs {
		spec := s.Arcs[i]
		pts := a.Points()
		px := make([]vec.Vec2, len(pts))
		for j, p := range pts {
			px[j] = pad.ToPixelF(p).Mul(ctx.scale)
		}

		width := lineWidth(spec.Line.Width) * ctx.scale
		z := vector.NewRasterizer(large.Bounds().Dx(), large.Bounds().Dy())
		for _, piece := range dash(px, dashPattern(spec.Line.Style), width) {
			strokePolyline(z, piece, width)
		}
		z.Draw(large, large.Bounds(), image.NewUniform(LineColor(spec.Line.Color)), image.Point{})

		if spec.Label != "" {
			x, y := labelAnchor(a.BBox())
			drawTextCentered(ctx, ctx.face, x*scale, y*scale, spec.Label)
		}
	}

	title := opts.Title
	if title == "" {
		title = s.Name
	}
	if title != "" {
		drawTextCentered(ctx, ctx.title, cw*scale/2, (opts.FontSize+8)*scale, title)
	}

	Logger().Debug("arcfile: rendered png", "width", cw, "height", ch, "arcs", len(arcs), "supersample", scale)

	final := image.NewRGBA(image.Rect(0, 0, cw, ch))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final, nil
}

// strokePolyline adds a stroke of the given width along pts, with round
// joins and caps, to z. Every piece is added with the same winding so that
// overlaps accumulate instead of cancelling.
func strokePolyline(z *vector.Rasterizer, pts []vec.Vec2, width float64) {
	half := width / 2

	for i := 1; i < len(pts); i++ {
		a, e := pts[i-1], pts[i]
		d := e.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := vec.Vec2{X: -d.Y / l * half, Y: d.X / l * half}
		quad := []vec.Vec2{a.Add(n), e.Add(n), e.Sub(n), a.Sub(n)}
		addPolygon(z, quad)
	}
	for _, p := range pts {
		addPolygon(z, disc(p, half))
	}
}

// disc approximates a circle by a polygon.
func disc(c vec.Vec2, r float64) []vec.Vec2 {
	n := int(math.Max(8, math.Ceil(r*2)))
	if n > 64 {
		n = 64
	}
	out := make([]vec.Vec2, n)
	for i := range out {
		t := 2 * math.Pi * float64(i) / float64(n)
		out[i] = vec.Vec2{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
	}
	return out
}

// addPolygon adds a closed polygon with positive signed area.
func addPolygon(z *vector.Rasterizer, poly []vec.Vec2) {
	area := 0.0
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// drawTextCentered draws text centered horizontally on x with its
// baseline at y.
func drawTextCentered(ctx *renderContext, face font.Face, x, y int, text string) {
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(colorText),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x - width/2), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
