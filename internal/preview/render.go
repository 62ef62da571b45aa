package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gravitas-games/hexgrid/internal/gamemap"
	"github.com/gravitas-games/hexgrid/pkg/hex"
)

// ErrUnknownColor is returned for colour names that are neither SVG
// colour keywords nor #rgb / #rrggbb literals.
var ErrUnknownColor = errors.New("unknown colour")

// Options controls how a board is drawn. Layout origin (0,0) lands on
// the image centre.
type Options struct {
	Width       int
	Height      int
	Background  string
	Fill        string // used for cells without their own fill
	Stroke      string
	StrokeWidth float64 // 0 disables outlines
	FontSize    float64 // 0 disables labels
	LabelIDs    bool    // label cells without text by their ID
}

// Renderer rasterizes boards. It is not safe for concurrent use.
type Renderer struct {
	opts   Options
	bg     color.RGBA
	fill   color.RGBA
	stroke color.RGBA
	face   font.Face
	ras    *vector.Rasterizer
}

// New resolves the colours in opts and loads the label font.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview size %dx%d must be positive", opts.Width, opts.Height)
	}
	r := &Renderer{opts: opts, ras: vector.NewRasterizer(opts.Width, opts.Height)}
	var err error
	if r.bg, err = ParseColor(opts.Background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if r.fill, err = ParseColor(opts.Fill); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	if r.stroke, err = ParseColor(opts.Stroke); err != nil {
		return nil, fmt.Errorf("stroke: %w", err)
	}
	if opts.FontSize > 0 {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse label font: %w", err)
		}
		r.face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create label face: %w", err)
		}
	}
	return r, nil
}

// Close releases the label font face.
func (r *Renderer) Close() error {
	if r.face == nil {
		return nil
	}
	return r.face.Close()
}

// Render draws every cell of b in generation order.
func (r *Renderer) Render(b *gamemap.Board) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(r.bg), image.Point{}, xdraw.Src)

	inset := 1.0
	if r.opts.StrokeWidth > 0 {
		radius := math.Min(b.Layout.Size.X, b.Layout.Size.Y)
		if radius > 0 {
			inset = math.Max(0, 1-r.opts.StrokeWidth/radius)
		}
	}

	for _, c := range b.Cells() {
		fill := r.fill
		if c.Attrs.Fill != "" {
			var err error
			if fill, err = ParseColor(c.Attrs.Fill); err != nil {
				return nil, fmt.Errorf("cell %s: %w", c.ID(), err)
			}
		}
		center := c.Center(b.Layout)
		if inset < 1 {
			r.polygon(dst, center, b.Layout, 1, r.stroke)
		}
		r.polygon(dst, center, b.Layout, inset, fill)

		label := c.Attrs.Text
		if label == "" && r.opts.LabelIDs {
			label = c.ID()
		}
		r.label(dst, center, label)
	}
	return dst, nil
}

// polygon fills the hex around center with its corners pulled in by scale.
func (r *Renderer) polygon(dst *image.RGBA, center hex.Point, l hex.Layout, scale float64, c color.RGBA) {
	ox := float64(r.opts.Width) / 2
	oy := float64(r.opts.Height) / 2
	r.ras.Reset(r.opts.Width, r.opts.Height)
	for i := 0; i < 6; i++ {
		off := hex.CornerOffset(i, l)
		x := float32(center.X + off.X*scale + ox)
		y := float32(center.Y + off.Y*scale + oy)
		if i == 0 {
			r.ras.MoveTo(x, y)
		} else {
			r.ras.LineTo(x, y)
		}
	}
	r.ras.ClosePath()
	r.ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// label centres s on the hex.
func (r *Renderer) label(dst *image.RGBA, center hex.Point, s string) {
	if s == "" || r.face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
	}
	m := r.face.Metrics()
	x := fixed.Int26_6((center.X+float64(r.opts.Width)/2)*64) - d.MeasureString(s)/2
	y := fixed.Int26_6((center.Y+float64(r.opts.Height)/2)*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(s)
}

// ParseColor resolves an SVG colour keyword ("lightsteelblue") or a
// #rgb / #rrggbb literal.
func ParseColor(name string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		digits := s[1:]
		if len(digits) == 3 {
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		}
		if len(digits) == 6 {
			if v, err := strconv.ParseUint(digits, 16, 32); err == nil {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
			}
		}
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
