// Package snapshot renders a carousel frame to an image.
//
// The frame is drawn from a stage.Strip: the viewport at its recorded width,
// the residents shifted by the strip's left offset and translateX transform,
// and the active resident highlighted. Labels use the basic 7x13 bitmap font.
package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-renewal/renewal/pkg/carousel"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
	"github.com/go-renewal/renewal/pkg/stage"
)

const (
	charWidth  = 7
	lineHeight = 16
)

// Options controls frame layout and colors. Zero fields take the defaults
// from DefaultOptions.
type Options struct {
	// Title is drawn above the viewport when set.
	Title string
	// Scale enlarges the frame by an integer factor.
	Scale int
	// Padding surrounds the viewport, in layout pixels.
	Padding int
	// Height is the resident height, in layout pixels.
	Height int
	// Overflow draws residents outside the viewport.
	Overflow bool

	Background color.RGBA
	Viewport   color.RGBA
	Resident   color.RGBA
	Active     color.RGBA
	Text       color.RGBA
}

// DefaultOptions returns the default palette and layout.
func DefaultOptions() Options {
	return Options{
		Scale:      1,
		Padding:    16,
		Height:     48,
		Background: color.RGBA{R: 13, G: 17, B: 23, A: 255},
		Viewport:   color.RGBA{R: 33, G: 38, B: 45, A: 255},
		Resident:   color.RGBA{R: 56, G: 139, B: 253, A: 255},
		Active:     color.RGBA{R: 63, G: 185, B: 80, A: 255},
		Text:       color.RGBA{R: 240, G: 246, B: 252, A: 255},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.Padding <= 0 {
		o.Padding = def.Padding
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	for _, pair := range []struct{ dst, src *color.RGBA }{
		{&o.Background, &def.Background},
		{&o.Viewport, &def.Viewport},
		{&o.Resident, &def.Resident},
		{&o.Active, &def.Active},
		{&o.Text, &def.Text},
	} {
		if *pair.dst == (color.RGBA{}) {
			*pair.dst = *pair.src
		}
	}
	return o
}

// Render draws the current frame of c on strip.
func Render(c *carousel.Carousel, strip *stage.Strip, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	viewport := strip.ViewportWidth()
	if viewport <= 0 {
		viewport = c.TotalWidth()
	}
	top := opts.Padding
	if opts.Title != "" {
		top += lineHeight
	}
	width := int(viewport) + 2*opts.Padding
	if titleWidth := len(opts.Title)*charWidth + 2*opts.Padding; titleWidth > width {
		width = titleWidth
	}
	height := top + opts.Height + opts.Padding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), opts.Background)

	view := image.Rect(opts.Padding, top, opts.Padding+int(viewport), top+opts.Height)
	fill(img, view, opts.Viewport)

	clip := view
	if opts.Overflow {
		clip = img.Bounds()
	}
	canvas := img.SubImage(clip).(*image.RGBA)

	x := float64(opts.Padding) + strip.Shift()
	for i := 0; i < c.Size(); i++ {
		r := c.Resident(i)
		outer := strip.MeasureWidth(r)
		left, w := x, outer
		if box, ok := r.(stage.Box); ok {
			left += box.MarginLeft
			w = box.Width
		}
		rect := image.Rect(int(left), top, int(left+w), top+opts.Height)

		fg := opts.Resident
		if i == strip.Active() {
			fg = opts.Active
		}
		fill(canvas, rect, fg)
		drawLabel(canvas, rect, residentLabel(r), opts.Text)
		x += outer
	}

	if opts.Title != "" {
		drawText(img, opts.Padding, opts.Padding+lineHeight-4, opts.Title, opts.Text)
	}

	if opts.Scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*opts.Scale, b.Dy()*opts.Scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		return scaled
	}
	return img
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return renewalerrors.New("snapshot.Encode", renewalerrors.KindRender, err)
	}
	return nil
}

// WriteFile renders img as PNG to path.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return renewalerrors.New("snapshot.WriteFile", renewalerrors.KindRender, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return renewalerrors.New("snapshot.WriteFile", renewalerrors.KindRender, err)
	}
	return nil
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func residentLabel(r carousel.Resident) string {
	if box, ok := r.(stage.Box); ok {
		return box.Label
	}
	return ""
}

// drawLabel centers label in rect, truncated to fit.
func drawLabel(dst *image.RGBA, rect image.Rectangle, label string, c color.RGBA) {
	if label == "" {
		return
	}
	maxChars := (rect.Dx() - 4) / charWidth
	if maxChars <= 0 {
		return
	}
	label = truncateLabel(label, maxChars)
	x := rect.Min.X + (rect.Dx()-utf8.RuneCountInString(label)*charWidth)/2
	y := rect.Min.Y + (rect.Dy()+basicfont.Face7x13.Ascent)/2
	drawText(dst, x, y, label, c)
}

// truncateLabel keeps at most maxChars runes of label.
func truncateLabel(label string, maxChars int) string {
	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars])
}

func drawText(dst *image.RGBA, x, y int, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
