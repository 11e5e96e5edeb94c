// Package tui presents a carousel in the terminal.
//
// [Strip] is a carousel.Surface measured in terminal cells. It has no
// transform support, so slide carousels animate their left offset frame by
// frame on the scheduler that [Model] steps.
package tui

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/stage"
)

// DefaultScale is the number of pixels drawn in one terminal cell.
const DefaultScale = 10

// cardHeight is the number of rows a card occupies.
const cardHeight = 3

// Card is a terminal resident. A zero Cells fits the label.
type Card struct {
	Label string
	Cells int
}

// Strip is a terminal carousel.Surface. Widths and offsets are in cells.
type Strip struct {
	scale float64

	class     string
	width     float64
	viewport  float64
	left      float64
	active    int
	residents []carousel.Resident
}

var _ carousel.Surface = (*Strip)(nil)

// NewStrip returns a strip that converts pixel widths at scale pixels per
// cell. A scale of zero or less uses DefaultScale.
func NewStrip(scale float64) *Strip {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Strip{scale: scale, active: -1}
}

// Bind sets the residents drawn by Render.
func (s *Strip) Bind(residents []carousel.Resident) {
	s.residents = residents
}

// MeasureWidth returns the width of r in cells.
func (s *Strip) MeasureWidth(r carousel.Resident) float64 {
	switch v := r.(type) {
	case Card:
		if v.Cells > 0 {
			return float64(v.Cells)
		}
		return float64(lipgloss.Width(v.Label) + 4)
	case stage.Measurable:
		return math.Round(v.OuterWidth() / s.scale)
	case float64:
		return math.Round(v / s.scale)
	case int:
		return math.Round(float64(v) / s.scale)
	default:
		return 0
	}
}

func (s *Strip) SetWrapperClass(class string) { s.class = class }

func (s *Strip) SetStripWidth(width float64) { s.width = width }

func (s *Strip) SetViewportWidth(width float64) { s.viewport = width }

func (s *Strip) SetLeft(x float64) { s.left = x }

// SetTranslateX moves the strip like SetLeft. It is only called when a
// carousel forces the transform transition.
func (s *Strip) SetTranslateX(x float64) { s.left = x }

func (s *Strip) SetActive(index int) { s.active = index }

func (s *Strip) SupportsTransform() bool { return false }

func (s *Strip) TransitionDuration() time.Duration { return 0 }

// OnTransitionEnd never fires; terminal strips have no transitions.
func (s *Strip) OnTransitionEnd(func()) func() { return func() {} }

// Left returns the current left offset in cells.
func (s *Strip) Left() float64 { return s.left }

// StripWidth returns the strip width in cells.
func (s *Strip) StripWidth() int { return int(s.width) }

// ViewportWidth returns the viewport width in cells.
func (s *Strip) ViewportWidth() int { return int(s.viewport) }

// Class returns the wrapper class.
func (s *Strip) Class() string { return s.class }

// Render draws the residents and crops them to the viewport at the current
// offset. Each row is exactly the viewport's width in cells.
func (s *Strip) Render() string {
	rows := make([][]string, cardHeight)
	for i, r := range s.residents {
		label := labelOf(r, i)
		card := drawCard(label, int(s.MeasureWidth(r)), i == s.active)
		for row := range rows {
			rows[row] = append(rows[row], card[row]...)
		}
	}

	start := int(math.Round(-s.left))
	width := int(s.viewport)
	if width <= 0 {
		width = len(rows[0])
	}
	lines := make([]string, cardHeight)
	for i, row := range rows {
		lines[i] = crop(row, start, width)
	}
	return strings.Join(lines, "\n")
}

func labelOf(r carousel.Resident, index int) string {
	switch v := r.(type) {
	case Card:
		return v.Label
	case stage.Box:
		return v.Label
	}
	return strconv.Itoa(index)
}

// crop cuts width cells out of row from start. A row holds one string per
// terminal cell and the second cell of a double-width rune is empty; a wide
// rune split by either edge is drawn as a space.
func crop(row []string, start, width int) string {
	var b strings.Builder
	for i := range width {
		j := start + i
		if j < 0 || j >= len(row) {
			b.WriteByte(' ')
			continue
		}
		switch cell := row[j]; {
		case cell == "" && i == 0:
			b.WriteByte(' ')
		case cell == "":
			// drawn with the rune to its left
		case i == width-1 && j+1 < len(row) && row[j+1] == "":
			b.WriteByte(' ')
		default:
			b.WriteString(cell)
		}
	}
	return b.String()
}

// textCells lays text out in at most limit cells, measuring each rune with
// lipgloss.Width as MeasureWidth does.
func textCells(text string, limit int) []string {
	var cells []string
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if w == 0 {
			if len(cells) > 0 {
				cells[len(cells)-1] += string(r)
			}
			continue
		}
		if len(cells)+w > limit {
			break
		}
		cells = append(cells, string(r))
		for range w - 1 {
			cells = append(cells, "")
		}
	}
	return cells
}

func repeatCell(cell string, n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = cell
	}
	return cells
}

// drawCard returns the three rows of a bordered card of the given width.
// Active cards use a heavy border.
func drawCard(label string, width int, active bool) [cardHeight][]string {
	var card [cardHeight][]string
	if width <= 0 {
		return card
	}
	border := lipgloss.RoundedBorder()
	if active {
		border = lipgloss.ThickBorder()
	}
	if width == 1 {
		for i := range card {
			card[i] = []string{border.Left}
		}
		return card
	}

	inner := width - 2
	text := textCells(label, inner)
	pad := inner - len(text)
	body := append(repeatCell(" ", pad/2), text...)
	body = append(body, repeatCell(" ", pad-pad/2)...)

	card[0] = append(append([]string{border.TopLeft}, repeatCell(border.Top, inner)...), border.TopRight)
	card[1] = append(append([]string{border.Left}, body...), border.Right)
	card[2] = append(append([]string{border.BottomLeft}, repeatCell(border.Bottom, inner)...), border.BottomRight)
	return card
}
