// Package markup builds carousel residents from an HTML fragment.
//
// Each element becomes a [stage.Box] whose border-box width and horizontal
// margins come from its inline style. Width, padding and border widths add up
// unless box-sizing is border-box:
//
//	<ul class="strip">
//	  <li id="intro" style="width: 120px; margin: 0 10px">Intro</li>
//	  <li style="width:80px;margin-left:4px">Next</li>
//	</ul>
//
// When the fragment holds a single element with element children, that
// element is the strip and its children are the residents. Otherwise the
// top-level elements are the residents.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-renewal/renewal/pkg/carousel"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
	"github.com/go-renewal/renewal/pkg/stage"
)

const op = "markup.Parse"

// Parse reads an HTML fragment from r and returns its residents.
func Parse(r io.Reader) ([]carousel.Resident, error) {
	boxes, err := ParseBoxes(r)
	if err != nil {
		return nil, err
	}
	residents := make([]carousel.Resident, len(boxes))
	for i, b := range boxes {
		residents[i] = b
	}
	return residents, nil
}

// ParseString is Parse for an in-memory fragment.
func ParseString(fragment string) ([]carousel.Resident, error) {
	return Parse(strings.NewReader(fragment))
}

// ParseBoxes reads an HTML fragment from r and returns one box per resident
// element.
func ParseBoxes(r io.Reader) ([]stage.Box, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, renewalerrors.New(op, renewalerrors.KindMarkup, err)
	}

	elements := residentElements(nodes)
	if len(elements) == 1 {
		if children := childElements(elements[0]); len(children) > 0 {
			elements = children
		}
	}
	if len(elements) == 0 {
		return nil, renewalerrors.New(op, renewalerrors.KindMarkup, carousel.ErrNoResidents)
	}

	boxes := make([]stage.Box, 0, len(elements))
	for i, el := range elements {
		box, err := boxFor(el)
		if err != nil {
			return nil, renewalerrors.New(op, renewalerrors.KindMarkup,
				fmt.Errorf("resident %d (%s): %w", i, describe(el), err))
		}
		if box.Label == "" {
			box.Label = fmt.Sprint(i)
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

func residentElements(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if isResident(n) {
			out = append(out, n)
		}
	}
	return out
}

func childElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isResident(c) {
			out = append(out, c)
		}
	}
	return out
}

func isResident(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Link, atom.Meta:
		return false
	}
	return true
}

// boxModel holds the horizontal box of one element while its declarations
// are applied in source order.
type boxModel struct {
	width                     float64
	paddingLeft, paddingRight float64
	borderLeft, borderRight   float64
	marginLeft, marginRight   float64
	borderBox                 bool
}

func (m *boxModel) apply(d Declaration) error {
	var err error
	switch d.Property {
	case "width":
		m.width, err = parseLength(d.Property, d.Value)
	case "box-sizing":
		m.borderBox = strings.EqualFold(d.Value, "border-box")
	case "margin":
		m.marginLeft, m.marginRight, err = parseHorizontal(d.Property, d.Value, parseLength)
	case "margin-left":
		m.marginLeft, err = parseLength(d.Property, d.Value)
	case "margin-right":
		m.marginRight, err = parseLength(d.Property, d.Value)
	case "padding":
		m.paddingLeft, m.paddingRight, err = parseHorizontal(d.Property, d.Value, parseLength)
	case "padding-left":
		m.paddingLeft, err = parseLength(d.Property, d.Value)
	case "padding-right":
		m.paddingRight, err = parseLength(d.Property, d.Value)
	case "border":
		m.borderLeft, err = parseBorderSide(d.Property, d.Value)
		m.borderRight = m.borderLeft
	case "border-left":
		m.borderLeft, err = parseBorderSide(d.Property, d.Value)
	case "border-right":
		m.borderRight, err = parseBorderSide(d.Property, d.Value)
	case "border-width":
		m.borderLeft, m.borderRight, err = parseHorizontal(d.Property, d.Value, parseBorderWidth)
	case "border-left-width":
		m.borderLeft, err = parseBorderWidth(d.Property, d.Value)
	case "border-right-width":
		m.borderRight, err = parseBorderWidth(d.Property, d.Value)
	}
	return err
}

// borderWidth is the element's border-box width.
func (m *boxModel) borderWidth() float64 {
	if m.borderBox {
		return m.width
	}
	return m.width + m.paddingLeft + m.paddingRight + m.borderLeft + m.borderRight
}

func boxFor(n *html.Node) (stage.Box, error) {
	box := stage.Box{Label: label(n)}

	var m boxModel
	if w := attr(n, "width"); w != "" {
		if err := m.apply(Declaration{Property: "width", Value: w}); err != nil {
			return box, err
		}
	}

	decls, err := ParseDeclarations(attr(n, "style"))
	if err != nil {
		return box, err
	}
	for _, d := range decls {
		if err := m.apply(d); err != nil {
			return box, err
		}
	}

	box.Width = m.borderWidth()
	box.MarginLeft, box.MarginRight = m.marginLeft, m.marginRight
	return box, nil
}

func label(n *html.Node) string {
	for _, key := range []string{"data-label", "id", "title"} {
		if v := strings.TrimSpace(attr(n, key)); v != "" {
			return v
		}
	}
	return strings.Join(strings.Fields(textContent(n)), " ")
}

func describe(n *html.Node) string {
	if id := attr(n, "id"); id != "" {
		return n.Data + "#" + id
	}
	return n.Data
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
