package markup

import (
	"math"
	"strconv"
	"strings"

	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
)

// Declaration is one property: value pair of an inline style.
type Declaration struct {
	Property string
	Value    string
}

// ParseDeclarations splits an inline style attribute into declarations in
// source order. Property names are lower-cased and values trimmed, with
// !important dropped. Semicolons inside parentheses or quotes do not end a
// declaration. A declaration without a colon is a StyleError.
func ParseDeclarations(style string) ([]Declaration, error) {
	var decls []Declaration
	for _, part := range splitDeclarations(style) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, &renewalerrors.StyleError{Property: "style", Value: part}
		}
		value = strings.TrimSpace(value)
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		decls = append(decls, Declaration{
			Property: strings.ToLower(strings.TrimSpace(name)),
			Value:    value,
		})
	}
	return decls, nil
}

// ParseStyle is ParseDeclarations collected into a map. Later declarations
// win.
func ParseStyle(style string) (map[string]string, error) {
	decls, err := ParseDeclarations(style)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(decls))
	for _, d := range decls {
		out[d.Property] = d.Value
	}
	return out, nil
}

func splitDeclarations(style string) []string {
	var (
		parts []string
		depth int
		quote rune
		start int
	)
	for i, r := range style {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			parts = append(parts, style[start:i])
			start = i + 1
		}
	}
	return append(parts, style[start:])
}

// parseLength accepts non-negative pixel lengths ("12px", "12.5px"), unitless
// numbers and the keyword auto, which measures as zero.
func parseLength(property, value string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "auto" || v == "0" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, &renewalerrors.StyleError{Property: property, Value: value}
	}
	return n, nil
}

// parseHorizontal returns the left and right sides of a one- to four-value
// box shorthand such as margin, padding or border-width.
func parseHorizontal(property, value string, length func(string, string) (float64, error)) (left, right float64, err error) {
	parts := strings.Fields(value)
	var rightPart, leftPart string
	switch len(parts) {
	case 1:
		rightPart, leftPart = parts[0], parts[0]
	case 2, 3:
		rightPart, leftPart = parts[1], parts[1]
	case 4:
		rightPart, leftPart = parts[1], parts[3]
	default:
		return 0, 0, &renewalerrors.StyleError{Property: property, Value: value}
	}
	if right, err = length(property, rightPart); err != nil {
		return 0, 0, err
	}
	if left, err = length(property, leftPart); err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

var borderWidthKeywords = map[string]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

func parseBorderWidth(property, value string) (float64, error) {
	if w, ok := borderWidthKeywords[strings.ToLower(strings.TrimSpace(value))]; ok {
		return w, nil
	}
	return parseLength(property, value)
}

// parseBorderSide reads the width of a border or border-left/right shorthand.
// A side without a visible style has no width; a style without a width is
// medium.
func parseBorderSide(property, value string) (float64, error) {
	width, style := -1.0, ""
	for _, tok := range strings.Fields(strings.ToLower(value)) {
		switch {
		case borderStyles[tok]:
			style = tok
		case borderWidthKeywords[tok] > 0 || startsNumeric(tok):
			w, err := parseBorderWidth(property, tok)
			if err != nil {
				return 0, err
			}
			width = w
		}
	}
	if style == "" || style == "none" || style == "hidden" {
		return 0, nil
	}
	if width < 0 {
		return borderWidthKeywords["medium"], nil
	}
	return width, nil
}

func startsNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
