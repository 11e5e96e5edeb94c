package animation

import (
	"sort"
	"strings"
)

var namedCurves = map[string]func(float64) float64{
	"linear":      LinearCurve,
	"none":        LinearCurve,
	"swing":       Swing,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"spring":      SpringCurve(8, 0.6),
}

// CurveByName resolves an easing name from carousel configuration.
// The empty name resolves to [Swing]. Names are case-insensitive.
func CurveByName(name string) (func(float64) float64, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Swing, true
	}
	curve, ok := namedCurves[name]
	return curve, ok
}

// CurveNames lists the registered easing names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
