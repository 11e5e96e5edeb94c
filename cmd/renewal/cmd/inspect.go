package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-renewal/renewal/pkg/animation"
	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/stage"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Show the resolved configuration and geometry",
		Long: `Show the resolved carousel configuration and the offset of every position.

Flags:
  --json    Print the report as JSON`,
		Usage: "renewal inspect [--json]",
		Run:   runInspect,
	})
}

type inspectReport struct {
	Title         string            `json:"title"`
	ModulePath    string            `json:"module,omitempty"`
	Config        carousel.Config   `json:"config"`
	Strategy      string            `json:"strategy"`
	TotalWidth    float64           `json:"totalWidth"`
	ViewportWidth float64           `json:"viewportWidth"`
	Position      int               `json:"position"`
	Residents     []inspectResident `json:"residents"`
	Easings       []string          `json:"easings"`
}

type inspectResident struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Offset float64 `json:"offset"`
}

func runInspect(args []string) error {
	asJSON := false
	for _, arg := range args {
		switch arg {
		case "--json":
			asJSON = true
		default:
			return fmt.Errorf("unknown flag %q\n\nUsage: renewal inspect [--json]", arg)
		}
	}

	cfg, err := resolveProject()
	if err != nil {
		return err
	}
	strip := stage.New()
	c, err := carousel.New(cfg.Residents, strip, cfg.Carousel)
	if err != nil {
		return err
	}

	report := inspectReport{
		Title:         cfg.Title,
		ModulePath:    cfg.ModulePath,
		Config:        c.Config(),
		Strategy:      c.Strategy(),
		TotalWidth:    c.TotalWidth(),
		ViewportWidth: c.ViewportWidth(),
		Position:      c.Position(),
		Easings:       animation.CurveNames(),
	}
	for i := 0; i < c.Size(); i++ {
		r := c.Resident(i)
		label := strconv.Itoa(i)
		if box, ok := r.(stage.Box); ok && box.Label != "" {
			label = box.Label
		}
		report.Residents = append(report.Residents, inspectResident{
			Label:  label,
			Width:  strip.MeasureWidth(r),
			Offset: c.WidthBefore(i),
		})
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(report)
	return nil
}

func printReport(r inspectReport) {
	conf := r.Config
	fmt.Fprintf(stdout, "Title:      %s\n", r.Title)
	if r.ModulePath != "" {
		fmt.Fprintf(stdout, "Module:     %s\n", r.ModulePath)
	}
	fmt.Fprintf(stdout, "Transition: %s (strategy %s)\n", conf.Transition, r.Strategy)
	easing := conf.Easing
	if easing == "" {
		easing = "swing"
	}
	fmt.Fprintf(stdout, "Speed:      %s, easing %s\n", conf.Speed, easing)
	fmt.Fprintf(stdout, "Visible:    %d, start %d\n", conf.Visible, r.Position)
	fmt.Fprintf(stdout, "Width:      %gpx strip, %gpx viewport\n", r.TotalWidth, r.ViewportWidth)
	fmt.Fprintf(stdout, "Events:     %s\n", strings.Join([]string{
		conf.EventAdvance, conf.EventReverse, conf.EventBeforeMove, conf.EventMove, conf.EventAfterMove,
	}, ", "))
	fmt.Fprintln(stdout)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "RESIDENT", "WIDTH", "OFFSET")
	for i, res := range r.Residents {
		t.Row(strconv.Itoa(i), res.Label, fmt.Sprintf("%gpx", res.Width), fmt.Sprintf("%gpx", res.Offset))
	}
	fmt.Fprintln(stdout, t.Render())
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Easings:    %s\n", strings.Join(r.Easings, ", "))
}
