package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-renewal/renewal/pkg/animation"
	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Preview the carousel in the terminal",
		Long: `Preview the configured carousel in the terminal.

Keys:
  left, h     Reverse
  right, l    Advance
  home, g     First resident
  end, G      Last resident
  q, ctrl+c   Quit

Resident widths are converted to terminal cells using the configured scale
(pixels per cell, default 10). Slides animate the left offset over the
configured speed.

Flags:
  --inline    Render below the prompt instead of the alternate screen`,
		Usage: "renewal run [--inline]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	inline := false
	for _, arg := range args {
		switch arg {
		case "--inline":
			inline = true
		default:
			return fmt.Errorf("unknown flag %q\n\nUsage: renewal run [--inline]", arg)
		}
	}

	cfg, err := resolveProject()
	if err != nil {
		return err
	}

	sched := animation.NewScheduler(nil)
	strip := tui.NewStrip(cfg.Scale)
	c, err := carousel.New(cfg.Residents, strip, cfg.Carousel, carousel.WithScheduler(sched))
	if err != nil {
		return err
	}

	model := tui.NewModel(c, strip, sched)
	model.Title = cfg.Title

	var opts []tea.ProgramOption
	if !inline {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("terminal preview failed: %w", err)
	}
	return nil
}
