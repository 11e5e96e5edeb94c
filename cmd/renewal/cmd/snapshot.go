package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/snapshot"
	"github.com/go-renewal/renewal/pkg/stage"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render a carousel frame to PNG",
		Long: `Render the settled frame of a carousel position to a PNG image.

Flags:
  --out FILE        Output file (default: renewal.png)
  --position N      Position to move to before rendering (default: start)
  --scale N         Integer zoom factor (default: 1)
  --overflow        Draw residents outside the viewport`,
		Usage: "renewal snapshot [--out FILE] [--position N] [--scale N] [--overflow]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	out      string
	position int
	scale    int
	overflow bool
}

func parseSnapshotArgs(args []string) (snapshotOptions, error) {
	opts := snapshotOptions{out: "renewal.png", position: -1, scale: 1}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}
		switch name {
		case "--out":
			v, err := next()
			if err != nil {
				return opts, err
			}
			opts.out = v
		case "--position", "--scale":
			v, err := next()
			if err != nil {
				return opts, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return opts, fmt.Errorf("%s must be a non-negative integer (got %q)", name, v)
			}
			if name == "--position" {
				opts.position = n
			} else {
				opts.scale = n
			}
		case "--overflow":
			opts.overflow = true
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

func runSnapshot(args []string) error {
	opts, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}

	cfg, err := resolveProject()
	if err != nil {
		return err
	}

	// Snapshots show settled frames.
	conf := cfg.Carousel
	conf.Speed = 0

	strip := stage.New()
	c, err := carousel.New(cfg.Residents, strip, conf)
	if err != nil {
		return err
	}
	if opts.position >= 0 {
		if opts.position >= c.Size() {
			return fmt.Errorf("position %d out of range (carousel has %d residents)", opts.position, c.Size())
		}
		c.MoveTo(opts.position)
	}

	img := snapshot.Render(c, strip, snapshot.Options{
		Title:    cfg.Title,
		Scale:    opts.scale,
		Overflow: opts.overflow,
	})
	if err := snapshot.WriteFile(opts.out, img); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Fprintf(stdout, "wrote %s (%dx%d, position %d)\n", opts.out, b.Dx(), b.Dy(), c.Position())
	return nil
}
