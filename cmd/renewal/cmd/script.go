package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/script"
	"github.com/go-renewal/renewal/pkg/stage"
)

// settleTimeout bounds how long the script command waits for animations.
const settleTimeout = 10 * time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "script",
		Short: "Drive a headless carousel from JavaScript",
		Long: `Run a JavaScript file against a headless carousel.

The script sees a global "carousel" object with advance, reverse, moveTo,
trigger, on, getPosition, getOffset, getConfig, getCurrentItem, size and
isMoving, plus console.log. Running animations are allowed to finish
before the final position is printed.

Example:
  carousel.on("renewal.moved", function (ev) { console.log("at", ev.position); });
  carousel.advance().advance();`,
		Usage: "renewal script <file.js>",
		Run:   runScript,
	})
}

func runScript(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a script file is required\n\nUsage: renewal script <file.js>")
	}
	path := args[0]
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	cfg, err := resolveProject()
	if err != nil {
		return err
	}

	sched := animation.NewScheduler(nil)
	strip := stage.New(stage.WithScheduler(sched))
	c, err := carousel.New(cfg.Residents, strip, cfg.Carousel, carousel.WithScheduler(sched))
	if err != nil {
		return err
	}

	rt := script.New(c, script.WithOutput(stdout))
	defer rt.Close()

	if _, err := rt.Run(path, string(code)); err != nil {
		return err
	}
	settle(sched, settleTimeout)

	fmt.Fprintf(stdout, "position %d/%d, offset %gpx\n", c.Position(), c.Size(), c.Offset())
	if errs := rt.Errors(); len(errs) > 0 {
		return fmt.Errorf("%d listener error(s), first: %w", len(errs), errs[0])
	}
	return nil
}

// settle steps sched in real time until no ticker is active.
func settle(sched *animation.Scheduler, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for sched.HasActive() && time.Now().Before(deadline) {
		time.Sleep(animation.FrameInterval)
		sched.Step()
	}
}
