// Package config resolves the CLI's carousel configuration from renewal.yaml,
// RENEWAL_* environment variables and the project's go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/markup"
	"github.com/go-renewal/renewal/pkg/stage"
)

// FileName is the configuration file looked up at the project root.
const FileName = "renewal.yaml"

// Config represents the optional renewal.yaml configuration.
type Config struct {
	Title     string           `yaml:"title,omitempty"`
	Carousel  carousel.Config  `yaml:"carousel"`
	Residents []ResidentConfig `yaml:"residents,omitempty"`
	// Markup names an HTML file, relative to the project root, whose
	// elements become the residents. It takes precedence over Residents.
	Markup string `yaml:"markup,omitempty"`
	// Scale is the number of pixels per terminal cell.
	Scale float64 `yaml:"scale,omitempty"`
}

// ResidentConfig describes one resident in renewal.yaml.
type ResidentConfig struct {
	Label       string  `yaml:"label,omitempty"`
	Width       float64 `yaml:"width"`
	MarginLeft  float64 `yaml:"margin_left,omitempty"`
	MarginRight float64 `yaml:"margin_right,omitempty"`
}

// Env holds the RENEWAL_* overrides. Unset variables leave the file's
// values in place.
type Env struct {
	Title      string         `env:"RENEWAL_TITLE"`
	Transition string         `env:"RENEWAL_TRANSITION"`
	Speed      *time.Duration `env:"RENEWAL_SPEED"`
	Easing     string         `env:"RENEWAL_EASING"`
	Visible    *int           `env:"RENEWAL_VISIBLE"`
	Start      *int           `env:"RENEWAL_START"`
	Markup     string         `env:"RENEWAL_MARKUP"`
	Scale      float64        `env:"RENEWAL_SCALE"`
	Verbose    bool           `env:"RENEWAL_VERBOSE"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	Carousel   carousel.Config
	Residents  []carousel.Resident
	Scale      float64
	Verbose    bool
}

// LoadOptional reads renewal.yaml from dir if present. Carousel options
// missing from the file keep their defaults.
func LoadOptional(dir string) (*Config, error) {
	cfg := &Config{Carousel: carousel.DefaultConfig()}

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// ParseEnv loads the RENEWAL_* overrides.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Resolve loads renewal.yaml (if present), applies environment overrides and
// resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	overrides, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	cfg.apply(overrides)

	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	residents, err := cfg.residents(dir)
	if err != nil {
		return nil, err
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 10
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		Carousel:   cfg.Carousel,
		Residents:  residents,
		Scale:      scale,
		Verbose:    overrides.Verbose,
	}, nil
}

func (c *Config) apply(e Env) {
	if e.Title != "" {
		c.Title = e.Title
	}
	if e.Transition != "" {
		c.Carousel.Transition = carousel.Transition(e.Transition)
	}
	if e.Speed != nil {
		c.Carousel.Speed = *e.Speed
	}
	if e.Easing != "" {
		c.Carousel.Easing = e.Easing
	}
	if e.Visible != nil {
		c.Carousel.Visible = *e.Visible
	}
	if e.Start != nil {
		c.Carousel.Start = *e.Start
	}
	if e.Markup != "" {
		c.Markup = e.Markup
	}
	if e.Scale > 0 {
		c.Scale = e.Scale
	}
}

// residents builds the configured residents. Without markup or a residents
// list, five 120px demo residents are used.
func (c *Config) residents(dir string) ([]carousel.Resident, error) {
	if c.Markup != "" {
		path := c.Markup
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open markup: %w", err)
		}
		defer f.Close()
		return markup.Parse(f)
	}

	if len(c.Residents) == 0 {
		residents := make([]carousel.Resident, 5)
		for i := range residents {
			residents[i] = stage.Box{Label: strconv.Itoa(i + 1), Width: 120}
		}
		return residents, nil
	}

	residents := make([]carousel.Resident, len(c.Residents))
	for i, r := range c.Residents {
		if r.Width < 0 || r.MarginLeft < 0 || r.MarginRight < 0 {
			return nil, fmt.Errorf("resident %d: negative width or margin", i)
		}
		label := r.Label
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		residents[i] = stage.Box{
			Label:       label,
			Width:       r.Width,
			MarginLeft:  r.MarginLeft,
			MarginRight: r.MarginRight,
		}
	}
	return residents, nil
}

// FindProjectRoot walks up from start to the first directory holding
// renewal.yaml or go.mod. An empty start uses the working directory.
func FindProjectRoot(start string) (string, error) {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found above %s", FileName, start)
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir's go.mod, or "" when
// there is no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "renewal"
	}
	return base
}
