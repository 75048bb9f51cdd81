package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"zoomlife/internal/render"
	"zoomlife/internal/viewport"
	"zoomlife/internal/world"
)

const (
	DefaultWidth    = 900
	DefaultHeight   = 600
	DefaultCellSize = 30
	DefaultTPS      = 10
	DefaultSeed     = 42
	DefaultDensity  = 0.25
)

// ErrInvalidConfig reports a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the start-up parameters of a session. They are fixed
// once the window is open.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize int     `yaml:"cell_size"`
	TPS      int     `yaml:"tps"`
	Seed     int64   `yaml:"seed"`
	Density  float64 `yaml:"density"`
	Fill     string  `yaml:"fill"`
	Pattern  string  `yaml:"pattern"`
	Run      bool    `yaml:"run"`
	Colors   Colors  `yaml:"colors"`
}

// Colors holds the palette as #rrggbb strings.
type Colors struct {
	Dead   string `yaml:"dead"`
	Alive  string `yaml:"alive"`
	Border string `yaml:"border"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		TPS:      DefaultTPS,
		Seed:     DefaultSeed,
		Density:  DefaultDensity,
		Fill:     world.FillUniform,
		Colors: Colors{
			Dead:   "#000000",
			Alive:  "#ffffff",
			Border: "#404040",
		},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "initial cell edge in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize action")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for uniform fill")
	fs.StringVar(&c.Fill, "fill", c.Fill, "randomize mode [uniform|noise]")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern placed at the centre")
	fs.BoolVar(&c.Run, "run", c.Run, "start running instead of paused")
	fs.StringVar(&c.Colors.Dead, "dead-color", c.Colors.Dead, "dead cell colour (#rrggbb)")
	fs.StringVar(&c.Colors.Alive, "alive-color", c.Colors.Alive, "live cell colour (#rrggbb)")
	fs.StringVar(&c.Colors.Border, "border-color", c.Colors.Border, "cell border colour (#rrggbb)")
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFile merges a YAML file into c. Flags already changed on fs keep
// their command-line values.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	changed := map[string]string{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
	if err := c.merge(path); err != nil {
		return err
	}
	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize < viewport.MinCellSize:
		return fmt.Errorf("%w: cell size %d below %d", ErrInvalidConfig, c.CellSize, viewport.MinCellSize)
	case c.CellSize > c.Width || c.CellSize > c.Height:
		return fmt.Errorf("%w: cell size %d larger than the window", ErrInvalidConfig, c.CellSize)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidConfig, c.Density)
	case c.Fill != world.FillUniform && c.Fill != world.FillNoise:
		return fmt.Errorf("%w: fill mode %q", ErrInvalidConfig, c.Fill)
	}
	_, err := c.Palette()
	return err
}

// Palette parses the configured colours.
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	var err error
	if p.Dead, err = ParseHexColor(c.Colors.Dead); err != nil {
		return p, err
	}
	if p.Alive, err = ParseHexColor(c.Colors.Alive); err != nil {
		return p, err
	}
	if p.Border, err = ParseHexColor(c.Colors.Border); err != nil {
		return p, err
	}
	return p, nil
}

// WorldOptions converts the configuration into world construction options.
func (c *Config) WorldOptions() world.Options {
	return world.Options{
		WindowWidth:  c.Width,
		WindowHeight: c.Height,
		CellSize:     c.CellSize,
		Seed:         c.Seed,
		Density:      c.Density,
		Fill:         c.Fill,
		Pattern:      c.Pattern,
		Running:      c.Run,
	}
}

// ParseHexColor parses "#rrggbb" (the leading # is optional) into an opaque
// colour.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalidConfig, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalidConfig, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
