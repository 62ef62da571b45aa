package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexgrid/pkg/hex"
	"github.com/gravitas-games/hexgrid/pkg/models"
)

// Config holds all settings for one grid preview
type Config struct {
	Layout  LayoutConfig  `yaml:"layout"`
	Shape   ShapeConfig   `yaml:"shape"`
	Cells   []CellConfig  `yaml:"cells"`
	Path    *PathConfig   `yaml:"path"`
	Preview PreviewConfig `yaml:"preview"`
}

// PointConfig is an x/y pair in pixels
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CoordConfig is an axial position
type CoordConfig struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// LayoutConfig holds hex placement settings
type LayoutConfig struct {
	Orientation string      `yaml:"orientation"` // "pointy" or "flat"
	Size        PointConfig `yaml:"size"`
	Origin      PointConfig `yaml:"origin"`
	Spacing     float64     `yaml:"spacing"`
}

// ShapeConfig selects the grid shape and its parameters. Only the
// parameters of the chosen kind are read.
type ShapeConfig struct {
	Kind   string      `yaml:"kind"`
	Radius int         `yaml:"radius"` // hexagon, ring, spiral
	Size   int         `yaml:"size"`   // triangle
	Width  int         `yaml:"width"`  // rectangle, oriented_rectangle
	Height int         `yaml:"height"` // rectangle, oriented_rectangle
	Q1     int         `yaml:"q1"`     // parallelogram
	Q2     int         `yaml:"q2"`
	R1     int         `yaml:"r1"`
	R2     int         `yaml:"r2"`
	Center CoordConfig `yaml:"center"` // ring, spiral
}

// CellConfig overrides the attributes of one cell
type CellConfig struct {
	Q     int               `yaml:"q"`
	R     int               `yaml:"r"`
	Attrs models.Attributes `yaml:",inline"`
}

// PathConfig asks for a shortest path to be highlighted
type PathConfig struct {
	From CoordConfig `yaml:"from"`
	To   CoordConfig `yaml:"to"`
	Fill string      `yaml:"fill"`
}

// PreviewConfig holds image output settings
type PreviewConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Output      string  `yaml:"output"`
	Background  string  `yaml:"background"`
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
	FontSize    float64 `yaml:"font_size"`
	LabelIDs    bool    `yaml:"label_ids"`
}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Layout.Orientation == "" {
		cfg.Layout.Orientation = "pointy"
	}
	if cfg.Layout.Size.X == 0 {
		cfg.Layout.Size.X = 20
	}
	if cfg.Layout.Size.Y == 0 {
		cfg.Layout.Size.Y = cfg.Layout.Size.X
	}
	if cfg.Layout.Spacing == 0 {
		cfg.Layout.Spacing = 1
	}
	if cfg.Shape.Kind == "" {
		cfg.Shape.Kind = "hexagon"
	}
	if cfg.Preview.Width == 0 {
		cfg.Preview.Width = 800
	}
	if cfg.Preview.Height == 0 {
		cfg.Preview.Height = 600
	}
	if cfg.Preview.Output == "" {
		cfg.Preview.Output = "grid.png"
	}
	if cfg.Preview.Background == "" {
		cfg.Preview.Background = "white"
	}
	if cfg.Preview.Fill == "" {
		cfg.Preview.Fill = "lightsteelblue"
	}
	if cfg.Preview.Stroke == "" {
		cfg.Preview.Stroke = "slategray"
	}
	if cfg.Preview.StrokeWidth == 0 {
		cfg.Preview.StrokeWidth = 1.5
	}
	if cfg.Preview.FontSize == 0 {
		cfg.Preview.FontSize = 10
	}
	if cfg.Path != nil && cfg.Path.Fill == "" {
		cfg.Path.Fill = "gold"
	}
}

// Validate checks settings that defaults cannot repair
func (cfg *Config) Validate() error {
	switch cfg.Layout.Orientation {
	case "pointy", "flat":
	default:
		return fmt.Errorf("%w: layout orientation %q", ErrInvalid, cfg.Layout.Orientation)
	}
	if cfg.Layout.Size.X < 0 || cfg.Layout.Size.Y < 0 {
		return fmt.Errorf("%w: negative hex size", ErrInvalid)
	}
	if _, err := cfg.Shape.Shape(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Preview.Width <= 0 || cfg.Preview.Height <= 0 {
		return fmt.Errorf("%w: preview size %dx%d", ErrInvalid, cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.StrokeWidth < 0 || cfg.Preview.FontSize < 0 {
		return fmt.Errorf("%w: negative stroke width or font size", ErrInvalid)
	}
	return nil
}

// Hex converts the coordinate to a hex.
func (c CoordConfig) Hex() hex.Hex { return hex.New(c.Q, c.R) }

// Hex returns the cell position.
func (c CellConfig) Hex() hex.Hex { return hex.New(c.Q, c.R) }

// Point converts to a pixel point.
func (p PointConfig) Point() hex.Point { return hex.Point{X: p.X, Y: p.Y} }

// Layout builds the hex layout
func (l LayoutConfig) Layout() hex.Layout {
	return hex.NewLayout(l.Size.Point(), l.Orientation == "flat", l.Spacing, l.Origin.Point())
}

// Shape converts the named kind into its typed shape
func (s ShapeConfig) Shape() (hex.Shape, error) {
	kind, err := hex.ParseShapeKind(s.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case hex.KindParallelogram:
		return hex.ParallelogramShape{Q1: s.Q1, Q2: s.Q2, R1: s.R1, R2: s.R2}, nil
	case hex.KindTriangle:
		return hex.TriangleShape{Size: s.Size}, nil
	case hex.KindHexagon:
		return hex.HexagonShape{Radius: s.Radius}, nil
	case hex.KindRectangle:
		return hex.RectangleShape{Width: s.Width, Height: s.Height}, nil
	case hex.KindOrientedRectangle:
		return hex.OrientedRectangleShape{Width: s.Width, Height: s.Height}, nil
	case hex.KindRing:
		return hex.RingShape{Center: s.Center.Hex(), Radius: s.Radius}, nil
	case hex.KindSpiral:
		return hex.SpiralShape{Center: s.Center.Hex(), Radius: s.Radius}, nil
	}
	return nil, fmt.Errorf("%w: %s", hex.ErrUnknownShape, kind)
}
