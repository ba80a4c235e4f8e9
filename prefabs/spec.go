package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSandboxSpec is the spec file loaded when none is given.
const DefaultSandboxSpec = "sandbox.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decodeSpec(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decodeSpec unmarshals filename over dst. Keys missing from the file leave
// dst's current values in place.
func decodeSpec(filename string, dst any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type SandboxSpec struct {
	Name     string       `yaml:"name"`
	Quadtree QuadtreeSpec `yaml:"quadtree"`
	Camera   CameraSpec   `yaml:"camera"`
	Unit     UnitSpec     `yaml:"unit"`
	Frame    FrameSpec    `yaml:"frame"`
	Palette  PaletteSpec  `yaml:"palette"`
}

type QuadtreeSpec struct {
	Depth int `yaml:"depth"`
}

type CameraSpec struct {
	Zoom          float64 `yaml:"zoom"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`
	EdgeThreshold int     `yaml:"edge_threshold"`
	ZoomStep      float64 `yaml:"zoom_step"`
	MinZoom       float64 `yaml:"min_zoom"`
	Overscan      float64 `yaml:"overscan"`
}

type UnitSpec struct {
	Radius float64 `yaml:"radius"`
}

type FrameSpec struct {
	TargetFPS int `yaml:"target_fps"`
}

type PaletteSpec struct {
	// Script names a tengo file under scripts/. Empty uses the built-in colors.
	Script     string    `yaml:"script"`
	Background YAMLColor `yaml:"background"`
}

// LoadSandboxSpec decodes a sandbox spec over DefaultSandbox and validates
// it. An explicit zero in the file is kept, so scroll_speed: 0 or
// edge_threshold: 0 turns edge scrolling off.
func LoadSandboxSpec(filename string) (*SandboxSpec, error) {
	if filename == "" {
		filename = DefaultSandboxSpec
	}
	spec := DefaultSandbox()
	if err := decodeSpec(filename, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// DefaultSandbox returns the built-in tuning used for keys a spec file omits.
func DefaultSandbox() SandboxSpec {
	return SandboxSpec{
		Quadtree: QuadtreeSpec{Depth: 3},
		Camera: CameraSpec{
			Zoom:          1,
			ScrollSpeed:   5,
			EdgeThreshold: 70,
			ZoomStep:      0.05,
			MinZoom:       0.1,
			Overscan:      1.5,
		},
		Unit:  UnitSpec{Radius: 30},
		Frame: FrameSpec{TargetFPS: 60},
	}
}

func (s *SandboxSpec) Validate() error {
	switch {
	case s.Quadtree.Depth < 0:
		return fmt.Errorf("quadtree.depth must not be negative, got %d", s.Quadtree.Depth)
	case s.Camera.MinZoom <= 0:
		return fmt.Errorf("camera.min_zoom must be positive, got %v", s.Camera.MinZoom)
	case s.Camera.Zoom <= 0:
		return fmt.Errorf("camera.zoom must be positive, got %v", s.Camera.Zoom)
	case s.Camera.ScrollSpeed < 0:
		return fmt.Errorf("camera.scroll_speed must not be negative, got %v", s.Camera.ScrollSpeed)
	case s.Camera.EdgeThreshold < 0:
		return fmt.Errorf("camera.edge_threshold must not be negative, got %d", s.Camera.EdgeThreshold)
	case s.Camera.ZoomStep < 0:
		return fmt.Errorf("camera.zoom_step must not be negative, got %v", s.Camera.ZoomStep)
	case s.Camera.Overscan <= 0:
		return fmt.Errorf("camera.overscan must be positive, got %v", s.Camera.Overscan)
	case s.Unit.Radius <= 0:
		return fmt.Errorf("unit.radius must be positive, got %v", s.Unit.Radius)
	case s.Frame.TargetFPS <= 0:
		return fmt.Errorf("frame.target_fps must be positive, got %d", s.Frame.TargetFPS)
	}
	return nil
}

// BackgroundColor returns the clear color; unset means black.
func (s *SandboxSpec) BackgroundColor() color.Color {
	if s.Palette.Background.Color == nil {
		return color.Black
	}
	return s.Palette.Background.Color
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
