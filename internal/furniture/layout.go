package furniture

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// HexColor is a 0xRRGGBB colour written as "#RRGGBB" in YAML.
type HexColor uint32

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = HexColor(v)
	return nil
}

// ParseHex parses "#RRGGBB" (the leading # is optional).
func ParseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("colour %q: %w", s, err)
	}
	return uint32(v), nil
}

// Vec3 is an [x, y, z] triple.
type Vec3 [3]float32

func (v Vec3) mgl() mgl32.Vec3 { return mgl32.Vec3(v) }

// Row is one shelf of vinyls standing side by side along X.
type Row struct {
	Y      float32    `yaml:"y"`
	X      float32    `yaml:"x"`
	Step   float32    `yaml:"step"`
	Colors []HexColor `yaml:"colors"`
}

// Layout describes the shelf and what stands on it.
type Layout struct {
	Position   Vec3     `yaml:"position"`
	PanelColor HexColor `yaml:"panelColor"`
	VinylSize  Vec3     `yaml:"vinylSize"`
	Rows       []Row    `yaml:"rows"`
	TopVinyl   struct {
		Color    HexColor `yaml:"color"`
		Size     Vec3     `yaml:"size"`
		Position Vec3     `yaml:"position"`
	} `yaml:"topVinyl"`
	Caption struct {
		Lines    []string `yaml:"lines"`
		Size     float32  `yaml:"size"`
		Position Vec3     `yaml:"position"`
	} `yaml:"caption"`
	Disc struct {
		Inner    float32 `yaml:"inner"`
		Outer    float32 `yaml:"outer"`
		Position Vec3    `yaml:"position"`
	} `yaml:"disc"`
}

// ParseLayout decodes a YAML shelf layout.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse shelf layout: %w", err)
	}
	if l.Disc.Inner >= l.Disc.Outer && l.Disc.Outer != 0 {
		return Layout{}, fmt.Errorf("parse shelf layout: disc inner radius %v not below outer %v", l.Disc.Inner, l.Disc.Outer)
	}
	return l, nil
}

// DefaultLayout returns the built-in shelf layout.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayout)
}
