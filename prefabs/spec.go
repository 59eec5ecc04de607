package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is returned by Validate for tuning values the engine cannot
// run with.
var ErrInvalidSpec = errors.New("prefabs: invalid race spec")

const RaceSpecFile = "race.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadRaceSpec loads and validates race.yaml, preferring the copy on disk.
func LoadRaceSpec() (*RaceSpec, error) {
	spec, err := LoadSpec[RaceSpec](RaceSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseRaceSpec decodes and validates a race spec from raw YAML.
func ParseRaceSpec(data []byte) (*RaceSpec, error) {
	var spec RaceSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal race spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type RaceSpec struct {
	Canvas    CanvasSpec     `yaml:"canvas"`
	Track     TrackSpec      `yaml:"track"`
	PlayArea  PlayAreaSpec   `yaml:"play_area"`
	Player    PlayerSpec     `yaml:"player"`
	Spawner   SpawnerSpec    `yaml:"spawner"`
	Score     ScoreSpec      `yaml:"score"`
	HUD       HUDSpec        `yaml:"hud"`
	Audio     []AudioSpec    `yaml:"audio"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`
}

type CanvasSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TrackSpec struct {
	Lanes         int        `yaml:"lanes"`
	LaneWidth     float64    `yaml:"lane_width"`
	Left          float64    `yaml:"left"`
	VergeWidth    float64    `yaml:"verge_width"`
	Background    *YAMLColor `yaml:"background"`
	VergeColor    *YAMLColor `yaml:"verge_color"`
	DashColor     *YAMLColor `yaml:"dash_color"`
	DashWidth     float64    `yaml:"dash_width"`
	Dash          []float64  `yaml:"dash"`
	ScrollSpeed   float64    `yaml:"scroll_speed"`
	ScrollModulus float64    `yaml:"scroll_modulus"`
}

type PlayAreaSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Start           PointSpec  `yaml:"start"`
	Width           float64    `yaml:"width"`
	Height          float64    `yaml:"height"`
	MoveSpeed       float64    `yaml:"move_speed"`
	PointerSpeed    float64    `yaml:"pointer_speed"`
	PointerDeadZone float64    `yaml:"pointer_dead_zone"`
	Sprite          string     `yaml:"sprite"`
	Color           *YAMLColor `yaml:"color"`
}

type SpawnerSpec struct {
	Interval  int     `yaml:"interval"`
	BaseSpeed float64 `yaml:"base_speed"`
	// Ramp is the frame count at which obstacle speed has doubled.
	Ramp   float64 `yaml:"ramp"`
	Script string  `yaml:"script"`
	Seed   uint64  `yaml:"seed"`
}

type ScoreSpec struct {
	FramesPerPoint int    `yaml:"frames_per_point"`
	HighScoreKey   string `yaml:"high_score_key"`
}

type TextSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

type HUDSpec struct {
	Score        TextSpec   `yaml:"score"`
	Speed        TextSpec   `yaml:"speed"`
	Fill         *YAMLColor `yaml:"fill"`
	Outline      *YAMLColor `yaml:"outline"`
	OutlineWidth float64    `yaml:"outline_width"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type ObstacleSpec struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	Sprite string     `yaml:"sprite"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

var obstacleKinds = map[string]bool{"car": true, "barrel": true, "roadblock": true}

func (s *RaceSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	var problems []string
	bad := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		bad("canvas must have a positive size")
	}
	if s.Track.Lanes <= 0 {
		bad("track.lanes must be positive")
	}
	if s.Track.LaneWidth <= 0 {
		bad("track.lane_width must be positive")
	}
	if s.Track.Left < 0 || s.Track.Right() > s.Canvas.Width {
		bad("track must fit inside the canvas")
	}
	if s.Track.ScrollModulus <= 0 {
		bad("track.scroll_modulus must be positive")
	}
	if s.PlayArea.MinX > s.PlayArea.MaxX || s.PlayArea.MinY > s.PlayArea.MaxY {
		bad("play_area min must not exceed max")
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		bad("player must have a positive size")
	}
	if s.Spawner.Interval <= 0 {
		bad("spawner.interval must be positive")
	}
	if s.Spawner.BaseSpeed <= 0 {
		bad("spawner.base_speed must be positive")
	}
	if s.Spawner.Ramp <= 0 {
		bad("spawner.ramp must be positive")
	}
	if s.Score.FramesPerPoint <= 0 {
		bad("score.frames_per_point must be positive")
	}
	if len(s.Obstacles) == 0 {
		bad("obstacles must not be empty")
	}
	for i, o := range s.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			bad("obstacles[%d] (%s) must have a positive size", i, o.Name)
		}
		if !obstacleKinds[o.Kind] {
			bad("obstacles[%d] (%s) has unknown kind %q", i, o.Name, o.Kind)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(problems, "; "))
	}
	return nil
}

// LaneX returns the x at which an object of the given width sits centered in
// lane.
func (t TrackSpec) LaneX(lane int, width float64) float64 {
	return t.Left + float64(lane)*t.LaneWidth + (t.LaneWidth-width)/2
}

// Right is the x of the road's right edge.
func (t TrackSpec) Right() float64 {
	return t.Left + float64(t.Lanes)*t.LaneWidth
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

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
