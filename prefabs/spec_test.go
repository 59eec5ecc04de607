package prefabs

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestLoadRaceSpecEmbedded(t *testing.T) {
	spec, err := LoadRaceSpec()
	if err != nil {
		t.Fatalf("LoadRaceSpec: %v", err)
	}
	if spec.Canvas.Width != 420 || spec.Canvas.Height != 900 {
		t.Fatalf("canvas = %+v", spec.Canvas)
	}
	if spec.Track.Lanes != 4 || spec.Spawner.Interval != 80 || spec.Spawner.BaseSpeed != 4 {
		t.Fatalf("unexpected tuning %+v %+v", spec.Track, spec.Spawner)
	}
	if spec.Player.Start.X != 180 || spec.Player.Start.Y != 380 {
		t.Fatalf("player start = %+v", spec.Player.Start)
	}
	if spec.Score.HighScoreKey != "racingHighScore" {
		t.Fatalf("high score key = %q", spec.Score.HighScoreKey)
	}

	kinds := map[string]int{}
	for _, o := range spec.Obstacles {
		kinds[o.Kind]++
	}
	if kinds["car"] != 5 || kinds["barrel"] != 1 || kinds["roadblock"] != 1 {
		t.Fatalf("obstacle catalog kinds = %v", kinds)
	}
}

func TestLaneX(t *testing.T) {
	track := TrackSpec{Lanes: 4, LaneWidth: 90, Left: 40}
	tests := []struct {
		lane  int
		width float64
		want  float64
	}{
		{0, 40, 65},
		{1, 40, 155},
		{3, 40, 335},
		{2, 80, 225},
		{0, 50, 60},
	}
	for _, tc := range tests {
		if got := track.LaneX(tc.lane, tc.width); got != tc.want {
			t.Fatalf("LaneX(%d, %v) = %v, want %v", tc.lane, tc.width, got, tc.want)
		}
	}
	if track.Right() != 400 {
		t.Fatalf("Right() = %v", track.Right())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RaceSpec)
		want   string
	}{
		{"zero lanes", func(s *RaceSpec) { s.Track.Lanes = 0 }, "track.lanes"},
		{"zero interval", func(s *RaceSpec) { s.Spawner.Interval = 0 }, "spawner.interval"},
		{"empty catalog", func(s *RaceSpec) { s.Obstacles = nil }, "obstacles must not be empty"},
		{"flat obstacle", func(s *RaceSpec) { s.Obstacles[0].Height = 0 }, "positive size"},
		{"unknown kind", func(s *RaceSpec) { s.Obstacles[0].Kind = "cow" }, "unknown kind"},
		{"road wider than canvas", func(s *RaceSpec) { s.Track.Lanes = 5 }, "fit inside the canvas"},
		{"inverted area", func(s *RaceSpec) { s.PlayArea.MinX = 500 }, "play_area"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := LoadRaceSpec()
			if err != nil {
				t.Fatalf("LoadRaceSpec: %v", err)
			}
			tc.mutate(spec)
			err = spec.Validate()
			if !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("Validate() = %v, want ErrInvalidSpec", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseRaceSpecRejectsGarbage(t *testing.T) {
	if _, err := ParseRaceSpec([]byte("canvas: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
	if _, err := ParseRaceSpec([]byte("canvas: {width: 1, height: 1}")); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	spec, err := ParseRaceSpec(mustLoad(t, RaceSpecFile))
	if err != nil {
		t.Fatalf("ParseRaceSpec: %v", err)
	}
	got := spec.Track.Background.ColorOr(color.White)
	if got != (color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}) {
		t.Fatalf("background = %#v", got)
	}
	var unset *YAMLColor
	if unset.ColorOr(color.Black) != color.Black {
		t.Fatalf("unset color should fall back")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"spawn.tengo", "scripts/spawn.tengo", "prefabs/scripts/spawn.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if !strings.Contains(string(data), "lane") {
			t.Fatalf("LoadScript(%q) returned unexpected content", name)
		}
	}
}

func TestClassify(t *testing.T) {
	if k, ok := classify("prefabs/race.yaml"); !ok || k != ChangeSpec {
		t.Fatalf("yaml not classified as spec")
	}
	if k, ok := classify("prefabs/scripts/spawn.tengo"); !ok || k != ChangeScript {
		t.Fatalf("tengo not classified as script")
	}
	if _, ok := classify("prefabs/notes.txt"); ok {
		t.Fatalf("txt should be ignored")
	}
}

func mustLoad(t *testing.T, name string) []byte {
	t.Helper()
	data, err := Load(name)
	if err != nil {
		t.Fatalf("Load(%q): %v", name, err)
	}
	return data
}
