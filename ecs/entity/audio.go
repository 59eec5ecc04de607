package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/roadrush/assets"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

// NewAudio creates the entity owning the race sound clips. With load false
// the clips are registered by name only, so requests are accepted and
// dropped; headless runs use that.
func NewAudio(w *ecs.World, clips []prefabs.AudioSpec, load bool) (ecs.Entity, error) {
	audioComp, err := buildAudioComponent(clips, load)
	if err != nil {
		return 0, err
	}
	return buildEntity(w, "audio", add(component.AudioComponent, audioComp))
}

func buildAudioComponent(clips []prefabs.AudioSpec, load bool) (*component.Audio, error) {
	n := len(clips)
	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)

	for i, clip := range clips {
		var player *audio.Player
		if load {
			p, err := assets.LoadAudioPlayer(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			player = p
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
		play = append(play, false)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    play,
	}, nil
}
