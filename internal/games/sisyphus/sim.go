package sisyphus

import (
	"math/rand"

	"github.com/vovakirdan/sisyphus/internal/config"
)

// Sim owns the whole simulation state. The game loop drives it one frame
// at a time; input handlers mutate the character's intent flags between
// frames.
type Sim struct {
	Terrain   *Terrain
	Character *Character
	Stone     *Stone
	Tick      uint64
}

// NewSim builds the mountain for box and places the actors on it.
// rng feeds terrain jitter and the stone outline.
func NewSim(cfg config.SisyphusConfig, box Box, rng *rand.Rand) *Sim {
	terrain := NewTerrain(box, NewGenerator(cfg.Terrain, rng))
	character := NewCharacter(cfg.Character, terrain)
	stone := NewStone(cfg.Stone, rng)
	stone.Place(terrain, character)

	return &Sim{
		Terrain:   terrain,
		Character: character,
		Stone:     stone,
	}
}

// Step advances one frame: the character first, then the stone reacting
// to the character's new position.
func (s *Sim) Step() {
	s.Character.Update(s.Terrain)
	s.Stone.Update(s.Terrain, s.Character)
	s.Tick++
}

// Resize regenerates the mountain for a new bounding box. The actors are
// kept: the character is clamped and re-glued to the new slope, the stone
// is re-seated, or sent back to the start if the mountain shrank past it.
func (s *Sim) Resize(box Box) {
	s.Terrain.Regenerate(box)
	s.Character.settle(s.Terrain)

	if s.Stone.Pos.X < s.Terrain.Left() || s.Stone.Pos.X >= s.Terrain.Right() {
		s.Stone.Reset(s.Terrain)
		return
	}
	s.Stone.Pos.Y = s.Stone.surfaceAt(s.Terrain, s.Stone.Pos.X)
}
