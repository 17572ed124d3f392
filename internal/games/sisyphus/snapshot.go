package sisyphus

// Snapshot captures the simulation for determinism testing.
type Snapshot struct {
	Tick        uint64
	Paused      bool
	CharacterX  float64
	CharacterY  float64
	PushingUp   bool
	StoneX      float64
	StoneY      float64
	Rotation    float64
	RollingDown bool
	PeakX       float64
	PeakY       float64
	Points      int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	s := g.sim
	return Snapshot{
		Tick:        g.tick,
		Paused:      g.paused,
		CharacterX:  s.Character.Pos.X,
		CharacterY:  s.Character.Pos.Y,
		PushingUp:   s.Character.PushingUp,
		StoneX:      s.Stone.Pos.X,
		StoneY:      s.Stone.Pos.Y,
		Rotation:    s.Stone.Rotation,
		RollingDown: s.Stone.RollingDown,
		PeakX:       s.Terrain.PeakX(),
		PeakY:       s.Terrain.PeakY(),
		Points:      len(s.Terrain.Points),
	}
}
