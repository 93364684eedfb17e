package snake

// Snapshot is the read-only view of a game after a tick. The platform renders
// it and the replay recorder stores parts of it.
type Snapshot struct {
	Tick           uint64
	Age            int
	Level          int
	LevelName      string
	State          State
	GridW          int
	GridH          int
	Snake          []Cell // Head first
	Heading        Heading
	PendingGrowth  int
	Obstacles      []Cell // Row-major
	Foods          []Cell
	Boosts         []Cell
	Rate           int
	BaseRate       int
	BoostRemaining int
}

// Length returns the snake length.
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// Head returns the head cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Boosted reports whether a boost was active.
func (s Snapshot) Boosted() bool {
	return s.BoostRemaining > 0
}

// GameOver reports whether the round has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Age:            g.snake.age,
		Level:          g.profile.Level,
		LevelName:      g.profile.Name,
		State:          g.state,
		GridW:          g.grid.W,
		GridH:          g.grid.H,
		Snake:          g.snake.Cells(),
		Heading:        g.snake.heading,
		PendingGrowth:  g.snake.growth,
		Obstacles:      g.entities.Obstacles.Sorted(),
		Foods:          g.entities.Foods.Sorted(),
		Boosts:         g.entities.Boosts.Sorted(),
		Rate:           g.speed.Rate,
		BaseRate:       g.speed.BaseRate,
		BoostRemaining: g.speed.BoostRemaining,
	}
}
