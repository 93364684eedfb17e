package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-plus/internal/config"
)

// State is the snake state machine position.
type State int

const (
	// StateIdle waits for the first accepted direction after a reset.
	StateIdle State = iota
	// StateMoving runs one tick per frame.
	StateMoving
	// StateGameOver waits for a restart.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// startTries bounds the search for a randomized start position.
const startTries = 1000

// ScoreReason says why a score was produced.
type ScoreReason int

const (
	// ScoreGameOver is the final length when the head hit an obstacle.
	ScoreGameOver ScoreReason = iota
	// ScoreTruncated is the length left after the snake bit itself.
	ScoreTruncated
)

func (r ScoreReason) String() string {
	if r == ScoreTruncated {
		return "truncated"
	}
	return "game_over"
}

// ScoreEvent asks the platform to persist a score.
type ScoreEvent struct {
	Score  int
	Reason ScoreReason
}

// StepResult reports what one tick did.
type StepResult struct {
	Moved      bool // False when the game was not Moving
	Teleported bool
	Truncated  bool
	Ate        bool
	Boosted    bool
	Score      *ScoreEvent
}

// Game is one round-based snake game on a fixed grid.
type Game struct {
	cfg     config.Config
	profile config.DifficultyProfile
	grid    Grid
	rng     *rand.Rand

	snake    Snake
	entities Entities
	speed    Speed
	state    State
	tick     uint64 // Frames stepped while Moving, across the whole round
}

// New creates a game for the given configuration and difficulty. Call Reset
// before the first Step.
func New(cfg config.Config, profile config.DifficultyProfile) *Game {
	return &Game{
		cfg:     cfg,
		profile: profile,
		grid:    NewGrid(cfg.Grid.Width, cfg.Grid.Height),
	}
}

// Grid returns the board geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Profile returns the difficulty profile the game was created with.
func (g *Game) Profile() config.DifficultyProfile {
	return g.profile
}

// State returns the state machine position.
func (g *Game) State() State {
	return g.state
}

// Rate returns the frames per second the platform should run at.
func (g *Game) Rate() int {
	return g.speed.Rate
}

// Reset starts a new round: new snake, fresh entities, base speed, Idle.
// It fails with ErrGridTooSmall if the entities cannot fit.
func (g *Game) Reset(seed int64) error {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.speed = newSpeed(g.cfg.Speed)
	g.state = StateIdle
	g.initSnake()

	protect := NewCellSet(g.snake.body...)
	protect.Add(g.snake.Head().Add(g.snake.heading))

	g.entities = NewEntities()
	return g.entities.Populate(g.rng, g.grid, protect, g.profile.ObstacleCount, g.profile.FoodCount)
}

// initSnake places a two-cell snake whose tail and next step are on the grid.
func (g *Game) initSnake() {
	if !g.cfg.Start.Randomized {
		g.snake = newSnake(Cell{X: g.grid.W / 2, Y: g.grid.H / 2}, Right)
		return
	}

	margin := g.cfg.Start.Margin
	var head Cell
	var h Heading
	for range startTries {
		head = Cell{
			X: margin + g.rng.Intn(g.grid.W-2*margin),
			Y: margin + g.rng.Intn(g.grid.H-2*margin),
		}
		h = Headings[g.rng.Intn(len(Headings))]
		if g.grid.InBounds(head.Add(h)) && g.grid.InBounds(head.Add(h.Opposite())) {
			break
		}
	}
	g.snake = newSnake(head, h)
}

// Apply handles one queued event. Only a restart can fail, and only if the
// configuration cannot fit a round.
func (g *Game) Apply(ev Event) error {
	switch ev.Kind {
	case EventDirection:
		if g.state == StateGameOver {
			return nil
		}
		if g.snake.Steer(ev.Heading) && g.state == StateIdle {
			g.state = StateMoving
		}
	case EventRestart:
		if g.state == StateGameOver {
			return g.Reset(g.rng.Int63())
		}
	case EventSpawnFood, EventSpawnBoost, EventRelocateObstacles, EventRelocateFoods:
		if g.state != StateGameOver {
			g.applyTimer(ev.Kind)
		}
	}
	return nil
}

func (g *Game) applyTimer(kind EventKind) {
	attempts := g.cfg.Spawn.PlacementAttempts
	switch kind {
	case EventSpawnFood:
		g.entities.SpawnFood(g.rng, g.grid, attempts, &g.snake)
	case EventSpawnBoost:
		if g.entities.Boosts.Len() < g.cfg.Spawn.MaxBoosts {
			g.entities.SpawnBoost(g.rng, g.grid, attempts, &g.snake)
		}
	case EventRelocateObstacles:
		g.entities.RelocateObstacles(g.rng, g.grid, g.cfg.RelocateObstacleCount(g.profile), &g.snake)
	case EventRelocateFoods:
		g.entities.RelocateFoods(g.rng, g.grid, attempts, &g.snake)
	}
}

// Step advances the game by one tick. It is a no-op unless Moving.
func (g *Game) Step() StepResult {
	if g.state != StateMoving {
		return StepResult{}
	}
	g.tick++
	res := StepResult{Moved: true}

	g.snake.age++
	g.speed.tick(g.cfg.Speed, g.snake.age)

	head := g.snake.nextHead()
	if !g.grid.InBounds(head) {
		head = g.grid.RandomEdgeCell(g.rng)
		res.Teleported = true
	}

	if g.entities.Obstacles.Has(head) {
		g.state = StateGameOver
		res.Score = &ScoreEvent{Score: g.snake.Len(), Reason: ScoreGameOver}
		return res
	}

	if i := g.snake.Index(head); i >= 0 {
		g.snake.truncateAt(i)
		res.Truncated = true
		res.Score = &ScoreEvent{Score: g.snake.Len(), Reason: ScoreTruncated}
	} else {
		g.snake.advance(head)
	}

	if g.entities.Foods.Remove(head) {
		g.snake.grow()
		g.snake.reverse()
		res.Ate = true
	}

	if g.entities.Boosts.Remove(head) {
		g.speed.boost(g.cfg.Speed)
		res.Boosted = true
	}

	return res
}
