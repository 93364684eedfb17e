package snake

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/snake-plus/internal/config"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Grid = config.GridConfig{Width: 20, Height: 20}
	cfg.Start.Randomized = false
	return cfg
}

func emptyProfile() config.DifficultyProfile {
	return config.DifficultyProfile{Level: 1, Name: "Test"}
}

// newBareGame returns a reset game with no entities and the given body,
// heading along the first two segments.
func newBareGame(t *testing.T, body []Cell, h Heading) *Game {
	t.Helper()
	g := New(testConfig(), emptyProfile())
	if err := g.Reset(1); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	g.snake = Snake{body: slices.Clone(body), heading: h, next: h}
	g.entities = NewEntities()
	return g
}

func start(t *testing.T, g *Game, h Heading) {
	t.Helper()
	if err := g.Apply(DirectionEvent(h)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if g.State() != StateMoving {
		t.Fatalf("state = %v after steering %v, want moving", g.State(), h)
	}
}

func TestFirstTickMovesHead(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	g.entities.Obstacles.Add(Cell{3, 3})
	start(t, g, Right)

	res := g.Step()
	if !res.Moved || res.Teleported || res.Ate || res.Score != nil {
		t.Fatalf("unexpected step result %+v", res)
	}
	want := []Cell{{11, 10}, {10, 10}}
	if got := g.snake.Cells(); !slices.Equal(got, want) {
		t.Errorf("snake = %v, want %v", got, want)
	}
}

func TestStepIsNoOpUnlessMoving(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	before := g.Snapshot()

	if res := g.Step(); res.Moved {
		t.Fatal("Step moved while idle")
	}
	after := g.Snapshot()
	if !slices.Equal(before.Snake, after.Snake) || after.Tick != 0 || after.Age != 0 {
		t.Errorf("idle step changed state: %+v -> %+v", before, after)
	}
}

func TestLeavingEastEdgeTeleportsToBoundary(t *testing.T) {
	for seed := range int64(50) {
		g := newBareGame(t, []Cell{{19, 5}, {18, 5}}, Right)
		g.rng.Seed(seed)
		start(t, g, Right)

		res := g.Step()
		if !res.Teleported {
			t.Fatalf("seed %d: expected teleport", seed)
		}
		head := g.snake.Head()
		if !g.grid.InBounds(head) || !g.grid.OnEdge(head) {
			t.Errorf("seed %d: head %v not on the boundary", seed, head)
		}
		if g.snake.Heading() != Right {
			t.Errorf("seed %d: heading changed to %v", seed, g.snake.Heading())
		}
		if g.snake.Len() < minLength {
			t.Errorf("seed %d: length %d", seed, g.snake.Len())
		}
	}
}

func TestEatingReversesAndGrows(t *testing.T) {
	eat := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	eat.entities.Foods.Add(Cell{11, 10})
	control := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	start(t, eat, Right)
	start(t, control, Right)

	res := eat.Step()
	control.Step()
	if !res.Ate {
		t.Fatal("expected food to be eaten")
	}
	if eat.entities.Foods.Has(Cell{11, 10}) {
		t.Error("food cell still present")
	}
	if got, want := eat.snake.Cells(), []Cell{{10, 10}, {11, 10}}; !slices.Equal(got, want) {
		t.Errorf("reversed body = %v, want %v", got, want)
	}
	if h := eat.snake.Heading(); h != Right.Opposite() {
		t.Errorf("heading = %v, want %v", h, Right.Opposite())
	}
	if eat.snake.PendingGrowth() != 1 {
		t.Errorf("pending growth = %d, want 1", eat.snake.PendingGrowth())
	}

	eat.Step()
	control.Step()
	if got, want := eat.snake.Len(), control.snake.Len()+1; got != want {
		t.Errorf("length after growth tick = %d, want %d", got, want)
	}
	if got, want := eat.snake.Head(), (Cell{9, 10}); got != want {
		t.Errorf("head after reversal = %v, want %v", got, want)
	}
}

func TestSelfIntersectionTruncates(t *testing.T) {
	tests := []struct {
		name       string
		body       []Cell
		growth     int
		want       []Cell
		wantGrowth int
		score      int
	}{
		{
			name:  "short tail",
			body:  []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}},
			want:  []Cell{{6, 5}, {7, 5}},
			score: 2,
		},
		{
			name:  "long tail kept whole",
			body:  []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}, {8, 5}, {9, 5}},
			want:  []Cell{{6, 5}, {7, 5}, {8, 5}, {9, 5}},
			score: 4,
		},
		{
			name:       "pending growth carries over",
			body:       []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}, {8, 5}, {9, 5}},
			growth:     1,
			want:       []Cell{{6, 5}, {7, 5}, {8, 5}, {9, 5}},
			wantGrowth: 1,
			score:      4,
		},
		{
			name:  "bite at tail keeps neck",
			body:  []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}},
			want:  []Cell{{6, 5}, {6, 6}},
			score: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newBareGame(t, tt.body, Up)
			g.snake.growth = tt.growth
			start(t, g, Right)

			res := g.Step()
			if !res.Truncated {
				t.Fatal("expected truncation")
			}
			if g.State() != StateMoving {
				t.Errorf("state = %v, want moving", g.State())
			}
			if res.Score == nil || res.Score.Reason != ScoreTruncated || res.Score.Score != tt.score {
				t.Errorf("score event = %+v, want truncated %d", res.Score, tt.score)
			}
			if got := g.snake.Cells(); !slices.Equal(got, tt.want) {
				t.Errorf("body = %v, want %v", got, tt.want)
			}
			if got := g.snake.PendingGrowth(); got != tt.wantGrowth {
				t.Errorf("pending growth = %d, want %d", got, tt.wantGrowth)
			}
		})
	}
}

func TestTruncationLengthMatchesCut(t *testing.T) {
	body := []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}, {8, 5}, {9, 5}}
	g := newBareGame(t, body, Up)
	start(t, g, Right)

	i := slices.Index(body, Cell{6, 5})
	res := g.Step()
	if got, want := g.snake.Cells(), body[i:]; !slices.Equal(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if res.Score == nil || res.Score.Score != g.snake.Len() {
		t.Errorf("score event = %+v, want the length on the board (%d)", res.Score, g.snake.Len())
	}
}

func TestTruncationOntoFood(t *testing.T) {
	body := []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}, {8, 5}, {9, 5}}
	g := newBareGame(t, body, Up)
	g.entities.Foods.Add(Cell{6, 5})
	start(t, g, Right)

	res := g.Step()
	if !res.Truncated || !res.Ate {
		t.Fatalf("result = %+v, want truncated and ate", res)
	}
	if res.Score == nil || res.Score.Reason != ScoreTruncated || res.Score.Score != 4 {
		t.Errorf("score event = %+v, want truncated 4", res.Score)
	}
	if g.entities.Foods.Has(Cell{6, 5}) {
		t.Error("food cell still present")
	}
	if got, want := g.snake.Cells(), []Cell{{9, 5}, {8, 5}, {7, 5}, {6, 5}}; !slices.Equal(got, want) {
		t.Errorf("body = %v, want the cut reversed %v", got, want)
	}
	if h := g.snake.Heading(); h != Right {
		t.Errorf("heading = %v, want %v", h, Right)
	}
	if g.snake.PendingGrowth() != 1 {
		t.Errorf("pending growth = %d, want 1", g.snake.PendingGrowth())
	}

	g.Step()
	if got := g.snake.Len(); got != 5 {
		t.Errorf("length after growth tick = %d, want 5", got)
	}
}

func TestObstacleEndsRound(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}, {8, 10}}, Right)
	g.entities.Obstacles.Add(Cell{11, 10})
	start(t, g, Right)

	res := g.Step()
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	if res.Score == nil || res.Score.Reason != ScoreGameOver || res.Score.Score != 3 {
		t.Errorf("score event = %+v, want game over 3", res.Score)
	}
	if g.snake.Has(Cell{11, 10}) {
		t.Error("head entered the obstacle cell")
	}

	// Input and timers are ignored until restart.
	if err := g.Apply(DirectionEvent(Up)); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(Event{Kind: EventSpawnFood}); err != nil {
		t.Fatal(err)
	}
	if g.State() != StateGameOver || g.entities.Foods.Len() != 0 {
		t.Error("game over state reacted to events")
	}
	if res := g.Step(); res.Moved {
		t.Error("Step moved after game over")
	}

	if err := g.Apply(Event{Kind: EventRestart}); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if g.State() != StateIdle || g.snake.Len() != 2 {
		t.Errorf("after restart: state %v, len %d", g.State(), g.snake.Len())
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	start(t, g, Right)
	g.Step()
	if err := g.Apply(Event{Kind: EventRestart}); err != nil {
		t.Fatal(err)
	}
	if g.State() != StateMoving || g.Snapshot().Tick != 1 {
		t.Error("restart reset a running round")
	}
}

func TestOppositeSteerIgnored(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)

	if err := g.Apply(DirectionEvent(Left)); err != nil {
		t.Fatal(err)
	}
	if g.State() != StateIdle {
		t.Fatal("opposite heading started the round")
	}

	// Up then Left in one frame: Left is opposite to the applied heading.
	start(t, g, Up)
	if err := g.Apply(DirectionEvent(Left)); err != nil {
		t.Fatal(err)
	}
	g.Step()
	if got, want := g.snake.Head(), (Cell{10, 9}); got != want {
		t.Errorf("head = %v, want %v", got, want)
	}
}

func TestResetGridTooSmall(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid = config.GridConfig{Width: 3, Height: 3}
	cfg.Start.Randomized = false

	g := New(cfg, config.DifficultyProfile{Level: 1, ObstacleCount: 5, FoodCount: 2})
	if err := g.Reset(1); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("Reset error = %v, want ErrGridTooSmall", err)
	}
}

func TestResetProtectsStartZone(t *testing.T) {
	cfg := testConfig()
	profile := config.DifficultyProfile{Level: 3, ObstacleCount: 200, FoodCount: 197}
	g := New(cfg, profile)
	if err := g.Reset(7); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	ahead := g.snake.Head().Add(g.snake.Heading())
	for _, c := range append(g.snake.Cells(), ahead) {
		if g.entities.Obstacles.Has(c) || g.entities.Foods.Has(c) {
			t.Errorf("entity placed on protected cell %v", c)
		}
	}
	if g.entities.Obstacles.Len() != 200 || g.entities.Foods.Len() != 197 {
		t.Errorf("counts = %d obstacles, %d food", g.entities.Obstacles.Len(), g.entities.Foods.Len())
	}
}

func TestRandomizedStartStaysInsideMargin(t *testing.T) {
	cfg := config.DefaultConfig()
	profile, err := cfg.Profile(1)
	if err != nil {
		t.Fatal(err)
	}

	for seed := range int64(100) {
		g := New(cfg, profile)
		if err := g.Reset(seed); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, c := range g.snake.Cells() {
			if !g.grid.InBounds(c) {
				t.Fatalf("seed %d: body cell %v out of bounds", seed, c)
			}
		}
		if !g.grid.InBounds(g.snake.Head().Add(g.snake.Heading())) {
			t.Errorf("seed %d: first step leaves the grid", seed)
		}
	}
}

func TestBoostSpawnRespectsLimit(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	for range 5 {
		if err := g.Apply(Event{Kind: EventSpawnBoost}); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := g.entities.Boosts.Len(), g.cfg.Spawn.MaxBoosts; got != want {
		t.Errorf("boosts = %d, want %d", got, want)
	}
}

func TestBoostCellStartsBoost(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	g.entities.Boosts.Add(Cell{11, 10})
	start(t, g, Right)

	res := g.Step()
	if !res.Boosted || g.entities.Boosts.Len() != 0 {
		t.Fatalf("boost not consumed: %+v", res)
	}
	speed := g.cfg.Speed
	if got, want := g.Rate(), speed.BaseRate+speed.BoostRateIncrease; got != want {
		t.Errorf("rate = %d, want %d", got, want)
	}
}

func TestTimersKeepSetsDisjoint(t *testing.T) {
	cfg := config.DefaultConfig()
	profile, err := cfg.Profile(3)
	if err != nil {
		t.Fatal(err)
	}
	g := New(cfg, profile)
	if err := g.Reset(99); err != nil {
		t.Fatal(err)
	}

	kinds := []EventKind{EventSpawnFood, EventSpawnBoost, EventRelocateObstacles, EventRelocateFoods}
	for i := range 200 {
		if err := g.Apply(Event{Kind: kinds[i%len(kinds)]}); err != nil {
			t.Fatal(err)
		}
		checkInvariants(t, g)
	}
	if got := g.entities.Obstacles.Len(); got != profile.ObstacleCount {
		t.Errorf("obstacles after relocation = %d, want %d", got, profile.ObstacleCount)
	}
}

func TestLongRunInvariants(t *testing.T) {
	cfg := config.DefaultConfig()
	headings := Headings[:]
	for level := config.MinLevel; level <= config.MaxLevel; level++ {
		profile, err := cfg.Profile(level)
		if err != nil {
			t.Fatal(err)
		}
		g := New(cfg, profile)
		if err := g.Reset(int64(level)); err != nil {
			t.Fatal(err)
		}

		for i := range 3000 {
			switch {
			case g.State() == StateGameOver:
				if err := g.Apply(Event{Kind: EventRestart}); err != nil {
					t.Fatal(err)
				}
			case i%7 == 0:
				g.Apply(DirectionEvent(headings[g.rng.Intn(len(headings))]))
			case i%50 == 0:
				g.Apply(Event{Kind: EventSpawnFood})
			case i%120 == 0:
				g.Apply(Event{Kind: EventRelocateObstacles})
			case i%130 == 0:
				g.Apply(Event{Kind: EventRelocateFoods})
			case i%300 == 0:
				g.Apply(Event{Kind: EventSpawnBoost})
			}
			g.Step()
			checkInvariants(t, g)
			if t.Failed() {
				t.Fatalf("level %d: invariant broken at tick %d", level, i)
			}
		}
	}
}

func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	body := g.snake.Cells()
	if len(body) < minLength {
		t.Errorf("snake length %d", len(body))
	}
	seen := NewCellSet()
	for _, c := range body {
		if !g.grid.InBounds(c) {
			t.Errorf("body cell %v out of bounds", c)
		}
		if seen.Has(c) {
			t.Errorf("body repeats cell %v", c)
		}
		seen.Add(c)
		if g.entities.Obstacles.Has(c) && g.State() != StateGameOver {
			t.Errorf("snake overlaps obstacle %v", c)
		}
		if g.entities.Foods.Has(c) || g.entities.Boosts.Has(c) {
			t.Errorf("snake overlaps entity %v", c)
		}
	}
	for c := range g.entities.Foods {
		if g.entities.Obstacles.Has(c) || g.entities.Boosts.Has(c) {
			t.Errorf("food %v overlaps another entity", c)
		}
	}
	for c := range g.entities.Boosts {
		if g.entities.Obstacles.Has(c) {
			t.Errorf("boost %v overlaps an obstacle", c)
		}
	}
	if !g.snake.Heading().IsUnit() {
		t.Errorf("heading %v is not a unit vector", g.snake.Heading())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()
	profile, _ := cfg.Profile(2)
	run := func() Snapshot {
		g := New(cfg, profile)
		if err := g.Reset(12345); err != nil {
			t.Fatal(err)
		}
		for i := range 400 {
			switch i {
			case 0:
				g.Apply(DirectionEvent(Right))
			case 40:
				g.Apply(DirectionEvent(Down))
			case 90:
				g.Apply(Event{Kind: EventRelocateObstacles})
			case 120:
				g.Apply(DirectionEvent(Left))
			}
			g.Step()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !slices.Equal(a.Snake, b.Snake) || !slices.Equal(a.Obstacles, b.Obstacles) ||
		!slices.Equal(a.Foods, b.Foods) || a.Tick != b.Tick || a.Rate != b.Rate {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}
