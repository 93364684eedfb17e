package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-plus/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	g.entities.Foods.Add(Cell{1, 1})
	g.entities.Obstacles.Add(Cell{2, 2})
	g.entities.Boosts.Add(Cell{3, 3})
	start(t, g, Right)
	g.Step()

	scr := core.NewScreen(80, 30)
	Render(scr, g.Snapshot())
	out := scr.String()

	for _, glyph := range []string{"@", "o", "*", "#", "$", "┌", "┘"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("render missing %q", glyph)
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(scr.Row(0)), "Len 2  FPS 8  D1") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if strings.Contains(out, "Play again") {
		t.Error("game over overlay shown while moving")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	out := Plain(g.Snapshot(), 15, 10)
	for _, want := range []string{"Too small", "Need 22x23", "Have 15x10"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	// Every line fits the narrowest screen a 20x20 board can report on.
	out = Plain(g.Snapshot(), 10, 10)
	for _, want := range []string{"Too small", "Need 22x23", "Have 10x10"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q at width 10 in:\n%s", want, out)
		}
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newBareGame(t, []Cell{{10, 10}, {9, 10}}, Right)
	g.entities.Obstacles.Add(Cell{11, 10})
	start(t, g, Right)
	g.Step()

	out := Plain(g.Snapshot(), 60, 30)
	if !strings.Contains(out, "Play again? (Y/N)") || !strings.Contains(out, "Len 2") {
		t.Errorf("missing game over overlay:\n%s", out)
	}
}

func TestHUDTextBoost(t *testing.T) {
	snap := Snapshot{Snake: []Cell{{0, 0}, {1, 0}, {2, 0}}, Rate: 12, Level: 3, BoostRemaining: 5}
	if got, want := HUDText(snap), "Len 3  FPS 12  D3 BOOST"; got != want {
		t.Errorf("HUDText = %q, want %q", got, want)
	}
}
