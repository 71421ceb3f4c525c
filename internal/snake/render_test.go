package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderOrderRunning(t *testing.T) {
	g := newTestGame(1)
	g.food = Cell{X: 10, Y: 10}
	g.foodPlaced = true

	ops := g.Render()

	// scoreboard, food, 3 snake cells, 2 score texts
	if len(ops) != 7 {
		t.Fatalf("len(ops) = %d, expected 7", len(ops))
	}

	if ops[0].Kind != OpFillRect || ops[0].Rect != core.NewRect(0, 0, 300, 24) || ops[0].Color != ColorScoreboard {
		t.Errorf("first op should fill the scoreboard strip, got %+v", ops[0])
	}
	if ops[1].Rect != core.NewRect(120, 120, 12, 12) || ops[1].Color != ColorFood {
		t.Errorf("second op should fill the food cell, got %+v", ops[1])
	}
	for i, c := range g.Snake() {
		op := ops[2+i]
		if op.Kind != OpFillRect || op.Color != ColorSnake || op.Rect != g.Board().CellRect(c) {
			t.Errorf("snake op %d = %+v, expected fill at %v", i, op, c)
		}
	}
	if ops[5].Text != "SCORE: 0" || ops[5].Kind != OpText {
		t.Errorf("score op = %+v", ops[5])
	}
	if ops[6].Text != "HIGHSCORE: 0" || ops[6].Kind != OpText {
		t.Errorf("high score op = %+v", ops[6])
	}
}

func TestRenderWithoutFood(t *testing.T) {
	g := newTestGame(2)
	g.foodPlaced = false
	for _, op := range g.Render() {
		if op.Color == ColorFood {
			t.Errorf("unexpected food op %+v", op)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(3)
	g.score = 5
	g.snake = []Cell{{24, 10}, {23, 10}, {22, 10}}
	g.OnTick()

	ops := g.Render()
	n := len(ops)
	if n < 2 {
		t.Fatalf("too few ops: %d", n)
	}

	banner := ops[n-2]
	if banner.Kind != OpTextCentered || banner.Text != BannerText || banner.Rect != g.Board().Bounds() {
		t.Errorf("banner op = %+v", banner)
	}
	hint := ops[n-1]
	if hint.Kind != OpText || !strings.Contains(hint.Text, "space") {
		t.Errorf("hint op = %+v", hint)
	}

	var sawHigh bool
	for _, op := range ops {
		if op.Text == "HIGHSCORE: 5" {
			sawHigh = true
		}
	}
	if !sawHigh {
		t.Error("high score text should reflect the finished round")
	}
}

func TestRenderIsPure(t *testing.T) {
	g := newTestGame(4)
	g.foodPlaced = false
	before := g.Snapshot()

	first := g.Render()
	second := g.Render()

	if g.Snapshot() != before {
		t.Error("Render mutated the game")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Render is not stable for an unchanged game")
	}
	if _, placed := g.Food(); placed {
		t.Error("Render must not place food")
	}
}

func TestSnapshotTracksRound(t *testing.T) {
	g := newTestGame(5)
	g.food = Cell{X: 20, Y: 20}
	g.foodPlaced = true
	g.OnTick()
	g.OnKey(core.ActionDown)
	g.OnTick()

	snap := g.Snapshot()
	if snap.Tick != 2 {
		t.Errorf("tick = %d, expected 2", snap.Tick)
	}
	if snap.Head != (Cell{X: 2, Y: 4}) {
		t.Errorf("head = %v, expected (2,4)", snap.Head)
	}
	if snap.Dir != DirDown || snap.SnakeLen != 3 || snap.State != StateRunning {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}
