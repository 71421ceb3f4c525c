package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(seed int64) *Game {
	return New(Options{Seed: seed, FoodRetryLimit: 1000})
}

// setHeading makes d both the last and the next heading.
func setHeading(g *Game, d Direction) {
	g.direction = d
	g.nextDir = d
}

func TestInitialSnakeMatchesReferenceLayout(t *testing.T) {
	g := newTestGame(1)

	want := []core.Rect{
		core.NewRect(12, 36, 12, 12),
		core.NewRect(0, 36, 12, 12),
		core.NewRect(-12, 36, 12, 12),
	}
	got := g.Snake()
	if len(got) != len(want) {
		t.Fatalf("initial snake length = %d, expected %d", len(got), len(want))
	}
	for i, c := range got {
		if r := g.Board().CellRect(c); r != want[i] {
			t.Errorf("segment %d at %v, expected %v", i, r, want[i])
		}
	}
	if g.Direction() != DirRight {
		t.Errorf("initial direction = %v, expected right", g.Direction())
	}
	if g.State() != StateRunning || !g.ClockRunning() {
		t.Errorf("new game should be running with the clock on, got %v clock=%v", g.State(), g.ClockRunning())
	}
	food, placed := g.Food()
	if !placed {
		t.Fatal("the first frame should already show food")
	}
	if !g.Board().Playable(food) || g.occupies(food) {
		t.Errorf("initial food %v not on a free playable cell", food)
	}
}

func TestAdvanceRightWithoutFood(t *testing.T) {
	g := newTestGame(2)
	g.food = Cell{X: 20, Y: 20}

	if !g.Advance() {
		t.Fatal("first move right should succeed")
	}

	want := []Cell{{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3}}
	got := g.Snake()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snake = %v, expected %v", got, want)
		}
	}
	if r := g.Board().CellRect(got[0]); r.X != 24 || r.Y != 36 {
		t.Errorf("head pixel = (%d,%d), expected (24,36)", r.X, r.Y)
	}
}

func TestBoundaryCollision(t *testing.T) {
	tests := []struct {
		name  string
		snake []Cell
		dir   Direction
	}{
		{"right edge", []Cell{{24, 10}, {23, 10}, {22, 10}}, DirRight},
		{"left edge", []Cell{{0, 10}, {1, 10}, {2, 10}}, DirLeft},
		{"scoreboard strip", []Cell{{5, 2}, {5, 3}, {5, 4}}, DirUp},
		{"bottom edge", []Cell{{5, 24}, {5, 23}, {5, 22}}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(3)
			g.snake = tc.snake
			setHeading(g, tc.dir)
			g.score = 4

			if out := g.OnTick(); out != TickCollided {
				t.Errorf("OnTick() = %v, expected collided", out)
			}
			if g.State() != StateOver {
				t.Errorf("state = %v, expected over", g.State())
			}
			if g.ClockRunning() {
				t.Error("clock should stop when the game ends")
			}
			if g.HighScore() != 4 {
				t.Errorf("high score = %d, expected 4", g.HighScore())
			}
			if len(g.Snake()) != len(tc.snake) {
				t.Error("snake should not move on collision")
			}
		})
	}
}

func TestEdgeCellsArePlayable(t *testing.T) {
	g := newTestGame(4)
	g.snake = []Cell{{23, 2}, {22, 2}, {21, 2}}
	setHeading(g, DirRight)

	if !g.Advance() {
		t.Fatal("moving into the last column of the top playable row should succeed")
	}
	if g.Snake()[0] != (Cell{X: 24, Y: 2}) {
		t.Errorf("head = %v, expected (24,2)", g.Snake()[0])
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(5)
	g.snake = []Cell{
		{X: 5, Y: 5}, // head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	setHeading(g, DirRight)

	if g.Advance() {
		t.Fatal("moving onto a body cell should fail")
	}
	if g.State() != StateOver {
		t.Errorf("state = %v, expected over after self collision", g.State())
	}
}

func TestEatFoodGrowsAndScores(t *testing.T) {
	g := newTestGame(6)
	head := g.Snake()[0]
	g.food = Cell{X: head.X + 1, Y: head.Y}
	g.foodPlaced = true
	before := len(g.Snake())

	if !g.Advance() {
		t.Fatal("moving onto food should succeed")
	}

	if got := len(g.Snake()); got != before+1 {
		t.Errorf("snake length = %d, expected %d", got, before+1)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	if _, placed := g.Food(); placed {
		t.Error("food should be unplaced right after being eaten")
	}
	if g.Snake()[0] != (Cell{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, expected the food cell", g.Snake()[0])
	}
}

func TestOnTickReportsEatingAndReplacesFood(t *testing.T) {
	g := newTestGame(7)
	head := g.Snake()[0]
	g.food = Cell{X: head.X + 1, Y: head.Y}
	g.foodPlaced = true

	if out := g.OnTick(); out != TickAte {
		t.Fatalf("OnTick() = %v, expected ate", out)
	}
	food, placed := g.Food()
	if !placed {
		t.Fatal("tick pass should place new food")
	}
	if g.occupies(food) {
		t.Errorf("new food %v placed on the snake", food)
	}
}

func TestNonEatingTickShifts(t *testing.T) {
	g := newTestGame(8)
	g.food = Cell{X: 20, Y: 20}
	g.foodPlaced = true
	before := g.Snake()

	if out := g.OnTick(); out != TickMoved {
		t.Fatalf("OnTick() = %v, expected moved", out)
	}

	after := g.Snake()
	if len(after) != len(before) {
		t.Fatalf("length changed from %d to %d", len(before), len(after))
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d = %v, expected %v", i, after[i], before[i-1])
		}
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
}

func TestReversalRejected(t *testing.T) {
	tests := []struct {
		heading Direction
		key     core.Action
	}{
		{DirRight, core.ActionLeft},
		{DirLeft, core.ActionRight},
		{DirUp, core.ActionDown},
		{DirDown, core.ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			g := newTestGame(9)
			setHeading(g, tc.heading)
			g.OnKey(tc.key)
			if g.Direction() != tc.heading {
				t.Errorf("direction = %v, expected %v to be kept", g.Direction(), tc.heading)
			}
		})
	}
}

func TestTurnAccepted(t *testing.T) {
	g := newTestGame(10)
	g.OnKey(core.ActionDown)
	if g.Direction() != DirDown {
		t.Errorf("direction = %v, expected down", g.Direction())
	}
	g.OnTick()
	g.OnKey(core.ActionLeft)
	if g.Direction() != DirLeft {
		t.Errorf("direction = %v, expected left", g.Direction())
	}
}

func TestTurnsBetweenTicksCannotReverse(t *testing.T) {
	tests := []struct {
		name string
		keys []core.Action
		head Cell
		dir  Direction
	}{
		{"up then left", []core.Action{core.ActionUp, core.ActionLeft}, Cell{X: 1, Y: 2}, DirUp},
		{"down then left", []core.Action{core.ActionDown, core.ActionLeft}, Cell{X: 1, Y: 4}, DirDown},
		{"last valid turn wins", []core.Action{core.ActionUp, core.ActionDown}, Cell{X: 1, Y: 4}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(9)
			g.food = Cell{X: 20, Y: 20}

			for _, k := range tc.keys {
				g.OnKey(k)
			}
			if out := g.OnTick(); out != TickMoved {
				t.Fatalf("OnTick() = %v, expected moved", out)
			}
			if head := g.Snake()[0]; head != tc.head {
				t.Errorf("head = %v, expected %v", head, tc.head)
			}
			if g.Direction() != tc.dir {
				t.Errorf("direction = %v, expected %v", g.Direction(), tc.dir)
			}
		})
	}
}

func TestPauseSuspendsTicks(t *testing.T) {
	g := newTestGame(11)
	g.OnTick()
	g.OnKey(core.ActionPauseToggle)

	if g.State() != StatePaused || g.ClockRunning() {
		t.Fatalf("expected paused with clock stopped, got %v clock=%v", g.State(), g.ClockRunning())
	}

	before := g.Snapshot()
	snakeBefore := g.Snake()
	for range 50 {
		if out := g.OnTick(); out != TickIdle {
			t.Fatalf("paused tick = %v, expected idle", out)
		}
	}
	if g.Snapshot() != before {
		t.Errorf("snapshot changed while paused: %+v vs %+v", g.Snapshot(), before)
	}
	for i, c := range g.Snake() {
		if c != snakeBefore[i] {
			t.Fatalf("snake changed while paused")
		}
	}

	// Directions are ignored while paused.
	g.OnKey(core.ActionDown)
	if g.Direction() != DirRight {
		t.Errorf("direction changed while paused: %v", g.Direction())
	}

	g.OnKey(core.ActionPauseToggle)
	if g.State() != StateRunning || !g.ClockRunning() {
		t.Errorf("expected running after resume, got %v clock=%v", g.State(), g.ClockRunning())
	}
}

func TestNewGameResets(t *testing.T) {
	tests := []struct {
		name      string
		highScore int
		score     int
		expected  int
	}{
		{"lower score keeps high score", 10, 3, 10},
		{"higher score replaces high score", 2, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(12)
			g.highScore = tc.highScore
			g.score = tc.score
			g.snake = []Cell{{5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}}
			g.state = StateOver
			g.clockRunning = false

			g.OnKey(core.ActionNewGame)

			if g.Round() != 2 {
				t.Errorf("round = %d, expected 2", g.Round())
			}
			if g.Score() != 0 {
				t.Errorf("score = %d, expected 0", g.Score())
			}
			if len(g.Snake()) != 3 {
				t.Errorf("snake length = %d, expected 3", len(g.Snake()))
			}
			if g.State() != StateRunning || !g.ClockRunning() {
				t.Errorf("expected running with clock, got %v clock=%v", g.State(), g.ClockRunning())
			}
			if g.HighScore() != tc.expected {
				t.Errorf("high score = %d, expected %d", g.HighScore(), tc.expected)
			}
			if food, placed := g.Food(); !placed || g.occupies(food) {
				t.Errorf("fresh round should have free food, got %v placed=%v", food, placed)
			}
		})
	}
}

func TestNewGameWhilePaused(t *testing.T) {
	g := newTestGame(13)
	g.OnTick()
	g.OnKey(core.ActionPauseToggle)
	g.OnKey(core.ActionNewGame)

	if g.State() != StatePaused {
		t.Errorf("new game should be ignored while paused, state = %v", g.State())
	}
	if g.Ticks() != 1 {
		t.Errorf("round should not restart, ticks = %d", g.Ticks())
	}

	g = New(Options{Seed: 13, NewGameWhilePaused: true})
	g.OnTick()
	g.OnKey(core.ActionPauseToggle)
	g.OnKey(core.ActionNewGame)
	if g.State() != StateRunning || g.Ticks() != 0 {
		t.Errorf("with the switch on, new game should reset, got %v ticks=%d", g.State(), g.Ticks())
	}
}

func TestOverIgnoresTicksAndKeys(t *testing.T) {
	g := newTestGame(14)
	g.snake = []Cell{{24, 10}, {23, 10}, {22, 10}}
	g.OnTick()
	if g.State() != StateOver {
		t.Fatalf("setup: expected over, got %v", g.State())
	}

	before := g.Snapshot()
	g.OnKey(core.ActionDown)
	g.OnKey(core.ActionPauseToggle)
	if out := g.OnTick(); out != TickIdle {
		t.Errorf("tick while over = %v, expected idle", out)
	}
	if g.Snapshot() != before {
		t.Errorf("state changed while over: %+v vs %+v", g.Snapshot(), before)
	}
}

func TestQuitStopsClock(t *testing.T) {
	g := newTestGame(15)
	g.OnKey(core.ActionQuit)

	if !g.QuitRequested() {
		t.Error("quit should be requested")
	}
	if g.ClockRunning() {
		t.Error("quit should stop the clock")
	}
}

func TestUnmappedSymbolIgnored(t *testing.T) {
	g := newTestGame(16)
	before := g.Snapshot()
	g.OnKey(core.ActionNone)
	g.OnKey(core.Action(99))
	if g.Snapshot() != before {
		t.Error("unmapped symbols should be ignored")
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	keys := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	r := rand.New(rand.NewSource(42))

	for round := range 50 {
		g := New(Options{Seed: int64(round + 1), FoodRetryLimit: 100})
		for step := 0; step < 2000 && g.State() == StateRunning; step++ {
			if r.Intn(3) == 0 {
				g.OnKey(keys[r.Intn(len(keys))])
			}
			out := g.OnTick()

			if g.State() == StateRunning {
				assertDistinct(t, g.Snake())
				if food, placed := g.Food(); placed && g.occupies(food) {
					t.Fatalf("round %d: food %v on snake", round, food)
				}
			} else {
				if out != TickCollided {
					t.Fatalf("round %d: game ended with outcome %v", round, out)
				}
				if g.ClockRunning() {
					t.Fatalf("round %d: clock still running after game over", round)
				}
			}
		}
	}
}

func assertDistinct(t *testing.T, cells []Cell) {
	t.Helper()
	seen := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			t.Fatalf("duplicate snake cell %v in %v", c, cells)
		}
		seen[c] = true
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := range 100 {
		var key core.Action
		switch i {
		case 5:
			key = core.ActionDown
		case 12:
			key = core.ActionRight
		case 30:
			key = core.ActionUp
		}
		if key != core.ActionNone {
			g1.OnKey(key)
			g2.OnKey(key)
		}
		g1.OnTick()
		g2.OnTick()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestDirectionHelpers(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		u, o := d.Unit(), d.Opposite().Unit()
		if u.X+o.X != 0 || u.Y+o.Y != 0 {
			t.Errorf("%v: unit vectors of opposites should cancel", d)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("unknown direction should panic")
		}
	}()
	Direction(42).Unit()
}
