package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/avasilenko/termsnake/internal/config"
	"github.com/avasilenko/termsnake/internal/core"
)

// newTestGame creates a reset game with a 20x20 grid (screen 22x23:
// one HUD row plus the border frame around the grid).
func newTestGame(seed int64) *Game {
	g := New(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 22, ScreenH: 23, Seed: seed})
	return g
}

func stepWith(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestResetShape(t *testing.T) {
	g := newTestGame(1)

	if g.gridW != 20 || g.gridH != 20 {
		t.Fatalf("grid = %dx%d, expected 20x20", g.gridW, g.gridH)
	}
	if len(g.snake) != 3 {
		t.Fatalf("snake length = %d, expected 3", len(g.snake))
	}
	// Head centered, body extending left, moving right
	head := g.snake[0]
	if head != (core.Point{X: 10, Y: 10}) {
		t.Errorf("head = %v, expected (10, 10)", head)
	}
	for i := 1; i < len(g.snake); i++ {
		expected := core.Point{X: head.X - i, Y: head.Y}
		if g.snake[i] != expected {
			t.Errorf("segment %d = %v, expected %v", i, g.snake[i], expected)
		}
	}
	if g.dir != core.DirRight {
		t.Errorf("direction = %v, expected right", g.dir)
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("food %v spawned on the snake", g.food)
	}
}

func TestAdvanceKeepsLengthWithoutFood(t *testing.T) {
	g := newTestGame(2)
	g.food = core.Point{X: 0, Y: 0} // Off the snake's path

	start := g.snake[0]
	for i := 0; i < 3; i++ {
		stepWith(g)
	}

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state = %q, expected playing", snap.State)
	}
	if snap.SnakeLen != 3 {
		t.Errorf("length = %d, expected 3", snap.SnakeLen)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.HeadX != start.X+3 || snap.HeadY != start.Y {
		t.Errorf("head = (%d, %d), expected (%d, %d)", snap.HeadX, snap.HeadY, start.X+3, start.Y)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newTestGame(3)
	g.food = g.snake[0].Add(core.DirRight.Delta()) // Directly ahead

	lenBefore := len(g.snake)
	stepWith(g)

	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if len(g.snake) != lenBefore+1 {
		t.Errorf("length = %d, expected %d", len(g.snake), lenBefore+1)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("respawned food %v is on the snake", g.food)
	}
	if g.gameOver {
		t.Error("eating food should not end the game")
	}
}

func TestReversalIgnored(t *testing.T) {
	g := newTestGame(4)
	g.food = core.Point{X: 0, Y: 0}

	start := g.snake[0]
	stepWith(g, core.ActionLeft) // Exact opposite of current direction

	if g.dir != core.DirRight {
		t.Errorf("direction = %v, expected right (reversal must be a no-op)", g.dir)
	}
	if g.snake[0] != start.Add(core.DirRight.Delta()) {
		t.Errorf("head = %v, expected one step right of %v", g.snake[0], start)
	}
}

func TestTurnCommitted(t *testing.T) {
	g := newTestGame(5)
	g.food = core.Point{X: 0, Y: 19}

	start := g.snake[0]
	stepWith(g, core.ActionDown)

	if g.dir != core.DirDown {
		t.Errorf("direction = %v, expected down", g.dir)
	}
	if g.snake[0] != start.Add(core.DirDown.Delta()) {
		t.Errorf("head = %v, expected one step below %v", g.snake[0], start)
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(6)
	g.food = core.Point{X: 0, Y: 0}

	// Drive right until the wall hits
	var ticks int
	for ticks = 0; ticks < 50 && !g.gameOver; ticks++ {
		stepWith(g)
	}

	if !g.gameOver {
		t.Fatal("expected wall collision to end the game")
	}
	// Head started at x=10 on a 20-wide grid: 9 safe moves, fatal on the 10th
	if ticks != 10 {
		t.Errorf("game ended after %d ticks, expected 10", ticks)
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected unchanged 0", g.score)
	}
}

func TestFatalMoveNotCommitted(t *testing.T) {
	g := newTestGame(7)
	g.food = core.Point{X: 0, Y: 0}

	// Park the head on the right wall
	g.snake = []core.Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}
	before := make([]core.Point, len(g.snake))
	copy(before, g.snake)

	stepWith(g)

	if !g.gameOver {
		t.Fatal("expected wall collision")
	}
	for i, seg := range g.snake {
		if seg != before[i] {
			t.Errorf("segment %d moved to %v after fatal collision, expected %v", i, seg, before[i])
		}
	}
}

func TestSelfCollisionVacatingTailExempt(t *testing.T) {
	g := newTestGame(8)
	g.food = core.Point{X: 0, Y: 0}

	// Square loop: head about to enter the tail cell, which vacates this tick.
	g.snake = []core.Point{
		{X: 5, Y: 5}, // Head, arrived moving left
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6}, // Tail, vacates this tick
	}
	g.dir = core.DirLeft
	g.nextDir = core.DirLeft

	stepWith(g, core.ActionDown)

	if g.gameOver {
		t.Fatal("moving into the vacating tail cell must not be fatal")
	}
	if g.snake[0] != (core.Point{X: 5, Y: 6}) {
		t.Errorf("head = %v, expected (5, 6)", g.snake[0])
	}
	if len(g.snake) != 4 {
		t.Errorf("length = %d, expected 4", len(g.snake))
	}
	// No duplicate cells after the move
	seen := make(map[core.Point]bool)
	for _, seg := range g.snake {
		if seen[seg] {
			t.Errorf("duplicate segment at %v", seg)
		}
		seen[seg] = true
	}
}

func TestSelfCollisionTailOccupiedWhenGrowing(t *testing.T) {
	g := newTestGame(9)

	// Same loop, but the head cell would also grow the snake: the tail
	// stays occupied, so the move is fatal.
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6},
	}
	g.dir = core.DirLeft
	g.nextDir = core.DirLeft
	g.food = core.Point{X: 5, Y: 6}

	stepWith(g, core.ActionDown)

	if !g.gameOver {
		t.Fatal("tail cell is occupied on a growing tick; collision expected")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected unchanged 0", g.score)
	}
}

func TestSelfCollisionBody(t *testing.T) {
	g := newTestGame(10)
	g.food = core.Point{X: 0, Y: 0}

	// Head runs straight into a mid-body segment.
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 7, Y: 5},
	}
	g.dir = core.DirUp
	g.nextDir = core.DirUp

	stepWith(g, core.ActionRight) // Into (6, 5), snake[3]

	if !g.gameOver {
		t.Fatal("expected self collision with body segment")
	}
}

func TestFoodNeverSpawnsOnSnake(t *testing.T) {
	g := newTestGame(11)

	for i := 0; i < 100; i++ {
		g.spawnFood()

		if g.isSnakeAt(g.food) {
			t.Errorf("food spawned on snake at %v", g.food)
		}
		if !g.gridRect().Contains(g.food) {
			t.Errorf("food spawned out of bounds at %v", g.food)
		}
	}
}

func TestSpeedDerivedFromScore(t *testing.T) {
	g := newTestGame(12)

	if got := g.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("initial interval = %v, expected 100ms", got)
	}

	g.score = 50
	if got := g.TickInterval(); got != 99*time.Millisecond {
		t.Errorf("interval at 50 points = %v, expected 99ms", got)
	}

	g.score = 100000
	if got := g.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("interval floor = %v, expected 50ms", got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(13)
	g.food = core.Point{X: 0, Y: 0}

	// Score some points, then crash into the wall
	g.score = 30
	for i := 0; i < 50 && !g.gameOver; i++ {
		stepWith(g)
	}
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	stepWith(g, core.ActionRestart)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state after restart = %q, expected playing", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", snap.Score)
	}
	if snap.SnakeLen != 3 {
		t.Errorf("length after restart = %d, expected 3", snap.SnakeLen)
	}
	if snap.HeadX != 10 || snap.HeadY != 10 {
		t.Errorf("head after restart = (%d, %d), expected (10, 10)", snap.HeadX, snap.HeadY)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("food %v spawned on snake after restart", g.food)
	}
}

func TestRestartIgnoredDuringPlay(t *testing.T) {
	g := newTestGame(14)
	g.food = core.Point{X: 0, Y: 0}

	start := g.snake[0]
	stepWith(g, core.ActionRestart)

	// A restart request mid-play is a no-op: the tick proceeds normally
	if g.snake[0] != start.Add(core.DirRight.Delta()) {
		t.Errorf("head = %v, expected normal advance from %v", g.snake[0], start)
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1", g.Snapshot().Tick)
	}
}

func TestNoAdvanceAfterGameOver(t *testing.T) {
	g := newTestGame(15)
	g.food = core.Point{X: 0, Y: 0}

	for i := 0; i < 50 && !g.gameOver; i++ {
		stepWith(g)
	}
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	snapBefore := g.Snapshot()
	stepWith(g, core.ActionUp)
	snapAfter := g.Snapshot()

	if snapAfter.HeadX != snapBefore.HeadX || snapAfter.HeadY != snapBefore.HeadY {
		t.Error("snake moved after game over")
	}
	if snapAfter.State != StateGameOver {
		t.Errorf("state = %q, expected game_over", snapAfter.State)
	}
}

func TestDeterminism(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 12345}

	g1 := New(config.DefaultConfig())
	g1.Reset(rc)
	g2 := New(config.DefaultConfig())
	g2.Reset(rc)

	// Trace a rectangular loop so the run survives long enough to matter
	in := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		in.Clear()
		switch i % 20 {
		case 5:
			in.Set(core.ActionDown)
		case 10:
			in.Set(core.ActionLeft)
		case 15:
			in.Set(core.ActionUp)
		case 0:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestTooSmallBoard(t *testing.T) {
	g := New(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 6, ScreenH: 4, Seed: 16})

	if snap := g.Snapshot(); snap.State != StateTooSmall {
		t.Fatalf("state = %q, expected too_small", snap.State)
	}

	// Steps are no-ops while the board does not fit
	stepWith(g, core.ActionUp)
	if g.gameOver {
		t.Error("too-small board should not produce a game over")
	}

	// Growing the window recovers with a fresh board
	g.Resize(40, 20)
	if snap := g.Snapshot(); snap.State != StatePlaying || snap.SnakeLen != 3 {
		t.Errorf("after resize: %+v, expected fresh playing board", snap)
	}
}

func TestResizePausesWhenBoardNoLongerFits(t *testing.T) {
	g := newTestGame(17)
	g.food = core.Point{X: 0, Y: 0}

	snapBefore := g.Snapshot()
	g.Resize(10, 6)

	if g.Snapshot().State != StateTooSmall {
		t.Fatal("expected too_small after shrinking below the board")
	}
	stepWith(g)
	if got := g.Snapshot(); got.HeadX != snapBefore.HeadX || got.HeadY != snapBefore.HeadY {
		t.Error("snake moved while the window was too small")
	}

	g.Resize(22, 23)
	if g.Snapshot().State != StatePlaying {
		t.Error("expected play to resume once the board fits again")
	}
	stepWith(g)
	if got := g.Snapshot(); got.HeadX != snapBefore.HeadX+1 {
		t.Errorf("head = (%d, %d), expected advance to resume", got.HeadX, got.HeadY)
	}
}

func TestRenderGlyphs(t *testing.T) {
	g := newTestGame(18)
	g.food = core.Point{X: 0, Y: 0}

	dst := core.NewScreen(22, 23)
	g.Render(dst)

	// Head glyph at its grid cell (offset by border: +1, +hudRows+1)
	head := g.snake[0]
	if got := dst.GetCell(head.X+1, head.Y+2); got.Rune != '@' || !got.Bold {
		t.Errorf("head cell = %+v, expected bold '@'", got)
	}
	body := g.snake[1]
	if got := dst.GetCell(body.X+1, body.Y+2); got.Rune != '#' {
		t.Errorf("body cell = %+v, expected '#'", got)
	}
	if got := dst.GetCell(g.food.X+1, g.food.Y+2); got.Rune != '*' {
		t.Errorf("food cell = %+v, expected '*'", got)
	}

	// Score line at the fixed top-left position
	if row := dst.Row(0); len(row) < 10 || row[1:9] != "Score: 0" {
		t.Errorf("HUD row = %q, expected score at top left", row)
	}

	// Border corners
	if got := dst.GetCell(0, 1).Rune; got != '┌' {
		t.Errorf("border corner = %q, expected '┌'", got)
	}
	if got := dst.GetCell(21, 22).Rune; got != '┘' {
		t.Errorf("border corner = %q, expected '┘'", got)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(19)
	g.food = core.Point{X: 0, Y: 0}
	for i := 0; i < 50 && !g.gameOver; i++ {
		stepWith(g)
	}

	dst := core.NewScreen(60, 23)
	g.Render(dst)

	if want := "Game Over! Score: 0"; !containsText(dst, want) {
		t.Errorf("game over screen missing %q", want)
	}
	if want := "Press R to restart, Q to quit"; !containsText(dst, want) {
		t.Errorf("game over screen missing %q", want)
	}
}

func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
