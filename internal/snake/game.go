// Package snake implements the game state: the snake body, food, score and
// the score-driven speed curve. It depends only on internal/core and
// internal/config, never on the terminal layer.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/avasilenko/termsnake/internal/config"
	"github.com/avasilenko/termsnake/internal/core"
)

// Rendering glyphs, part of the visual contract.
const (
	glyphHead = '@'
	glyphBody = '#'
	glyphFood = '*'
)

// Board chrome: one HUD row on top, border frame around the grid.
const hudRows = 1

// Game holds the full snake game state. All coordinates in snake and food
// are grid-local (0,0 is the top-left playable cell inside the border).
type Game struct {
	cfg config.Config
	rng *rand.Rand

	tick  uint64
	score int

	snake   []core.Point // Head at index 0
	dir     core.Direction
	nextDir core.Direction // Buffered direction, committed once per tick
	food    core.Point

	gridW, gridH   int
	boardX, boardY int // Top-left of the border frame on screen

	screenW, screenH int
	gameOver         bool
	tooSmall         bool
}

// New creates a snake game with the given tuning. Call Reset before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Reset initializes or restarts the game: grid derived from the screen size
// minus chrome, snake of the configured start length centered and moving
// right, score zero, food on a random free cell.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.gridW = rc.ScreenW - 2
	g.gridH = rc.ScreenH - hudRows - 2
	g.boardX = 0
	g.boardY = hudRows

	startLen := g.cfg.Board.StartLength
	if startLen < 1 {
		startLen = 1
	}
	if g.gridW < startLen+2 || g.gridH < 3 {
		g.tooSmall = true
		g.snake = nil
		return
	}
	g.tooSmall = false

	g.initSnake(startLen)
	g.spawnFood()
}

// initSnake places the snake centered on the grid, body extending left.
func (g *Game) initSnake(length int) {
	center := g.gridRect().Center()

	g.snake = make([]core.Point, length)
	for i := range g.snake {
		g.snake[i] = core.Point{X: center.X - i, Y: center.Y}
	}
	g.dir = core.DirRight
	g.nextDir = core.DirRight
}

// gridRect returns the playable area in grid-local coordinates.
func (g *Game) gridRect() core.Rect {
	return core.NewRect(0, 0, g.gridW, g.gridH)
}

// spawnFood places food on a uniformly random cell not occupied by the snake.
func (g *Game) spawnFood() {
	var free []core.Point
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		// Board is full; park the food off-grid so it can never be reached.
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart is only honored after game over
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{Status: g.Status()}
	}

	if g.gameOver || g.tooSmall {
		return core.StepResult{Status: g.Status()}
	}

	g.processInput(in)
	g.advance()

	return core.StepResult{Status: g.Status()}
}

// processInput buffers a direction change for this tick.
// Reversal requests are silently dropped.
func (g *Game) processInput(in core.InputFrame) {
	newDir := g.nextDir

	switch {
	case in.Has(core.ActionUp):
		newDir = core.DirUp
	case in.Has(core.ActionDown):
		newDir = core.DirDown
	case in.Has(core.ActionLeft):
		newDir = core.DirLeft
	case in.Has(core.ActionRight):
		newDir = core.DirRight
	}

	if !newDir.IsOpposite(g.dir) {
		g.nextDir = newDir
	}
}

// advance moves the snake one cell, handling growth and collisions.
// On a fatal collision the move is not committed: the body is unchanged.
func (g *Game) advance() {
	g.dir = g.nextDir
	newHead := g.snake[0].Add(g.dir.Delta())

	// Walls are solid
	if !g.gridRect().Contains(newHead) {
		g.gameOver = true
		return
	}

	// Self collision. The tail cell is exempt only when it vacates this
	// tick, i.e. when the snake does not grow.
	grows := newHead == g.food
	limit := len(g.snake)
	if !grows {
		limit--
	}
	for i := 0; i < limit; i++ {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]core.Point{newHead}, g.snake...)

	if grows {
		g.score += g.cfg.Scoring.FoodPoints
		g.spawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Resize records the new screen size. The board itself is re-derived only on
// Reset; mid-game the game pauses while the board no longer fits and resumes
// when it fits again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	if len(g.snake) == 0 {
		// Never got a playable board; try again at the new size.
		g.Reset(core.RuntimeConfig{Seed: g.rng.Int63(), ScreenW: w, ScreenH: h})
		return
	}
	if !g.gameOver {
		g.tooSmall = w < g.gridW+2 || h < g.gridH+hudRows+2
	}
	// Keep the board centered in a larger window
	g.boardX = core.Max(0, (w-(g.gridW+2))/2)
}

// TickInterval returns the current tick interval, derived from the score.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Speed.IntervalFor(g.score)
}

// Status returns the current externally visible game state.
func (g *Game) Status() core.Status {
	return core.Status{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Render draws the game into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Enlarge the terminal to continue")
		return
	}

	// Border frame around the grid
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, g.gridW+2, g.gridH+2), core.ColorWhite)

	// Food
	if g.food.X >= 0 && g.food.Y >= 0 {
		g.setGridCell(dst, g.food, core.Cell{Rune: glyphFood, Color: core.ColorBrightRed, Bold: true})
	}

	// Snake
	for i, seg := range g.snake {
		if i == 0 {
			g.setGridCell(dst, seg, core.Cell{Rune: glyphHead, Color: core.ColorBrightGreen, Bold: true})
		} else {
			g.setGridCell(dst, seg, core.Cell{Rune: glyphBody, Color: core.ColorGreen})
		}
	}

	if g.gameOver {
		g.renderOverlay(dst,
			fmt.Sprintf("Game Over! Score: %d", g.score),
			"Press R to restart, Q to quit")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextStyled(1, 0, score, core.ColorYellow, false)

	// Title, unless it would collide with the score on a narrow screen
	title := "S N A K E"
	if (dst.Width()-len(title))/2 > len(score)+2 {
		dst.DrawTextCentered(0, title, core.ColorYellow, true)
	}
}

// setGridCell translates grid-local coordinates to screen coordinates,
// offset by the border.
func (g *Game) setGridCell(dst *core.Screen, p core.Point, c core.Cell) {
	dst.SetCell(g.boardX+1+p.X, g.boardY+1+p.Y, c)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed, true)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite, false)
}
