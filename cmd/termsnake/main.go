// termsnake is a classic Snake game for the terminal.
//
// Running the binary starts the game immediately in the current terminal
// window. Controls: arrow keys or WASD to move, Q to quit, R to restart
// after game over. Tuning lives in ~/.termsnake/config.yaml (optional).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avasilenko/termsnake/internal/config"
	"github.com/avasilenko/termsnake/internal/core"
	"github.com/avasilenko/termsnake/internal/snake"
	"github.com/avasilenko/termsnake/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Classic Snake in your terminal",
	Long: `termsnake is a terminal Snake game: eat food, grow, don't hit
the walls or yourself. The game speeds up as your score climbs.

Controls:
  Arrows / WASD - move
  R             - restart (after game over)
  Q / Ctrl+C    - quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	// Probe the terminal before any game state exists
	width, height := 80, 24 // Defaults when not attached to a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if width < cfg.Board.MinCols || height < cfg.Board.MinRows {
		return fmt.Errorf("terminal too small: %dx%d, need at least %dx%d",
			width, height, cfg.Board.MinCols, cfg.Board.MinRows)
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    time.Now().UnixNano(),
	}

	return tui.Run(snake.New(cfg), rc)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("startup failed", "err", err)
	}
}
