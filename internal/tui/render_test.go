package tui

import (
	"strings"
	"testing"

	"github.com/avasilenko/termsnake/internal/core"
)

func TestRenderScreenPreservesContent(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawText(0, 0, "Score: 0")
	s.SetCell(2, 1, core.Cell{Rune: '@', Color: core.ColorBrightGreen, Bold: true})
	s.SetCell(3, 1, core.Cell{Rune: '#', Color: core.ColorGreen})
	s.SetCell(5, 2, core.Cell{Rune: '*', Color: core.ColorBrightRed, Bold: true})

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d newlines, expected 2", got)
	}
	for _, want := range []string{"Score: 0", "@", "#", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Color: core.Color(200)})

	out := RenderScreen(s)
	if !strings.Contains(out, "x") {
		t.Error("cell with unmapped color was dropped")
	}
}
