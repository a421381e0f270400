package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pondhop/pondhop/internal/config"
	"github.com/pondhop/pondhop/internal/game"
)

// hudHeight is the number of screen rows above the board (status line plus
// separator).
const hudHeight = 2

// renderGame draws the HUD, the pond, and any prompt for the current
// phase. The renderer reads the Game value and never mutates it.
func renderGame(engine *game.Engine, g game.Game, theme config.Theme, width, height, shimmer int) string {
	var sb strings.Builder

	hud := fmt.Sprintf(" pondhop — Level %d: %s   Leaves left: %d   Moves: %d",
		g.LevelNumber+1, g.Level.Name, len(g.Leaves), g.Moves)
	sb.WriteString(truncate(hud, width))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", max(width, 0)))
	sb.WriteString("\n")

	sb.WriteString(renderBoard(engine, g, theme, width, shimmer))

	switch {
	case engine.LevelCompleted(g):
		sb.WriteString("\n\n")
		sb.WriteString(promptStyle.Render(" Pond cleared! Press enter for the next one."))
	case engine.Stuck(g):
		sb.WriteString("\n\n")
		sb.WriteString(promptStyle.Render(" Stuck — no leaf in reach. Press enter to retry."))
	default:
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render(" arrows/wasd hop · shift+arrows leap · click a bright leaf · r restart · q quit"))
	}

	return sb.String()
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderBoard draws the pond grid centered horizontally.
func renderBoard(engine *game.Engine, g game.Game, theme config.Theme, width, shimmer int) string {
	waterStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.WaterColor))
	leafStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.LeafColor))
	reachStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ReachableColor))
	frogStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.FrogColor))
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.MarkColor))

	reachable := make(map[game.Position]bool)
	for _, leaf := range engine.Reachable(g) {
		reachable[leaf.Pos] = true
	}

	boardW := g.Level.Width()
	pad := (width - boardW) / 2
	if pad < 0 {
		pad = 0
	}
	margin := strings.Repeat(" ", pad)

	var sb strings.Builder
	for y := 0; y < g.Level.Height(); y++ {
		if y > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(margin)
		for x := 0; x < boardW; x++ {
			pos := game.Position{X: x, Y: y}
			switch {
			case g.Frog.Leaf.Pos.Equals(pos):
				sb.WriteString(frogStyle.Render(theme.FrogGlyphs[g.Frog.Dir]))
			case reachable[pos]:
				sb.WriteString(reachStyle.Render(theme.LeafGlyph))
			case hasLeafAt(g, pos):
				sb.WriteString(leafStyle.Render(theme.LeafGlyph))
			case g.Level.MarkPos.Equals(pos):
				sb.WriteString(markStyle.Render(theme.MarkGlyph))
			case (x+y+shimmer)%4 == 0:
				// The water shimmers: a quarter of the cells blank out,
				// drifting one diagonal per tick.
				sb.WriteString(" ")
			default:
				sb.WriteString(waterStyle.Render(theme.WaterGlyph))
			}
		}
	}

	return sb.String()
}

func hasLeafAt(g game.Game, pos game.Position) bool {
	_, ok := g.FindLeaf(pos)
	return ok
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return s[:width]
}
