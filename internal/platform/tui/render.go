package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/core"
)

// styleCache maps core.Style to lipgloss styles.
// Tile palettes are small, so entries are kept for the life of the process.
var styleCache = map[core.Style]lipgloss.Style{
	core.StyleDefault: lipgloss.NewStyle(),
}

// lipglossStyle returns the lipgloss style for a cell style.
func lipglossStyle(st core.Style) lipgloss.Style {
	if s, ok := styleCache[st]; ok {
		return s
	}

	s := lipgloss.NewStyle().Bold(st.Bold)
	if st.FG != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(st.FG))
	}
	if st.BG != core.ColorDefault {
		s = s.Background(lipgloss.Color(st.BG))
	}
	styleCache[st] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cell.Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(lipglossStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
