package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

// ansiCodes holds the terminal palette index for each core.Color.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles caches one foreground style per color. ColorDefault keeps the
// terminal foreground.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return RenderRows(s, s.Height())
}

// RenderRows renders the first n rows of a Screen.
// Adjacent cells with the same color share one style run to keep escape
// sequences short.
func RenderRows(s *core.Screen, n int) string {
	n = core.Clamp(n, 0, s.Height())

	var sb strings.Builder
	sb.Grow(s.Width()*n*2 + n)

	var run strings.Builder
	for y := range n {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// statsLine summarizes a running scene for the footer.
func statsLine(st core.SceneStats) string {
	parts := []string{st.Mode}
	if st.Wind != "" && st.Wind != "none" {
		parts = append(parts, "wind "+st.Wind)
	}
	if st.Threshold > 0 {
		parts = append(parts, fmt.Sprintf("density 1/%d", st.Threshold))
	}
	parts = append(parts, fmt.Sprintf("frame %d", st.Frame))
	if st.FPS > 0 {
		parts = append(parts, fmt.Sprintf("%.0f fps", st.FPS))
	}
	if st.Paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, " · ")
}
