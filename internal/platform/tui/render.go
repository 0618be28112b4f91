package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// swatch is how one core.Color appears in a terminal and in a PNG.
type swatch struct {
	ansi string // lipgloss color: ANSI index
	hex  string // screenshot RGB
}

var palette = map[core.Color]swatch{
	core.ColorDefault:       {"", "#c0c0c0"},
	core.ColorRed:           {"1", "#cd3131"},
	core.ColorGreen:         {"2", "#0dbc79"},
	core.ColorYellow:        {"3", "#e5e510"},
	core.ColorBlue:          {"4", "#2472c8"},
	core.ColorMagenta:       {"5", "#bc3fbc"},
	core.ColorCyan:          {"6", "#11a8cd"},
	core.ColorWhite:         {"7", "#e5e5e5"},
	core.ColorBrightRed:     {"9", "#f14c4c"},
	core.ColorBrightGreen:   {"10", "#23d18b"},
	core.ColorBrightYellow:  {"11", "#f5f543"},
	core.ColorBrightBlue:    {"12", "#3b8eea"},
	core.ColorBrightMagenta: {"13", "#d670d6"},
	core.ColorBrightCyan:    {"14", "#29b8db"},
	core.ColorBrightWhite:   {"15", "#ffffff"},
	core.ColorOrange:        {"208", "#ff8700"},
	core.ColorGray:          {"245", "#8a8a8a"},
}

// colorStyles caches one lipgloss style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, sw := range palette {
		style := lipgloss.NewStyle()
		if sw.ansi != "" {
			style = style.Foreground(lipgloss.Color(sw.ansi))
		}
		styles[c] = style
	}
	return styles
}()

// hexFor returns the screenshot color for c, falling back to the default.
func hexFor(c core.Color) string {
	if sw, ok := palette[c]; ok {
		return sw.hex
	}
	return palette[core.ColorDefault].hex
}

// styleFor returns the terminal style for c, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen flushes a frame buffer as one styled string.
// Runs of cells sharing a color are rendered together.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// tooSmallNotice is shown instead of the frame when the terminal cannot fit it.
func tooSmallNotice(width, height, needW, needH int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		styleFor(core.ColorBrightYellow).Bold(true).Render("Terminal too small"),
		"",
		styleFor(core.ColorGray).Render(
			fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, width, height),
		),
	)
	if width <= 0 || height <= 0 {
		return msg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
