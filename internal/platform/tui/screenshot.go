package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Glyph cell size of gg's built-in 7x13 face.
const (
	shotCellW    = 7
	shotCellH    = 13
	shotBaseline = 11
)

// DefaultScreenshotDir returns ~/.lander/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lander", "screenshots")
	}
	return filepath.Join(home, ".lander", "screenshots")
}

// SaveScreenshot writes the frame as plain text and as a PNG into dir.
// It returns the path of the text file.
func SaveScreenshot(s *core.Screen, dir string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, "lander_"+at.Format("20060102_150405"))
	txtPath := base + ".txt"
	if err := os.WriteFile(txtPath, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	if err := renderPNG(s).SavePNG(base + ".png"); err != nil {
		return txtPath, fmt.Errorf("write screenshot image: %w", err)
	}
	return txtPath, nil
}

// renderPNG draws the frame cell by cell on a black canvas.
func renderPNG(s *core.Screen) *gg.Context {
	dc := gg.NewContext(s.Width()*shotCellW, s.Height()*shotCellH)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			dc.SetHexColor(hexFor(cell.Color))
			dc.DrawString(string(cell.Rune), float64(x*shotCellW), float64(y*shotCellH+shotBaseline))
		}
	}
	return dc
}
