// Package playerbar renders the one-line progress of the previewing track.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/ui/styles"
)

// PreviewLength is the length of a catalog preview clip.
const PreviewLength = 30 * time.Second

const (
	// minTitleWidth is the narrowest title kept before the bar collapses.
	minTitleWidth = 8
	// minBarCells is the narrowest bar drawn; below it only times show.
	minBarCells = 3

	cellFilled = "▓"
	cellEmpty  = "░"
)

// Render draws "Title  ▶  0:12  ▓▓▓░░░  0:30" within width.
// The bar is clamped to PreviewLength.
func Render(track catalog.Track, position time.Duration, width int) string {
	s := styles.T().S()
	position = min(max(position, 0), PreviewLength)

	barWidth := max(width*2/3, 0)
	titleWidth := width - barWidth - 2
	if titleWidth < minTitleWidth {
		titleWidth = width
		barWidth = 0
	}

	title := runewidth.Truncate(track.Title, titleWidth, "…")
	line := s.Playing.Render(title)
	if barWidth == 0 {
		return line
	}
	pad := max(titleWidth-lipgloss.Width(title), 0) + 2
	return line + fmt.Sprintf("%*s", pad, "") + s.Muted.Render(Progress(position, PreviewLength, barWidth))
}

// Progress draws "▶  0:12  ▓▓▓▓░░░░░░  0:30" in exactly width cells, or
// "▶  0:12 / 0:30" when width leaves no room for the bar.
func Progress(position, total time.Duration, width int) string {
	pos, end := formatDuration(position), formatDuration(total)
	prefix := "▶  " + pos + "  "
	suffix := "  " + end

	cells := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	if cells < minBarCells {
		return "▶  " + pos + " / " + end
	}

	filled := 0
	if total > 0 {
		filled = min(int(float64(cells)*float64(position)/float64(total)), cells)
	}
	return prefix + strings.Repeat(cellFilled, filled) + strings.Repeat(cellEmpty, cells-filled) + suffix
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
