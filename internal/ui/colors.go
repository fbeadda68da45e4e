package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spotify green plus neutrals for everything that isn't playback state.
const (
	green  = "#1DB954"
	amber  = "#FFA500"
	red    = "#E22134"
	white  = "#FFFFFF"
	silver = "#B3B3B3"
	grey   = "#535353"
)

var styles = NewPalette()

// Palette holds one [lipgloss.Style] per element of the `status` output.
type Palette struct {
	playing  lipgloss.Style // ▶ badge
	paused   lipgloss.Style // ⏸ badge
	track    lipgloss.Style
	artist   lipgloss.Style
	album    lipgloss.Style
	elapsed  lipgloss.Style // filled part of the progress bar
	remain   lipgloss.Style // unfilled part
	notice   lipgloss.Style // relay messages and hints
	failure  lipgloss.Style
	unauthed lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		playing:  lipgloss.NewStyle().Foreground(lipgloss.Color(green)).Bold(true),
		paused:   lipgloss.NewStyle().Foreground(lipgloss.Color(amber)).Bold(true),
		track:    lipgloss.NewStyle().Foreground(lipgloss.Color(white)).Bold(true),
		artist:   lipgloss.NewStyle().Foreground(lipgloss.Color(silver)),
		album:    lipgloss.NewStyle().Foreground(lipgloss.Color(grey)).Italic(true),
		elapsed:  lipgloss.NewStyle().Foreground(lipgloss.Color(green)),
		remain:   lipgloss.NewStyle().Foreground(lipgloss.Color(grey)),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color(silver)).Italic(true),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color(red)).Bold(true),
		unauthed: lipgloss.NewStyle().Foreground(lipgloss.Color(amber)),
	}
}

// ProgressBar draws a width-cell bar filled in proportion to progress/duration.
func (p *Palette) ProgressBar(progressMS, durationMS, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if durationMS > 0 {
		filled = min(max(progressMS*width/durationMS, 0), width)
	}
	return p.elapsed.Render(strings.Repeat("━", filled)) + p.remain.Render(strings.Repeat("─", width-filled))
}
