package terminal

import (
	"medvault-client/internal/app/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorDanger  = lipgloss.Color("#e53935")
	ColorWarning = lipgloss.Color("#FFC107")
	ColorSuccess = lipgloss.Color("#8BC34A")
	ColorInfo    = lipgloss.Color("#2196F3")
	ColorMuted   = lipgloss.Color("#8a94a6")

	UrgencyColors = map[models.UrgencyLevel]lipgloss.Color{
		models.UrgencyHigh:   ColorDanger,
		models.UrgencyMedium: ColorWarning,
		models.UrgencyLow:    ColorInfo,
	}
)

// Styles are bound to one lipgloss renderer so colour support follows the
// writer they print to.
type Styles struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	boxes  map[models.DialogKind]lipgloss.Style
	header lipgloss.Style
	r      *lipgloss.Renderer
}

func NewStyles(r *lipgloss.Renderer) Styles {
	box := func(border lipgloss.Color) lipgloss.Style {
		return r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(64)
	}

	return Styles{
		Title: r.NewStyle().Bold(true),
		Muted: r.NewStyle().Foreground(ColorMuted).Italic(true),
		Bold:  r.NewStyle().Bold(true),
		boxes: map[models.DialogKind]lipgloss.Style{
			models.DialogWarning:      box(ColorWarning),
			models.DialogConfirmation: box(ColorDanger),
			models.DialogProgress:     box(ColorInfo),
			models.DialogSuccess:      box(ColorSuccess),
			models.DialogError:        box(ColorDanger),
		},
		header: r.NewStyle().Bold(true).Underline(true),
		r:      r,
	}
}

func (s Styles) Box(kind models.DialogKind) lipgloss.Style {
	if style, ok := s.boxes[kind]; ok {
		return style
	}
	return s.boxes[models.DialogProgress]
}

func (s Styles) Urgency(level models.UrgencyLevel) lipgloss.Style {
	color, ok := UrgencyColors[level]
	if !ok {
		color = ColorMuted
	}
	return s.r.NewStyle().Bold(true).Foreground(color)
}

func (s Styles) Header() lipgloss.Style {
	return s.header
}
