package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todolist/internal/model"
)

// Theme bundles styles, status glyphs and the panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Cancelled lipgloss.Style
	Selected, DoneText, CancelledText                        lipgloss.Style

	GlyphPending, GlyphDone, GlyphCancelled, GlyphDestroyed string
	Border                                                  lipgloss.Border
	BorderColor                                             lipgloss.Color
}

var current = build("classic")

func SetTheme(name string) {
	current = build(name)
}

// Current exposes what renderers need.
func Current() Theme { return current }

func build(name string) Theme {
	s := lipgloss.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:           "neon",
			Title:          s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:          s().Faint(true),
			Accent:         s().Foreground(lipgloss.Color("14")),
			Success:        s().Foreground(lipgloss.Color("10")),
			Error:          s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:        s().Foreground(lipgloss.Color("11")),
			Cancelled:      s().Foreground(lipgloss.Color("8")),
			Selected:       s().Bold(true).Reverse(true),
			DoneText:       s().Faint(true).Strikethrough(true),
			CancelledText:  s().Faint(true).Italic(true),
			GlyphPending:   "◻",
			GlyphDone:      "◼",
			GlyphCancelled: "⊘",
			GlyphDestroyed: "✖",
			Border:         lipgloss.RoundedBorder(),
			BorderColor:    lipgloss.Color("13"),
		}
	case "mono":
		plain := s()
		return Theme{
			Name:           "mono",
			Title:          plain,
			Muted:          plain,
			Accent:         plain,
			Success:        plain,
			Error:          plain,
			Pending:        plain,
			Cancelled:      plain,
			Selected:       s().Reverse(true),
			DoneText:       plain,
			CancelledText:  plain,
			GlyphPending:   "[ ]",
			GlyphDone:      "[x]",
			GlyphCancelled: "[-]",
			GlyphDestroyed: "[!]",
			Border:         lipgloss.NormalBorder(),
			BorderColor:    lipgloss.Color(""),
		}
	default: // classic
		return Theme{
			Name:           "classic",
			Title:          s().Bold(true),
			Muted:          s().Faint(true),
			Accent:         s().Foreground(lipgloss.Color("12")),
			Success:        s().Foreground(lipgloss.Color("42")),
			Error:          s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:        s().Foreground(lipgloss.Color("214")),
			Cancelled:      s().Foreground(lipgloss.Color("8")),
			Selected:       s().Bold(true).Reverse(true),
			DoneText:       s().Faint(true).Strikethrough(true),
			CancelledText:  s().Faint(true).Italic(true),
			GlyphPending:   "☐",
			GlyphDone:      "☑",
			GlyphCancelled: "☒",
			GlyphDestroyed: "✖",
			Border:         lipgloss.RoundedBorder(),
			BorderColor:    lipgloss.Color("8"),
		}
	}
}

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// Glyph is the styled status marker for s.
func (t Theme) Glyph(s model.Status) string {
	switch s {
	case model.StatusDone:
		return t.Success.Render(t.GlyphDone)
	case model.StatusCancelled:
		return t.Cancelled.Render(t.GlyphCancelled)
	case model.StatusDestroyed:
		return t.Error.Render(t.GlyphDestroyed)
	default:
		return t.Pending.Render(t.GlyphPending)
	}
}

// Text styles item text for its status.
func (t Theme) Text(s model.Status, text string) string {
	switch s {
	case model.StatusDone:
		return t.DoneText.Render(text)
	case model.StatusCancelled, model.StatusDestroyed:
		return t.CancelledText.Render(text)
	}
	return text
}
