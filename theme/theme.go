package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
}

func New(palette *Palette) *Theme {
	return &Theme{Palette: palette}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0
	RoleSurface = 0.1
	RoleMuted   = 0.3
	RoleFG      = 0.4
	RoleAccent  = 0.5
	RoleSuccess = 0.6
	RoleWarning = 0.7
	RoleError   = 0.8
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Error() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleError))
}

// Header styles the title bar.
func (t *Theme) Header() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent()).Bold(true)
}

// Dim styles help lines and secondary text.
func (t *Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted())
}

// Preview styles the rendered MIDA document box.
func (t *Theme) Preview() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.FG()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted()).
		Padding(0, 1)
}

// Notice styles the copied-to-clipboard confirmation.
func (t *Theme) Notice() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success())
}

// Fail styles error text.
func (t *Theme) Fail() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error())
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
