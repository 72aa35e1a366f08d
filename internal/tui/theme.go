package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Title     lipgloss.Style
	Summary   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Row       lipgloss.Style
	ActiveRow lipgloss.Style
	Cursor    lipgloss.Style
	Remove    lipgloss.Style
	Input     lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	ShareFill string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("63"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Summary:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("60")).Bold(true).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		ActiveRow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("118")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Remove:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("215")).Padding(0, 1),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		ShareFill: "#73FF1F",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("62"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Summary:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		ActiveRow: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Remove:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		ShareFill: "#50FA7B",
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
