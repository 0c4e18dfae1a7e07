package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	BaseStyle = lipgloss.NewStyle()

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("63")).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("235"))

	HelpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	HelpKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252"))

	LoadingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("226")).
		Bold(true)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	ToastInfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("33")).
		Padding(0, 1)

	ToastSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("82")).
		Padding(0, 1)

	ToastWarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("226")).
		Padding(0, 1)
)

// GetToastStyle maps a toast level name to its style.
func GetToastStyle(level string) lipgloss.Style {
	switch level {
	case "success":
		return ToastSuccessStyle
	case "warning":
		return ToastWarningStyle
	case "info":
		return ToastInfoStyle
	default:
		return BaseStyle
	}
}
