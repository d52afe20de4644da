package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (cyan) for headings, readable on most terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// ReplyStyle is the assistant's voice
	ReplyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// NoticeStyle ANSI 3 (yellow) for session notices
	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle ANSI 1 (red) for failed turns
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
