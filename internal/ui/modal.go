package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lsmdash/internal/lsmdb"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// alertModal is a blocking notification that stays up until dismissed.
type alertModal struct {
	title     string
	message   string
	detail    string
	requestID string
}

func newAlertModal(title, message string, err error) alertModal {
	a := alertModal{title: title, message: message}
	if err != nil {
		a.detail = err.Error()
		a.requestID = lsmdb.RequestIDOf(err)
	}
	return a
}

func (a alertModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Dismiss) {
		return a, nil, true
	}
	return a, nil, false
}

func (a alertModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	boxWidth := min(60, maxInt(width-4, 20))

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(a.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(a.message))
	if a.detail != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Width(boxWidth - 6).Render(a.detail))
	}
	if a.requestID != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("request " + a.requestID))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter/esc to dismiss"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(boxWidth).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
