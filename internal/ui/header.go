package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := "  "

	parts := []string{
		bg.Render("lsmdash", styles.Logo),
		bg.Render("LSM Database", styles.MutedText),
	}

	if m.baseURL != "" {
		parts = append(parts, bg.Render("●", styles.InfoText)+bg.Spaces(1)+
			bg.Render(truncateMiddle(m.baseURL, 40), styles.Text))
	}

	switch {
	case m.snapshot.WriteInFlight:
		parts = append(parts, bg.Render("Writing...", styles.WarningText.Bold(true)))
	case !m.snapshot.HasStats:
		parts = append(parts, bg.Render("Waiting for stats...", styles.WarningText))
	case m.width >= LayoutCompactWidth:
		parts = append(parts, bg.Render("updated", styles.FaintText)+bg.Spaces(1)+
			bg.Render(m.snapshot.StatsUpdated.Format("15:04:05"), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderFooter renders the key hints bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	bindings := m.keys.ShortHelp()
	if m.showLogs {
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.PageDown, m.keys.ToggleLogs, m.keys.Quit}
	}

	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments, styles.AccentText.Render(h.Key)+":"+styles.MutedText.Render(h.Desc))
	}
	segments = append(segments, styles.AccentText.Render("ctrl+t")+":"+styles.FaintText.Render(m.theme.Name))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}
