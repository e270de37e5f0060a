package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lsmdash/internal/lsmdb"
	"github.com/five82/lsmdash/internal/state"
)

const loadingText = "Loading..."

// memTableText formats the memtable size card value.
func memTableText(s state.Snapshot) string {
	if !s.HasStats {
		return loadingText
	}
	return fmt.Sprintf("%d bytes", s.Stats.MemTableSize)
}

// sstableText formats the SSTable count card value.
func sstableText(s state.Snapshot) string {
	if !s.HasStats {
		return loadingText
	}
	return strconv.Itoa(s.Stats.SSTableCount)
}

// setButtonText is the label of the write button.
func setButtonText(s state.Snapshot) string {
	if s.WriteInFlight {
		return "Writing..."
	}
	return "Set Key"
}

// initInputs builds the three form inputs and seeds them from the store.
func (m *Model) initInputs() {
	placeholders := [fieldCount]string{
		fieldKey:    "user:123",
		fieldValue:  "Alice Smith",
		fieldSearch: "Search key...",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		m.inputs[i] = ti
	}
	m.inputs[fieldKey].SetValue(m.snapshot.PendingKey)
	m.inputs[fieldValue].SetValue(m.snapshot.PendingValue)
	m.inputs[fieldSearch].SetValue(m.snapshot.QuerySearchKey)
	m.applyInputStyles()
	m.inputs[m.focus].Focus()
}

// applyInputStyles recolors the inputs for the current theme.
func (m *Model) applyInputStyles() {
	styles := m.theme.Styles()
	for i := range m.inputs {
		m.inputs[i].PromptStyle = styles.AccentText
		m.inputs[i].TextStyle = styles.Text
		m.inputs[i].PlaceholderStyle = styles.FaintText
		m.inputs[i].Cursor.Style = styles.AccentText
	}
}

// setFocus moves keyboard focus to the given input.
func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

// syncInput mirrors an input's text into the store.
func (m *Model) syncInput(f field) {
	v := m.inputs[f].Value()
	switch f {
	case fieldKey:
		m.store.SetPendingKey(v)
	case fieldValue:
		m.store.SetPendingValue(v)
	case fieldSearch:
		m.store.SetQuerySearchKey(v)
	}
	m.snapshot = m.store.Snapshot()
}

// panelWidths splits the terminal between the write and read panels.
func (m Model) panelWidths() (left, right int, stacked bool) {
	if m.width < LayoutCompactWidth {
		w := maxInt(m.width, LayoutMinPanelWidth)
		return w, w, true
	}
	left = m.width / 2
	return left, m.width - left, false
}

// inputWidth is the text width left inside a panel after border, padding,
// prompt and cursor.
func inputWidth(panelWidth int) int {
	return maxInt(panelWidth-7, 1)
}

// resize recomputes widget sizes after a terminal resize.
func (m *Model) resize() {
	left, right, _ := m.panelWidths()
	m.inputs[fieldKey].Width = inputWidth(left)
	m.inputs[fieldValue].Width = inputWidth(left)
	m.inputs[fieldSearch].Width = inputWidth(right)

	m.logViewport.Width = maxInt(m.width-4, 1)
	m.logViewport.Height = maxInt(m.height-chromeHeight-2, 1)
	m.refreshLogContent()
}

// renderMain renders the header, body and footer.
func (m Model) renderMain() string {
	bodyHeight := maxInt(m.height-chromeHeight, 1)

	var body string
	if m.showLogs {
		body = m.renderLogs()
	} else {
		body = m.renderDashboard()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderDashboard renders the stats cards above the write and read panels.
func (m Model) renderDashboard() string {
	left, right, stacked := m.panelWidths()
	write := m.renderWritePanel(left)
	read := m.renderReadPanel(right)

	var forms string
	if stacked {
		forms = lipgloss.JoinVertical(lipgloss.Left, write, read)
	} else {
		forms = lipgloss.JoinHorizontal(lipgloss.Top, write, read)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), forms)
}

// renderStats renders the memtable and SSTable cards.
func (m Model) renderStats() string {
	styles := m.theme.Styles()
	half := m.width / 2
	mem := m.statCard("MEMTABLE SIZE", memTableText(m.snapshot), styles.SuccessText, half)
	sst := m.statCard("SSTABLES", sstableText(m.snapshot), styles.WarningText, m.width-half)
	return lipgloss.JoinHorizontal(lipgloss.Top, mem, sst)
}

func (m Model) statCard(label, value string, valueStyle lipgloss.Style, width int) string {
	styles := m.theme.Styles()
	if value == loadingText {
		valueStyle = styles.FaintText
	}
	content := styles.StatLabel.Render(label) + "\n" + styles.StatValue.Inherit(valueStyle).Render(value)
	return styles.Panel.Width(maxInt(width-2, 1)).Render(content)
}

// renderWritePanel renders the key/value form.
func (m Model) renderWritePanel(width int) string {
	styles := m.theme.Styles()
	focused := m.focus == fieldKey || m.focus == fieldValue

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("▌ Write Data"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel("Key", fieldKey))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldKey].View())
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel("Value", fieldValue))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldValue].View())
	b.WriteString("\n\n")

	button := styles.ButtonDisabled
	if m.snapshot.CanSet() {
		button = styles.Button
	}
	b.WriteString(button.Render(setButtonText(m.snapshot)))

	return m.panelStyle(focused).Width(maxInt(width-2, 1)).Render(b.String())
}

// renderReadPanel renders the lookup form and the last read result.
func (m Model) renderReadPanel(width int) string {
	styles := m.theme.Styles()
	readTitle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Read)).Bold(true)

	var b strings.Builder
	b.WriteString(readTitle.Render("▌ Read Data"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel("Search key", fieldSearch))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldSearch].View())
	b.WriteString("\n\n")
	b.WriteString(styles.ReadButton.Render("Get Key"))
	b.WriteString("\n\n")
	b.WriteString(styles.StatLabel.Render("Result:"))
	b.WriteString("\n")
	b.WriteString(m.renderReadResult(inputWidth(width) + 2))

	return m.panelStyle(m.focus == fieldSearch).Width(maxInt(width-2, 1)).Render(b.String())
}

// renderReadResult renders the last read result; the absence sentinel is
// shown in the danger color and anything else in the success color.
func (m Model) renderReadResult(width int) string {
	styles := m.theme.Styles()
	s := m.snapshot
	switch {
	case !s.HasReadResult:
		return styles.FaintText.Render("No lookup yet")
	case s.LastReadResult == "":
		return styles.FaintText.Render("(empty value)")
	case lsmdb.IsNotFound(s.LastReadResult):
		return styles.DangerText.Render(s.LastReadResult)
	default:
		return styles.SuccessText.Render(truncate(singleLine(s.LastReadResult), width))
	}
}

func (m Model) fieldLabel(label string, f field) string {
	styles := m.theme.Styles()
	if m.focus == f {
		return styles.Text.Bold(true).Render(label)
	}
	return styles.MutedText.Render(label)
}

func (m Model) panelStyle(focused bool) lipgloss.Style {
	styles := m.theme.Styles()
	if focused {
		return styles.PanelFocused
	}
	return styles.Panel
}
