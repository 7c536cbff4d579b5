package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nowgo/internal/export"
	"nowgo/internal/logging"
	"nowgo/internal/notify"
	"nowgo/internal/report"
	"nowgo/internal/wizard"
)

// =============================================================================
// DASHBOARD KEYS
// =============================================================================

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		m.tab = (m.tab + 1) % 3
		return m, nil
	case "ctrl+e":
		m.exportReport()
		return m, nil
	case "ctrl+y":
		m.savePayloadSnapshot()
		return m, nil
	case "ctrl+s":
		m.sendChatMessage()
		return m, nil
	}

	if step, ok := jumpTarget(msg.String()); ok {
		return m.jumpToStep(step)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.tab == TabChat {
		m.chatArea, cmd = m.chatArea.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.chatVP, cmd = m.chatVP.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) sendChatMessage() {
	text := m.chatArea.Value()
	reply, ok := m.session.Send(m.ctrl.State(), text)
	if !ok {
		m.pushToast("Empty message", "Type a message before sending", notify.SeverityError)
		return
	}
	m.chatArea.Reset()
	logging.Chat("user message sent, reply %s", reply.ID)
	m.pushToast("Message sent", "", notify.SeverityInfo)
	m.refreshChatViewport()
	m.chatVP.GotoBottom()
}

// savePayloadSnapshot writes the assembled payload as YAML next to the
// exported reports, for re-rendering via the export subcommand.
func (m *Model) savePayloadSnapshot() {
	now := time.Now()
	payload := report.Assemble(m.ctrl.State(), m.chatHistory(), now)
	name := export.Filename(payload.CompanyName, now, "yaml")
	path := filepath.Join(m.cfg.GetExportDir(), name)
	if err := export.SavePayload(payload, path); err != nil {
		logging.ExportError("payload snapshot: %v", err)
		m.pushToast("Snapshot failed", err.Error(), notify.SeverityError)
		return
	}
	m.pushToast("Snapshot saved", path, notify.SeverityInfo)
}

// =============================================================================
// DASHBOARD RENDERING
// =============================================================================

func (m *Model) chatWidth() int {
	w := m.width - sidebarWidth - 8
	if w < 40 {
		w = 40
	}
	return w
}

// refreshChatViewport re-renders the transcript into the viewport.
func (m *Model) refreshChatViewport() {
	if m.session == nil {
		return
	}
	var b strings.Builder
	for _, msg := range m.session.Messages {
		switch msg.Role {
		case wizard.RoleUser:
			b.WriteString(m.styles.UserBubble.Render("You: " + msg.Content))
		case wizard.RoleAssistant:
			content := msg.Content
			if m.mdRender != nil {
				if out, err := m.mdRender.Render(content); err == nil {
					content = strings.TrimRight(out, "\n")
				}
			}
			b.WriteString(m.styles.AssistantBubble.Render(content))
		}
		b.WriteString("\n\n")
	}
	m.chatVP.SetContent(b.String())
}

func (m *Model) renderDashboard() string {
	s := m.ctrl.State()
	var b strings.Builder

	first := firstToken(s.User.FullName)
	if first == "" {
		first = "there"
	}
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Welcome to your dashboard, %s", first)))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Your custom assistant for %s is ready", orDash(s.Company.Name))))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatCards(s))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case TabChat:
		b.WriteString(m.renderChatTab())
	case TabDocuments:
		b.WriteString(m.renderDocumentsTab(s))
	case TabAnalytics:
		b.WriteString(m.renderAnalyticsTab(s))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderSuggestedQuestions(s))
	return b.String()
}

func (m *Model) renderStatCards(s *wizard.State) string {
	focus := "Not defined"
	if len(s.Personalization.PrimaryFocus) > 0 {
		focus = wizard.TagLabel(s.Personalization.PrimaryFocus[0])
	}
	cards := []string{
		m.styles.Card.Render(m.styles.Label.Render("Industry") + "\n" + m.styles.Bold.Render(orDash(string(s.Company.Industry)))),
		m.styles.Card.Render(m.styles.Label.Render("Company stage") + "\n" + m.styles.Bold.Render(orDash(string(s.Company.Stage)))),
		m.styles.Card.Render(m.styles.Label.Render("Primary focus") + "\n" + m.styles.Bold.Render(focus)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) renderTabBar() string {
	var parts []string
	for _, t := range []DashboardTab{TabChat, TabDocuments, TabAnalytics} {
		label := t.String()
		if t == m.tab {
			parts = append(parts, m.styles.Badge.Render(label))
		} else {
			parts = append(parts, m.styles.Muted.Render(label))
		}
	}
	return strings.Join(parts, "  ") + "  " + m.styles.Muted.Render("(ctrl+t switches)")
}

func (m *Model) renderChatTab() string {
	var b strings.Builder
	b.WriteString(m.chatVP.View())
	b.WriteString("\n")
	b.WriteString(m.chatArea.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("ctrl+s sends the message"))
	return b.String()
}

func (m *Model) renderDocumentsTab(s *wizard.State) string {
	var b strings.Builder
	b.WriteString(m.styles.Bold.Render("Context documents"))
	b.WriteString("\n")
	if len(s.Personalization.Files) == 0 {
		b.WriteString(m.styles.Muted.Render("No documents were uploaded."))
	} else {
		for _, f := range s.Personalization.Files {
			b.WriteString(fmt.Sprintf("  %s  %s\n", f.Name, m.styles.Muted.Render(formatSize(f.Size))))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Bold.Render("Reference links"))
	b.WriteString("\n")
	urls := trimEmptyURLs(s.Personalization.ReferenceURLs)
	if len(urls) == 0 {
		b.WriteString(m.styles.Muted.Render("No links were added."))
	} else {
		for _, u := range urls {
			b.WriteString("  " + u + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderAnalyticsTab(s *wizard.State) string {
	chatCount := 0
	if m.session != nil {
		chatCount = m.session.UserMessageCount()
	}
	byArea, byPeriod := report.UsageSeries(s.Objectives.PriorityAreas, chatCount)

	var b strings.Builder
	b.WriteString(m.styles.Bold.Render("Queries by area"))
	b.WriteString("\n")
	if len(byArea) == 0 {
		b.WriteString(m.styles.Muted.Render("Select priority areas to see the breakdown."))
		b.WriteString("\n")
	}
	for _, a := range byArea {
		b.WriteString(fmt.Sprintf("  %-14s %s %d\n", a.Area, bar(a.Queries), a.Queries))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Bold.Render("Usage over time"))
	b.WriteString("\n")
	for _, p := range byPeriod {
		b.WriteString(fmt.Sprintf("  %-14s %s %d\n", p.Period, bar(p.Queries), p.Queries))
	}
	return b.String()
}

func (m *Model) renderSuggestedQuestions(s *wizard.State) string {
	qs := report.SuggestedQuestions(s.Objectives.PriorityAreas, s.Company.Industry, s.Personalization.PrimaryFocus)
	var b strings.Builder
	b.WriteString(m.styles.Bold.Render("Suggested questions"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Based on your profile and objectives"))
	b.WriteString("\n")
	for i, q := range qs {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, q))
	}
	return b.String()
}

func bar(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 40 {
		n = 40
	}
	return strings.Repeat("█", n)
}

func formatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.2f KB", float64(size)/1024)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
