package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nowgo/cmd/nowgo/ui"
	"nowgo/internal/notify"
	"nowgo/internal/wizard"
)

const sidebarWidth = 24

// layout resizes the embedded components after a window change.
func (m *Model) layout() {
	w := m.chatWidth()
	m.chatArea.SetWidth(w)
	m.chatVP.Width = w
	h := m.height - 24
	if h < 8 {
		h = 8
	}
	m.chatVP.Height = h
	if m.mdRender != nil {
		// Re-wrap markdown on resize.
		if r, err := newMarkdownRenderer(w); err == nil {
			m.mdRender = r
		}
	}
	m.refreshChatViewport()
}

// View renders the active surface.
func (m Model) View() string {
	switch m.view {
	case BootView:
		return m.renderBoot()
	case FilePickerView:
		return m.renderFilePicker()
	}

	sidebar := m.renderSidebar()
	var content string
	if m.view == DashboardView {
		content = m.renderDashboard()
	} else {
		content = m.renderStepForm()
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.Sidebar.Width(sidebarWidth).Render(sidebar),
		m.styles.Content.Render(content),
	)

	return strings.Join([]string{
		m.renderHeader(),
		body,
		m.renderToasts(),
		m.renderFooter(),
	}, "\n")
}

func (m Model) renderBoot() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(ui.Logo(m.styles))
	b.WriteString("\n")
	b.WriteString(m.spin.View())
	b.WriteString(m.styles.Muted.Render(" preparing your onboarding..."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFilePicker() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Select a context document"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter selects, esc cancels"))
	return b.String()
}

func (m Model) renderHeader() string {
	title := "NowGo AI — Business Onboarding"
	if m.view == DashboardView {
		title = "NowGo AI — Dashboard"
	}
	return m.styles.Header.Render(title)
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Steps"))
	b.WriteString("\n\n")
	current := m.ctrl.CurrentStep()
	for step := 1; step <= wizard.DashboardStep; step++ {
		marker := "○"
		style := m.styles.StepLocked
		switch {
		case step == current:
			marker = "●"
			style = m.styles.StepActive
		case step <= wizard.TotalSteps && m.ctrl.IsStepCompleted(step):
			marker = "✓"
			style = m.styles.StepDone
		case m.ctrl.StepAccessible(step):
			style = m.styles.Body
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %d %s", marker, step, stepTitle(step))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("alt+1..6 jumps"))
	return b.String()
}

func (m Model) renderStepForm() string {
	step := m.ctrl.CurrentStep()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Step %d of %d — %s", step, wizard.TotalSteps, stepTitle(step))))
	b.WriteString("\n")

	for i := range m.fields {
		b.WriteString(m.renderField(i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderField(i int) string {
	f := &m.fields[i]
	focused := i == m.focusIdx

	label := f.label
	if f.required {
		label += " *"
	}
	var b strings.Builder
	if focused {
		b.WriteString(m.styles.StepActive.Render("> " + label))
	} else {
		b.WriteString(m.styles.Label.Render("  " + label))
	}
	b.WriteString("\n")

	switch f.kind {
	case fieldText:
		b.WriteString(m.renderFieldBody(focused, f.input.View()))
	case fieldTextarea:
		b.WriteString(m.renderFieldBody(focused, f.area.View()))
	case fieldSelect, fieldMulti:
		b.WriteString(m.renderFieldBody(focused, m.renderOptions(f, focused)))
	case fieldURLs:
		b.WriteString(m.renderFieldBody(focused, m.renderURLList(f)))
	case fieldFiles:
		b.WriteString(m.renderFieldBody(focused, m.renderFileList(f)))
	}
	return b.String()
}

func (m Model) renderFieldBody(focused bool, body string) string {
	if focused {
		return m.styles.FieldFocused.Render(body)
	}
	return m.styles.FieldBlurred.Render(body)
}

// renderOptions lays catalog options out as a wrapped row of chips.
func (m Model) renderOptions(f *field, focused bool) string {
	var parts []string
	for i, o := range f.options {
		mark := "( )"
		if f.kind == fieldMulti {
			mark = "[ ]"
			if f.selected[i] {
				mark = "[x]"
			}
		} else if f.choice == i {
			mark = "(•)"
		}
		chip := fmt.Sprintf("%s %s", mark, o.label)
		switch {
		case focused && i == f.cursor:
			chip = m.styles.OptionChecked.Render("‹" + chip + "›")
		case f.selected[i] || f.choice == i:
			chip = m.styles.OptionChecked.Render(chip)
		default:
			chip = m.styles.Option.Render(chip)
		}
		parts = append(parts, chip)
	}
	row := strings.Join(parts, "  ")
	if focused {
		row += "\n" + m.styles.Muted.Render("←/→ moves, space toggles")
	}
	return row
}

func (m Model) renderURLList(f *field) string {
	var b strings.Builder
	b.WriteString(f.input.View())
	b.WriteString("\n")
	urls := trimEmptyURLs(m.ctrl.State().Personalization.ReferenceURLs)
	if len(urls) == 0 {
		b.WriteString(m.styles.Muted.Render("no links yet — " + f.hint))
	} else {
		for _, u := range urls {
			b.WriteString(m.styles.Body.Render("• " + u))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderFileList(f *field) string {
	files := m.ctrl.State().Personalization.Files
	if len(files) == 0 {
		return m.styles.Muted.Render("no documents yet — " + f.hint)
	}
	var b strings.Builder
	for _, fr := range files {
		b.WriteString(m.styles.Body.Render(fmt.Sprintf("• %s (%s)", fr.Name, formatSize(fr.Size))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var parts []string
	for _, t := range m.toasts {
		line := t.title
		if t.body != "" {
			line += ": " + t.body
		}
		if t.severity == notify.SeverityError {
			parts = append(parts, m.styles.ToastError.Render(line))
		} else {
			parts = append(parts, m.styles.Toast.Render(line))
		}
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderFooter() string {
	var hints []string
	switch m.view {
	case DashboardView:
		hints = []string{"ctrl+t tabs", "ctrl+s send", "ctrl+e export", "ctrl+y snapshot", "ctrl+c quit"}
	default:
		hints = []string{"tab next field", "ctrl+n continue", "ctrl+b back", "ctrl+c quit"}
		if m.ctrl.CurrentStep() == wizard.TotalSteps {
			hints = append(hints[:3], "ctrl+f files", "ctrl+r remove", "ctrl+c quit")
		}
	}
	return m.styles.Footer.Render(strings.Join(hints, " · "))
}
