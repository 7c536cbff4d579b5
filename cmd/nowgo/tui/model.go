// Package tui implements the interactive NowGo onboarding experience: the
// five-step wizard, the sidebar navigation and the terminal dashboard with
// its simulated assistant chat.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"nowgo/cmd/nowgo/ui"
	"nowgo/internal/config"
	"nowgo/internal/export"
	"nowgo/internal/logging"
	"nowgo/internal/notify"
	"nowgo/internal/wizard"
)

const (
	bootDelay     = 900 * time.Millisecond
	toastLifetime = 4 * time.Second
)

// New builds the TUI model from loaded configuration.
func New(cfg *config.Config) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.GetTheme()))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	ta := textarea.New()
	ta.Placeholder = "Type your question or request..."
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000

	fp := filepicker.New()
	fp.AllowedTypes = nil // any document
	fp.ShowHidden = false

	recorder := notify.NewRecorder()

	m := Model{
		styles:   styles,
		cfg:      cfg,
		ctrl:     wizard.NewController(),
		recorder: recorder,
		exporter: &export.Exporter{
			Renderer:   export.TextRenderer{},
			Downloader: exportDownloader(cfg),
			Notifier:   recorder,
		},
		chatArea: ta,
		chatVP:   viewport.New(0, 0),
		picker:   fp,
		spin:     sp,
		view:     BootView,
		started:  time.Now(),
	}
	m.fields = buildStepForm(1, m.ctrl.State())
	m.focusField(0)
	return m
}

// Init starts the boot splash timers.
func (m Model) Init() tea.Cmd {
	logging.UI("tui started")
	return tea.Batch(
		m.spin.Tick,
		tea.Tick(bootDelay, func(time.Time) tea.Msg { return bootDoneMsg{} }),
		toastTick(),
	)
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// =============================================================================
// FORM FOCUS
// =============================================================================

func (m *Model) focusField(i int) {
	if i < 0 || i >= len(m.fields) {
		return
	}
	m.blurAll()
	m.focusIdx = i
	f := &m.fields[i]
	switch f.kind {
	case fieldText, fieldURLs:
		f.input.Focus()
	case fieldTextarea:
		f.area.Focus()
	}
}

func (m *Model) blurAll() {
	for i := range m.fields {
		m.fields[i].input.Blur()
		m.fields[i].area.Blur()
	}
}

func (m *Model) nextField() { m.focusField((m.focusIdx + 1) % max(len(m.fields), 1)) }

func (m *Model) prevField() {
	n := max(len(m.fields), 1)
	m.focusField((m.focusIdx - 1 + n) % n)
}

// enterStep repositions the wizard and rebuilds the form for the target.
func (m *Model) enterStep(step int) {
	m.ctrl.SetCurrentStep(step)
	if step == wizard.DashboardStep {
		m.startDashboard()
		return
	}
	m.view = WizardView
	m.fields = buildStepForm(step, m.ctrl.State())
	m.focusField(0)
	logging.Wizard("entered step %d (%s)", step, stepTitle(step))
}

// startDashboard opens the terminal dashboard, creating the chat session
// lazily so the greeting reflects the final profile data.
func (m *Model) startDashboard() {
	m.view = DashboardView
	m.tab = TabChat
	if m.session == nil {
		m.session = wizard.NewChatSession(m.ctrl.State())
		logging.Chat("session %s opened", m.session.ID)
	}
	if m.mdRender == nil {
		if r, err := newMarkdownRenderer(m.chatWidth()); err == nil {
			m.mdRender = r
		}
	}
	m.chatArea.Focus()
	m.refreshChatViewport()
}

// =============================================================================
// TOASTS
// =============================================================================

func (m *Model) pushToast(title, body string, sev notify.Severity) {
	m.toasts = append(m.toasts, toast{
		title:    title,
		body:     body,
		severity: sev,
		expires:  time.Now().Add(toastLifetime),
	})
}

// drainNotifications converts buffered collaborator notifications (from the
// exporter) into toasts.
func (m *Model) drainNotifications() {
	for _, n := range m.recorder.Drain() {
		m.pushToast(n.Title, n.Description, n.Severity)
	}
}

func (m *Model) pruneToasts(now time.Time) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func newMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
}

func exportDownloader(cfg *config.Config) export.Downloader {
	return export.DirDownloader{Dir: cfg.GetExportDir()}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
