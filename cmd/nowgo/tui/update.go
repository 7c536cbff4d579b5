package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nowgo/cmd/nowgo/ui"
	"nowgo/internal/logging"
	"nowgo/internal/notify"
	"nowgo/internal/report"
	"nowgo/internal/wizard"
)

// Update is the main event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case bootDoneMsg:
		if m.view == BootView {
			m.view = WizardView
		}
		return m, nil

	case toastTickMsg:
		m.pruneToasts(time.Time(msg))
		return m, toastTick()

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.styles = ui.NewStyles(ui.ThemeByName(m.cfg.GetTheme()))
		m.exporter.Downloader = exportDownloader(m.cfg)
		logging.Config("config reloaded, theme=%s", m.cfg.GetTheme())
		m.pushToast("Settings reloaded", "Configuration changes applied", notify.SeverityInfo)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case BootView:
			m.view = WizardView
			return m, nil
		case WizardView:
			return m.updateWizard(msg)
		case DashboardView:
			return m.updateDashboard(msg)
		case FilePickerView:
			return m.updateFilePicker(msg)
		}
	}

	var cmd tea.Cmd
	switch m.view {
	case BootView:
		m.spin, cmd = m.spin.Update(msg)
	case FilePickerView:
		return m.updateFilePicker(msg)
	}
	return m, cmd
}

// =============================================================================
// WIZARD KEYS
// =============================================================================

func (m Model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Sidebar jumps, gated by the access policy.
	if step, ok := jumpTarget(key); ok {
		return m.jumpToStep(step)
	}

	switch key {
	case "tab", "down":
		if m.currentField().kind == fieldTextarea && key == "down" {
			break // let the textarea consume vertical movement
		}
		m.nextField()
		return m, nil
	case "shift+tab", "up":
		if m.currentField().kind == fieldTextarea && key == "up" {
			break
		}
		m.prevField()
		return m, nil
	case "ctrl+n":
		return m.continueStep()
	case "ctrl+b":
		if step := m.ctrl.CurrentStep(); step > 1 {
			applyStepPatch(step, m.fields, m.ctrl)
			m.enterStep(step - 1)
		}
		return m, nil
	case "ctrl+f":
		if m.ctrl.CurrentStep() == wizard.TotalSteps {
			return m.openFilePicker()
		}
	case "ctrl+r":
		if m.ctrl.CurrentStep() == wizard.TotalSteps {
			m.removeLastDocument()
			return m, nil
		}
	}

	f := m.currentField()
	switch f.kind {
	case fieldSelect:
		return m.updateSelect(key, f)
	case fieldMulti:
		return m.updateMulti(key, f)
	case fieldURLs:
		if key == "enter" {
			m.addReferenceURL()
			return m, nil
		}
	case fieldText:
		if key == "enter" {
			m.nextField()
			return m, nil
		}
	}

	// Everything else feeds the focused text widget.
	var cmd tea.Cmd
	switch f.kind {
	case fieldText, fieldURLs:
		f.input, cmd = f.input.Update(msg)
	case fieldTextarea:
		f.area, cmd = f.area.Update(msg)
	}
	return m, cmd
}

func (m *Model) currentField() *field {
	if m.focusIdx < 0 || m.focusIdx >= len(m.fields) {
		return &field{}
	}
	return &m.fields[m.focusIdx]
}

func (m Model) updateSelect(key string, f *field) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		if f.cursor > 0 {
			f.cursor--
		}
	case "right", "l":
		if f.cursor < len(f.options)-1 {
			f.cursor++
		}
	case " ", "enter":
		if f.choice == f.cursor {
			f.choice = -1
		} else {
			f.choice = f.cursor
		}
	}
	return m, nil
}

func (m Model) updateMulti(key string, f *field) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		if f.cursor > 0 {
			f.cursor--
		}
	case "right", "l":
		if f.cursor < len(f.options)-1 {
			f.cursor++
		}
	case " ", "enter":
		f.selected[f.cursor] = !f.selected[f.cursor]
		if !f.selected[f.cursor] {
			delete(f.selected, f.cursor)
		}
	}
	return m, nil
}

// jumpTarget maps alt+1..alt+6 to a wizard step.
func jumpTarget(key string) (int, bool) {
	if !strings.HasPrefix(key, "alt+") || len(key) != 5 {
		return 0, false
	}
	d := key[4]
	if d < '1' || d > '0'+wizard.DashboardStep {
		return 0, false
	}
	return int(d - '0'), true
}

func (m Model) jumpToStep(step int) (tea.Model, tea.Cmd) {
	if !m.ctrl.StepAccessible(step) {
		m.pushToast("Step locked", fmt.Sprintf("Complete the previous steps to reach %s", stepTitle(step)), notify.SeverityError)
		return m, nil
	}
	if m.view == WizardView {
		applyStepPatch(m.ctrl.CurrentStep(), m.fields, m.ctrl)
	}
	m.enterStep(step)
	return m, nil
}

// continueStep validates the active step and advances. On the final step a
// valid form generates the dashboard.
func (m Model) continueStep() (tea.Model, tea.Cmd) {
	step := m.ctrl.CurrentStep()
	applyStepPatch(step, m.fields, m.ctrl)

	if !m.ctrl.AllRequiredFieldsFilled() {
		logging.WizardDebug("step %d blocked on validation", step)
		m.pushToast("Missing required fields", "Fill in the highlighted fields before continuing", notify.SeverityError)
		return m, nil
	}

	m.ctrl.MarkStepCompleted(step)
	if step == wizard.TotalSteps {
		m.ctrl.GenerateDashboard()
		logging.Wizard("onboarding complete, dashboard generated")
		m.pushToast("Generating your assistant", "Your personalized dashboard is ready", notify.SeverityInfo)
		m.startDashboard()
		return m, nil
	}
	m.enterStep(step + 1)
	return m, nil
}

// =============================================================================
// STEP 5: URLS AND FILES
// =============================================================================

func (m *Model) addReferenceURL() {
	f := m.currentField()
	raw := strings.TrimSpace(f.input.Value())
	if raw == "" {
		m.pushToast("Empty link", "Type a URL before adding it", notify.SeverityError)
		return
	}
	pe := m.ctrl.State().Personalization
	urls := append([]string(nil), pe.ReferenceURLs...)
	// Fill the initial placeholder row before growing the list.
	if len(urls) == 1 && urls[0] == "" {
		urls[0] = raw
	} else {
		urls = append(urls, raw)
	}
	m.ctrl.UpdatePersonalization(wizard.PersonalizationPatch{ReferenceURLs: &urls})
	f.input.SetValue("")
	m.pushToast("Link added", raw, notify.SeverityInfo)
}

func (m *Model) removeLastDocument() {
	pe := m.ctrl.State().Personalization
	if n := len(pe.Files); n > 0 {
		files := append([]wizard.FileRef(nil), pe.Files[:n-1]...)
		removed := pe.Files[n-1]
		m.ctrl.UpdatePersonalization(wizard.PersonalizationPatch{Files: &files})
		m.pushToast("Document removed", removed.Name, notify.SeverityInfo)
		return
	}
	urls := trimEmptyURLs(pe.ReferenceURLs)
	if len(urls) > 0 {
		removed := urls[len(urls)-1]
		next := append([]string(nil), pe.ReferenceURLs...)
		for i := len(next) - 1; i >= 0; i-- {
			if strings.TrimSpace(next[i]) != "" {
				next = append(next[:i], next[i+1:]...)
				break
			}
		}
		if len(next) == 0 {
			next = []string{""}
		}
		m.ctrl.UpdatePersonalization(wizard.PersonalizationPatch{ReferenceURLs: &next})
		m.pushToast("Link removed", removed, notify.SeverityInfo)
		return
	}
	m.pushToast("Nothing to remove", "No documents or links added yet", notify.SeverityError)
}

func trimEmptyURLs(urls []string) []string {
	var out []string
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}
	return out
}

func (m Model) openFilePicker() (tea.Model, tea.Cmd) {
	if dir, err := os.UserHomeDir(); err == nil {
		m.picker.CurrentDirectory = dir
	}
	m.view = FilePickerView
	return m, m.picker.Init()
}

func (m Model) updateFilePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.view = WizardView
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		ref := wizard.FileRef{Name: filepath.Base(path)}
		if info, err := os.Stat(path); err == nil {
			ref.Size = info.Size()
		}
		pe := m.ctrl.State().Personalization
		files := append(append([]wizard.FileRef(nil), pe.Files...), ref)
		m.ctrl.UpdatePersonalization(wizard.PersonalizationPatch{Files: &files})
		m.pushToast("Document added", ref.Name, notify.SeverityInfo)
		m.view = WizardView
		return m, nil
	}
	return m, cmd
}

// =============================================================================
// EXPORT
// =============================================================================

// exportReport assembles the payload and runs the exporter, then surfaces
// the exporter's outcome notification as a toast.
func (m *Model) exportReport() {
	payload := report.Assemble(m.ctrl.State(), m.chatHistory(), time.Now())
	if err := m.exporter.Export(payload); err != nil {
		logging.ExportError("export: %v", err)
	} else {
		logging.Export("report exported for %s", payload.CompanyName)
	}
	m.drainNotifications()
}

func (m *Model) chatHistory() []string {
	if m.session == nil {
		return nil
	}
	var out []string
	for _, msg := range m.session.Messages {
		if msg.Role == wizard.RoleUser {
			out = append(out, msg.Content)
		}
	}
	return out
}
