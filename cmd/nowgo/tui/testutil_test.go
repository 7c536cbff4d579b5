// Package tui test utilities: model builders, key fixtures and form
// manipulation helpers shared by the wizard and dashboard tests.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"nowgo/internal/config"
	"nowgo/internal/wizard"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestModel builds a Model past the boot splash, with exports routed
// to a per-test temp directory.
func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := &config.Config{Theme: "dark", ExportDir: t.TempDir()}
	m := New(cfg)
	m = simulate(m, tea.WindowSizeMsg{Width: 120, Height: 40}, bootDoneMsg{})
	return m
}

// simulate feeds messages through Update and returns the final model.
func simulate(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// =============================================================================
// FORM HELPERS
// =============================================================================

func findField(t *testing.T, m *Model, key string) *field {
	t.Helper()
	for i := range m.fields {
		if m.fields[i].key == key {
			return &m.fields[i]
		}
	}
	t.Fatalf("field %q not in active form", key)
	return nil
}

func setText(t *testing.T, m *Model, key, value string) {
	t.Helper()
	findField(t, m, key).input.SetValue(value)
}

func setChoice(t *testing.T, m *Model, key, value string) {
	t.Helper()
	f := findField(t, m, key)
	for i, o := range f.options {
		if o.value == value {
			f.choice = i
			return
		}
	}
	t.Fatalf("option %q not in field %q", value, key)
}

func setMulti(t *testing.T, m *Model, key string, values ...string) {
	t.Helper()
	f := findField(t, m, key)
	for _, v := range values {
		found := false
		for i, o := range f.options {
			if o.value == v {
				f.selected[i] = true
				found = true
			}
		}
		if !found {
			t.Fatalf("option %q not in field %q", v, key)
		}
	}
}

func hasToast(m Model, title string) bool {
	for _, to := range m.toasts {
		if to.title == title {
			return true
		}
	}
	return false
}

// =============================================================================
// STEP FIXTURES
// =============================================================================

func fillStep1(t *testing.T, m *Model) {
	t.Helper()
	setText(t, m, "name", "Acme Corp")
	setText(t, m, "tax_id", "12-3456789")
	setChoice(t, m, "industry", string(wizard.Industry("Technology")))
	setText(t, m, "country", "Brazil")
	setChoice(t, m, "employees", "11-50")
	setChoice(t, m, "stage", "Traction")
}

func fillStep2(t *testing.T, m *Model) {
	t.Helper()
	setMulti(t, m, "priority_areas", "operations", "growth")
}

func fillStep3(t *testing.T, m *Model) {
	t.Helper()
	setChoice(t, m, "maturity", "intermediate")
}

func fillStep4(t *testing.T, m *Model) {
	t.Helper()
	setText(t, m, "full_name", "Ana Souza")
	setText(t, m, "position", "CEO")
	setText(t, m, "department", "Executive")
	setChoice(t, m, "access_level", "admin")
}

func fillStep5(t *testing.T, m *Model) {
	t.Helper()
	setChoice(t, m, "role", "consultant")
	setMulti(t, m, "primary_focus", "innovation")
}

// completeWizard walks the full flow and lands on the dashboard.
func completeWizard(t *testing.T, m Model) Model {
	t.Helper()
	fills := []func(*testing.T, *Model){fillStep1, fillStep2, fillStep3, fillStep4, fillStep5}
	for i, fill := range fills {
		if got := m.ctrl.CurrentStep(); got != i+1 {
			t.Fatalf("expected to be on step %d, on %d", i+1, got)
		}
		fill(t, &m)
		m = simulate(m, key(tea.KeyCtrlN))
	}
	if m.view != DashboardView {
		t.Fatalf("expected dashboard after final step, view=%d", m.view)
	}
	return m
}
