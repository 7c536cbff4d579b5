package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"nowgo/internal/export"
)

func TestDashboardTabCycle(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	if m.tab != TabChat {
		t.Fatalf("expected chat tab on entry, got %v", m.tab)
	}

	m = simulate(m, key(tea.KeyCtrlT))
	if m.tab != TabDocuments {
		t.Errorf("expected documents tab, got %v", m.tab)
	}
	m = simulate(m, key(tea.KeyCtrlT), key(tea.KeyCtrlT))
	if m.tab != TabChat {
		t.Errorf("expected tab cycle back to chat, got %v", m.tab)
	}
}

func TestSendChatMessage(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	m.chatArea.SetValue("How do we grow faster?")
	m = simulate(m, key(tea.KeyCtrlS))

	msgs := m.session.Messages
	if len(msgs) != 3 {
		t.Fatalf("expected greeting + question + reply, got %d messages", len(msgs))
	}
	if msgs[1].Content != "How do we grow faster?" {
		t.Errorf("unexpected user message %q", msgs[1].Content)
	}
	if m.chatArea.Value() != "" {
		t.Error("expected the input cleared after sending")
	}
}

func TestSendBlankMessageRejected(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	m.chatArea.SetValue("   ")
	m = simulate(m, key(tea.KeyCtrlS))

	if len(m.session.Messages) != 1 {
		t.Errorf("expected blank message dropped, got %d messages", len(m.session.Messages))
	}
	if !hasToast(m, "Empty message") {
		t.Error("expected an empty-message toast")
	}
}

func TestExportFromDashboard(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	m = simulate(m, key(tea.KeyCtrlE))

	if !hasToast(m, "Export complete") {
		t.Fatal("expected an export-complete toast")
	}

	entries, err := os.ReadDir(m.cfg.ExportDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "acme-corp-") && strings.HasSuffix(e.Name(), ".txt") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an acme-corp-*.txt report, dir has %v", entries)
	}
}

func TestPayloadSnapshot(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	m = simulate(m, key(tea.KeyCtrlY))

	if !hasToast(m, "Snapshot saved") {
		t.Fatal("expected a snapshot toast")
	}

	entries, err := os.ReadDir(m.cfg.ExportDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var path string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			path = filepath.Join(m.cfg.ExportDir, e.Name())
		}
	}
	if path == "" {
		t.Fatalf("expected a .yaml snapshot, dir has %v", entries)
	}

	payload, err := export.LoadPayload(path)
	if err != nil {
		t.Fatalf("LoadPayload: %v", err)
	}
	if payload.CompanyName != "Acme Corp" {
		t.Errorf("expected snapshot for Acme Corp, got %q", payload.CompanyName)
	}
}

func TestDashboardJumpBackToWizard(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	m = simulate(m, altKey('2'))

	if m.view != WizardView {
		t.Fatalf("expected wizard view after jump, got %d", m.view)
	}
	if got := m.ctrl.CurrentStep(); got != 2 {
		t.Errorf("expected step 2, got %d", got)
	}

	// The dashboard stays unlocked once generated.
	m = simulate(m, altKey('6'))
	if m.view != DashboardView {
		t.Errorf("expected dashboard view after jump back, got %d", m.view)
	}
}

func TestDashboardViewContent(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	out := m.View()

	if !strings.Contains(out, "Welcome to your dashboard, Ana") {
		t.Error("expected the welcome headline")
	}
	if !strings.Contains(out, "Suggested questions") {
		t.Error("expected the suggested questions block")
	}
	if !strings.Contains(out, "operations") {
		t.Error("expected the operations question variant")
	}
}

func TestWizardViewContent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "Step 1 of 5") {
		t.Error("expected the step heading")
	}
	if !strings.Contains(out, "Company name") {
		t.Error("expected the first field label")
	}
}

func TestAnalyticsTabTracksChat(t *testing.T) {
	t.Parallel()

	m := completeWizard(t, newTestModel(t))
	m.chatArea.SetValue("first question")
	m = simulate(m, key(tea.KeyCtrlS), key(tea.KeyCtrlT), key(tea.KeyCtrlT))

	if m.tab != TabAnalytics {
		t.Fatalf("expected analytics tab, got %v", m.tab)
	}
	out := m.View()
	if !strings.Contains(out, "Queries by area") {
		t.Error("expected the usage breakdown")
	}
	if !strings.Contains(out, "Usage over time") {
		t.Error("expected the period series")
	}
}
