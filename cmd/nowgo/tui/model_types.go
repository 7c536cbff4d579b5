package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"nowgo/cmd/nowgo/ui"
	"nowgo/internal/config"
	"nowgo/internal/export"
	"nowgo/internal/notify"
	"nowgo/internal/wizard"
)

// ViewMode determines which surface is active.
type ViewMode int

const (
	BootView       ViewMode = iota // logo splash while the session warms up
	WizardView                     // step forms 1-5
	DashboardView                  // terminal dashboard (step 6)
	FilePickerView                 // document selection overlay for step 5
)

// DashboardTab selects the dashboard pane.
type DashboardTab int

const (
	TabChat DashboardTab = iota
	TabDocuments
	TabAnalytics
)

func (t DashboardTab) String() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabDocuments:
		return "Documents"
	case TabAnalytics:
		return "Analytics"
	}
	return "Unknown"
}

// fieldKind is the input widget type behind one form field.
type fieldKind int

const (
	fieldText     fieldKind = iota // single-line text
	fieldTextarea                  // free text, multiline
	fieldSelect                    // single choice from a catalog
	fieldMulti                     // tag set from a catalog
	fieldURLs                      // reference URL list editor
	fieldFiles                     // uploaded document list (picker-driven)
)

// option is one selectable catalog entry.
type option struct {
	value string
	label string
}

// field is one form row of the active step. Exactly one of the widget
// members is meaningful for a given kind.
type field struct {
	key      string
	label    string
	hint     string
	kind     fieldKind
	required bool

	input textinput.Model // fieldText, and the URL entry row of fieldURLs
	area  textarea.Model  // fieldTextarea

	options  []option     // fieldSelect, fieldMulti
	cursor   int          // highlighted option
	choice   int          // fieldSelect: selected index, -1 none
	selected map[int]bool // fieldMulti: checked options
}

// toast is a transient on-screen notification.
type toast struct {
	title    string
	body     string
	severity notify.Severity
	expires  time.Time
}

// =============================================================================
// MESSAGES
// =============================================================================

// bootDoneMsg dismisses the boot splash.
type bootDoneMsg struct{}

// toastTickMsg prunes expired toasts.
type toastTickMsg time.Time

// ConfigReloadedMsg is sent from the config watcher when .nowgo/config.json
// changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the onboarding TUI.
type Model struct {
	styles ui.Styles
	cfg    *config.Config

	ctrl     *wizard.Controller
	session  *wizard.ChatSession
	exporter *export.Exporter
	recorder *notify.Recorder

	// Active step form.
	fields   []field
	focusIdx int

	// Dashboard.
	tab      DashboardTab
	chatArea textarea.Model
	chatVP   viewport.Model
	mdRender *glamour.TermRenderer

	// Overlays and chrome.
	picker  filepicker.Model
	spin    spinner.Model
	toasts  []toast
	view    ViewMode
	width   int
	height  int
	started time.Time
}
