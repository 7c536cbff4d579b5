package wizard

// TotalSteps is the number of form steps. Step TotalSteps+1 is the
// dashboard pseudo-step reached through GenerateDashboard.
const TotalSteps = 5

// DashboardStep is the position index of the dashboard view.
const DashboardStep = TotalSteps + 1

// State is the full wizard state: current position, per-step completion
// flags and the five profile records.
type State struct {
	CurrentStep int
	Completed   [TotalSteps + 1]bool // 1-based; index 0 unused

	Company         CompanyProfile
	Objectives      ObjectivesProfile
	Infrastructure  InfrastructureProfile
	User            UserProfile
	Personalization PersonalizationProfile
}

// NewState returns the initial wizard state positioned at step 1 with no
// steps completed. The personalization URL list starts with a single empty
// placeholder entry so the form always shows one editable row.
func NewState() *State {
	return &State{
		CurrentStep: 1,
		Personalization: PersonalizationProfile{
			ReferenceURLs: []string{""},
		},
	}
}

// Controller owns a State and applies all mutations to it. It carries no
// UI concerns; the TUI and the exporter both operate through it.
type Controller struct {
	state *State
}

// NewController returns a controller seeded with NewState.
func NewController() *Controller {
	return &Controller{state: NewState()}
}

// NewControllerWith wraps an existing state, for restoring a session.
func NewControllerWith(s *State) *Controller {
	if s == nil {
		s = NewState()
	}
	return &Controller{state: s}
}

// State exposes the underlying state for read access and snapshotting.
func (c *Controller) State() *State { return c.state }

// CurrentStep returns the active step position.
func (c *Controller) CurrentStep() int { return c.state.CurrentStep }

// SetCurrentStep repositions the wizard. The move is unconditional; access
// gating is the caller's job via StepAccessible. Out-of-range positions are
// ignored.
func (c *Controller) SetCurrentStep(step int) {
	if step < 1 || step > DashboardStep {
		return
	}
	c.state.CurrentStep = step
}

// MarkStepCompleted records step as done. Idempotent; out-of-range steps
// are ignored.
func (c *Controller) MarkStepCompleted(step int) {
	if step < 1 || step > TotalSteps {
		return
	}
	c.state.Completed[step] = true
}

// IsStepCompleted reports whether step has been marked done.
func (c *Controller) IsStepCompleted(step int) bool {
	if step < 1 || step > TotalSteps {
		return false
	}
	return c.state.Completed[step]
}

// MaxCompletedStep returns the highest completed step index, or 0 when
// nothing is completed yet.
func (c *Controller) MaxCompletedStep() int {
	max := 0
	for i := 1; i <= TotalSteps; i++ {
		if c.state.Completed[i] {
			max = i
		}
	}
	return max
}

// StepAccessible reports whether the user may jump to target. Step 1 is
// always reachable; any other step is reachable when it lies at or before
// the frontier one past the highest completed step. The rule is max-based
// on purpose: completing step 3 keeps steps 2 and 4 reachable even if step
// 2 was never itself marked done.
func (c *Controller) StepAccessible(target int) bool {
	if target == 1 {
		return true
	}
	if target < 1 || target > DashboardStep {
		return false
	}
	return target <= c.MaxCompletedStep()+1
}

// =============================================================================
// PATCH APPLICATION
// =============================================================================
// Each UpdateX applies a shallow merge: set patch fields replace, nil fields
// leave the record alone. Enum fields carrying a value outside their catalog
// are skipped; the rest of the patch still lands.

// UpdateCompany merges a company patch into the state.
func (c *Controller) UpdateCompany(p CompanyPatch) {
	d := &c.state.Company
	setStr(&d.Name, p.Name)
	setStr(&d.TaxID, p.TaxID)
	setStr(&d.Country, p.Country)
	setStr(&d.Region, p.Region)
	if p.Industry != nil && p.Industry.Valid() {
		d.Industry = *p.Industry
	}
	if p.Employees != nil && p.Employees.Valid() {
		d.Employees = *p.Employees
	}
	if p.Stage != nil && p.Stage.Valid() {
		d.Stage = *p.Stage
	}
}

// UpdateObjectives merges an objectives patch into the state.
func (c *Controller) UpdateObjectives(p ObjectivesPatch) {
	d := &c.state.Objectives
	setTags(&d.MainObjectives, p.MainObjectives)
	setStr(&d.CustomObjective, p.CustomObjective)
	setStr(&d.Challenges, p.Challenges)
	setTags(&d.PriorityAreas, p.PriorityAreas)
}

// UpdateInfrastructure merges an infrastructure patch into the state.
func (c *Controller) UpdateInfrastructure(p InfrastructurePatch) {
	d := &c.state.Infrastructure
	setTags(&d.Tools, p.Tools)
	setStr(&d.CustomTool, p.CustomTool)
	setTags(&d.Databases, p.Databases)
	setTags(&d.Integrations, p.Integrations)
	setStr(&d.CustomIntegration, p.CustomIntegration)
	if p.Maturity != nil && p.Maturity.Valid() {
		d.Maturity = *p.Maturity
	}
}

// UpdateUser merges a user patch into the state.
func (c *Controller) UpdateUser(p UserPatch) {
	d := &c.state.User
	setStr(&d.FullName, p.FullName)
	setStr(&d.Position, p.Position)
	setStr(&d.Department, p.Department)
	if p.AccessLevel != nil && p.AccessLevel.Valid() {
		d.AccessLevel = *p.AccessLevel
	}
	if p.Style != nil && p.Style.Valid() {
		d.Style = *p.Style
	}
	if p.Depth != nil && p.Depth.Valid() {
		d.Depth = *p.Depth
	}
}

// UpdatePersonalization merges a personalization patch into the state.
// ReferenceURLs is replaced verbatim, empty entries included; only the tag
// set PrimaryFocus is deduplicated.
func (c *Controller) UpdatePersonalization(p PersonalizationPatch) {
	d := &c.state.Personalization
	if p.ReferenceURLs != nil {
		d.ReferenceURLs = append([]string(nil), (*p.ReferenceURLs)...)
	}
	if p.Files != nil {
		d.Files = append([]FileRef(nil), (*p.Files)...)
	}
	if p.Role != nil && p.Role.Valid() {
		d.Role = *p.Role
	}
	setTags(&d.PrimaryFocus, p.PrimaryFocus)
}

func setStr(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setTags(dst *[]string, src *[]string) {
	if src != nil {
		*dst = dedupeTags(*src)
	}
}

// =============================================================================
// STEP VALIDITY
// =============================================================================

// AllRequiredFieldsFilled reports whether the active step's required fields
// hold values. Unknown positions, the dashboard included, report false.
func (c *Controller) AllRequiredFieldsFilled() bool {
	s := c.state
	switch s.CurrentStep {
	case 1:
		co := s.Company
		return co.Name != "" && co.TaxID != "" && co.Industry != "" &&
			co.Country != "" && co.Employees != "" && co.Stage != ""
	case 2:
		return len(s.Objectives.PriorityAreas) > 0
	case 3:
		return s.Infrastructure.Maturity != ""
	case 4:
		u := s.User
		return u.FullName != "" && u.Position != "" &&
			u.Department != "" && u.AccessLevel != ""
	case 5:
		p := s.Personalization
		return p.Role != "" && len(p.PrimaryFocus) > 0
	}
	return false
}

// GenerateDashboard marks every form step completed and moves to the
// dashboard. It deliberately performs no validity check of its own; the
// single entry point in the UI sits behind AllRequiredFieldsFilled on step
// 5, and any other caller gets the same fast-forward.
func (c *Controller) GenerateDashboard() {
	for i := 1; i <= TotalSteps; i++ {
		c.state.Completed[i] = true
	}
	c.state.CurrentStep = DashboardStep
}
