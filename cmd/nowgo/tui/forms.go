package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"nowgo/internal/wizard"
)

// =============================================================================
// STEP FORMS
// =============================================================================
// Each wizard step renders as a flat list of fields. The form is built from
// the current state when the step is entered and merged back through a
// patch when the user continues, so switching steps never loses input.

func newTextField(key, label, hint, value string, required bool) field {
	ti := textinput.New()
	ti.Placeholder = hint
	ti.SetValue(value)
	ti.CharLimit = 120
	ti.Prompt = ""
	return field{key: key, label: label, hint: hint, kind: fieldText, required: required, input: ti}
}

func newTextareaField(key, label, hint, value string) field {
	ta := textarea.New()
	ta.Placeholder = hint
	ta.SetValue(value)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	return field{key: key, label: label, hint: hint, kind: fieldTextarea, area: ta}
}

func newSelectField(key, label string, opts []option, current string, required bool) field {
	choice := -1
	for i, o := range opts {
		if o.value == current {
			choice = i
		}
	}
	return field{key: key, label: label, kind: fieldSelect, required: required, options: opts, choice: choice}
}

func newMultiField(key, label string, opts []option, current []string, required bool) field {
	selected := make(map[int]bool)
	for i, o := range opts {
		if wizard.HasTag(current, o.value) {
			selected[i] = true
		}
	}
	return field{key: key, label: label, kind: fieldMulti, required: required, options: opts, selected: selected}
}

func newURLField() field {
	ti := textinput.New()
	ti.Placeholder = "https://..."
	ti.CharLimit = 200
	ti.Prompt = ""
	return field{
		key:   "urls",
		label: "Reference links",
		hint:  "enter adds, ctrl+r removes last",
		kind:  fieldURLs,
		input: ti,
	}
}

func newFilesField() field {
	return field{
		key:   "files",
		label: "Context documents",
		hint:  "ctrl+f opens the file picker, ctrl+r removes last",
		kind:  fieldFiles,
	}
}

func catalogOptions[T ~string](values []T) []option {
	opts := make([]option, 0, len(values))
	for _, v := range values {
		opts = append(opts, option{value: string(v), label: string(v)})
	}
	return opts
}

func tagOptions(tags []string) []option {
	opts := make([]option, 0, len(tags))
	for _, t := range tags {
		opts = append(opts, option{value: t, label: wizard.TagLabel(t)})
	}
	return opts
}

func roleOptions() []option {
	opts := make([]option, 0, len(wizard.AssistantRoles))
	for _, r := range wizard.AssistantRoles {
		opts = append(opts, option{value: string(r), label: r.DisplayName()})
	}
	return opts
}

// buildStepForm constructs the form for the given step from current state.
func buildStepForm(step int, s *wizard.State) []field {
	switch step {
	case 1:
		co := s.Company
		return []field{
			newTextField("name", "Company name", "Acme Corp", co.Name, true),
			newTextField("tax_id", "Tax ID", "registration number", co.TaxID, true),
			newSelectField("industry", "Industry", catalogOptions(wizard.Industries), string(co.Industry), true),
			newTextField("country", "Country", "where the company operates", co.Country, true),
			newTextField("region", "State / city", "optional", co.Region, false),
			newSelectField("employees", "Employees", catalogOptions(wizard.EmployeeBands), string(co.Employees), true),
			newSelectField("stage", "Company stage", catalogOptions(wizard.CompanyStages), string(co.Stage), true),
		}
	case 2:
		ob := s.Objectives
		return []field{
			newMultiField("objectives", "Main objectives", tagOptions(wizard.ObjectiveTags), ob.MainObjectives, false),
			newTextField("custom_objective", "Custom objective", "anything not listed", ob.CustomObjective, false),
			newTextareaField("challenges", "Current challenges", "what is hardest today", ob.Challenges),
			newMultiField("priority_areas", "Priority areas for AI", tagOptions(wizard.PriorityAreaTags), ob.PriorityAreas, true),
		}
	case 3:
		in := s.Infrastructure
		return []field{
			newMultiField("tools", "Tools in use", tagOptions(wizard.ToolTags), in.Tools, false),
			newTextField("custom_tool", "Other tool", "optional", in.CustomTool, false),
			newMultiField("databases", "Databases", tagOptions(wizard.DatabaseTags), in.Databases, false),
			newMultiField("integrations", "Integrations", tagOptions(wizard.IntegrationTags), in.Integrations, false),
			newTextField("custom_integration", "Other integration", "optional", in.CustomIntegration, false),
			newSelectField("maturity", "Digital maturity", catalogOptions(wizard.MaturityLevels), string(in.Maturity), true),
		}
	case 4:
		us := s.User
		return []field{
			newTextField("full_name", "Full name", "Maria Silva", us.FullName, true),
			newTextField("position", "Position", "CEO", us.Position, true),
			newTextField("department", "Department", "Executive", us.Department, true),
			newSelectField("access_level", "Access level", catalogOptions(wizard.AccessLevels), string(us.AccessLevel), true),
			newSelectField("style", "Language style", catalogOptions(wizard.LanguageStyles), string(us.Style), false),
			newSelectField("depth", "Response depth", catalogOptions(wizard.ResponseDepths), string(us.Depth), false),
		}
	case 5:
		pe := s.Personalization
		return []field{
			newURLField(),
			newFilesField(),
			newSelectField("role", "Assistant role", roleOptions(), string(pe.Role), true),
			newMultiField("primary_focus", "Primary focus", tagOptions(wizard.FocusAreaTags), pe.PrimaryFocus, true),
		}
	}
	return nil
}

// applyStepPatch merges the form values for step back into the controller.
// URL and file lists are managed directly on the controller as the user
// edits them, so step 5 only patches the role and focus set here.
func applyStepPatch(step int, fields []field, ctrl *wizard.Controller) {
	get := func(key string) *field {
		for i := range fields {
			if fields[i].key == key {
				return &fields[i]
			}
		}
		return nil
	}
	text := func(key string) *string {
		if f := get(key); f != nil {
			v := strings.TrimSpace(f.input.Value())
			return &v
		}
		return nil
	}
	area := func(key string) *string {
		if f := get(key); f != nil {
			v := strings.TrimSpace(f.area.Value())
			return &v
		}
		return nil
	}
	choice := func(key string) string {
		if f := get(key); f != nil && f.choice >= 0 && f.choice < len(f.options) {
			return f.options[f.choice].value
		}
		return ""
	}
	tags := func(key string) *[]string {
		f := get(key)
		if f == nil {
			return nil
		}
		var out []string
		for i, o := range f.options {
			if f.selected[i] {
				out = append(out, o.value)
			}
		}
		return &out
	}

	switch step {
	case 1:
		ind := wizard.Industry(choice("industry"))
		band := wizard.EmployeeBand(choice("employees"))
		stage := wizard.CompanyStage(choice("stage"))
		ctrl.UpdateCompany(wizard.CompanyPatch{
			Name:      text("name"),
			TaxID:     text("tax_id"),
			Industry:  &ind,
			Country:   text("country"),
			Region:    text("region"),
			Employees: &band,
			Stage:     &stage,
		})
	case 2:
		ctrl.UpdateObjectives(wizard.ObjectivesPatch{
			MainObjectives:  tags("objectives"),
			CustomObjective: text("custom_objective"),
			Challenges:      area("challenges"),
			PriorityAreas:   tags("priority_areas"),
		})
	case 3:
		mat := wizard.MaturityLevel(choice("maturity"))
		ctrl.UpdateInfrastructure(wizard.InfrastructurePatch{
			Tools:             tags("tools"),
			CustomTool:        text("custom_tool"),
			Databases:         tags("databases"),
			Integrations:      tags("integrations"),
			CustomIntegration: text("custom_integration"),
			Maturity:          &mat,
		})
	case 4:
		lvl := wizard.AccessLevel(choice("access_level"))
		style := wizard.LanguageStyle(choice("style"))
		depth := wizard.ResponseDepth(choice("depth"))
		ctrl.UpdateUser(wizard.UserPatch{
			FullName:    text("full_name"),
			Position:    text("position"),
			Department:  text("department"),
			AccessLevel: &lvl,
			Style:       &style,
			Depth:       &depth,
		})
	case 5:
		role := wizard.AssistantRole(choice("role"))
		ctrl.UpdatePersonalization(wizard.PersonalizationPatch{
			Role:         &role,
			PrimaryFocus: tags("primary_focus"),
		})
	}
}

// stepTitle returns the sidebar/heading label for a step.
func stepTitle(step int) string {
	switch step {
	case 1:
		return "Company"
	case 2:
		return "Objectives"
	case 3:
		return "Infrastructure"
	case 4:
		return "User Profile"
	case 5:
		return "Personalization"
	case wizard.DashboardStep:
		return "Dashboard"
	}
	return "Unknown"
}
