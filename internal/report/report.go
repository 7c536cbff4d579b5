// Package report projects accumulated onboarding state into an
// export-ready payload: company summary, objectives, assistant
// configuration, chat transcript and derived suggested questions. Every
// function here is pure; rendering and file I/O live in internal/export.
package report

import (
	"fmt"
	"strings"
	"time"

	"nowgo/internal/wizard"
)

// NotSpecified is the placeholder rendered for fields the user left empty.
const NotSpecified = "Not specified"

// Payload is the flat, assembled report. All slice fields are copies; the
// payload never aliases wizard state.
type Payload struct {
	GeneratedAt time.Time `yaml:"generated_at"`

	CompanyName string `yaml:"company_name"`
	TaxID       string `yaml:"tax_id"`
	Industry    string `yaml:"industry"`
	Country     string `yaml:"country"`
	Region      string `yaml:"region"`
	Employees   string `yaml:"employees"`
	Stage       string `yaml:"stage"`

	MainObjectives  []string `yaml:"main_objectives"` // display labels
	CustomObjective string   `yaml:"custom_objective"`
	Challenges      string   `yaml:"challenges"`
	PriorityAreas   []string `yaml:"priority_areas"` // display labels

	Tools        []string `yaml:"tools"`
	Databases    []string `yaml:"databases"`
	Integrations []string `yaml:"integrations"`
	Maturity     string   `yaml:"maturity"`

	AssistantRole string   `yaml:"assistant_role"`
	PrimaryFocus  []string `yaml:"primary_focus"` // raw tags, not labels
	FileCount     int      `yaml:"file_count"`
	LinkCount     int      `yaml:"link_count"`

	UserFullName   string `yaml:"user_full_name"`
	UserPosition   string `yaml:"user_position"`
	UserDepartment string `yaml:"user_department"`
	UserAccess     string `yaml:"user_access"`
	LanguageStyle  string `yaml:"language_style"`
	ResponseDepth  string `yaml:"response_depth"`

	ChatHistory        []string `yaml:"chat_history"` // user-sent messages, send order
	SuggestedQuestions []string `yaml:"suggested_questions"`
}

// Assemble projects the wizard state and the session's sent messages into a
// payload stamped with now. No validation happens here; empty fields become
// the NotSpecified placeholder and the assembler trusts whatever it is
// given.
func Assemble(s *wizard.State, chatHistory []string, now time.Time) Payload {
	co := s.Company
	ob := s.Objectives
	in := s.Infrastructure
	us := s.User
	pe := s.Personalization

	return Payload{
		GeneratedAt: now,

		CompanyName: orPlaceholder(co.Name),
		TaxID:       orPlaceholder(co.TaxID),
		Industry:    orPlaceholder(string(co.Industry)),
		Country:     orPlaceholder(co.Country),
		Region:      orPlaceholder(co.Region),
		Employees:   orPlaceholder(string(co.Employees)),
		Stage:       orPlaceholder(string(co.Stage)),

		MainObjectives:  labelTags(ob.MainObjectives),
		CustomObjective: orPlaceholder(ob.CustomObjective),
		Challenges:      orPlaceholder(ob.Challenges),
		PriorityAreas:   labelTags(ob.PriorityAreas),

		Tools:        labelTags(in.Tools),
		Databases:    labelTags(in.Databases),
		Integrations: labelTags(in.Integrations),
		Maturity:     orPlaceholder(string(in.Maturity)),

		AssistantRole: orPlaceholder(roleDisplay(pe.Role)),
		PrimaryFocus:  append([]string(nil), pe.PrimaryFocus...),
		FileCount:     len(pe.Files),
		LinkCount:     countNonEmpty(pe.ReferenceURLs),

		UserFullName:   orPlaceholder(us.FullName),
		UserPosition:   orPlaceholder(us.Position),
		UserDepartment: orPlaceholder(us.Department),
		UserAccess:     orPlaceholder(string(us.AccessLevel)),
		LanguageStyle:  orPlaceholder(string(us.Style)),
		ResponseDepth:  orPlaceholder(string(us.Depth)),

		ChatHistory:        append([]string(nil), chatHistory...),
		SuggestedQuestions: SuggestedQuestions(ob.PriorityAreas, co.Industry, pe.PrimaryFocus),
	}
}

// SuggestedQuestions derives the five dashboard question templates. Each
// question picks one of two phrasings on a single tag-membership test; the
// branch conditions are fixed and the output depends on nothing else, so
// the same inputs always produce the same five strings.
func SuggestedQuestions(priorityAreas []string, industry wizard.Industry, primaryFocus []string) []string {
	pick := func(set []string, tag, yes, no string) string {
		if wizard.HasTag(set, tag) {
			return yes
		}
		return no
	}
	sector := string(industry)
	if sector == "" {
		sector = "our"
	}
	return []string{
		fmt.Sprintf("How can we optimize our %s processes to reduce costs?",
			pick(priorityAreas, "operations", "operations", "business")),
		fmt.Sprintf("Which %s strategies are recommended for companies in the %s sector?",
			pick(priorityAreas, "growth", "growth", "expansion"), sector),
		fmt.Sprintf("How can we implement %s best practices in our organization?",
			pick(priorityAreas, "esg", "ESG", "sustainability")),
		fmt.Sprintf("What are the most relevant %s trends for our sector?",
			pick(primaryFocus, "innovation", "innovation", "technology")),
		fmt.Sprintf("How can we improve our %s strategy to reach new customers?",
			pick(priorityAreas, "marketing", "marketing", "communication")),
	}
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotSpecified
	}
	return v
}

func roleDisplay(r wizard.AssistantRole) string {
	if r == "" {
		return ""
	}
	return r.DisplayName()
}

func labelTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, wizard.TagLabel(t))
	}
	return out
}

func countNonEmpty(urls []string) int {
	n := 0
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			n++
		}
	}
	return n
}
