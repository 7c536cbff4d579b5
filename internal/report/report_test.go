package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"nowgo/internal/wizard"
)

func strp(s string) *string { return &s }

func acmeState() *wizard.State {
	c := wizard.NewController()
	ind := wizard.Industry("Technology")
	band := wizard.Employees51to200
	stage := wizard.StageScale
	c.UpdateCompany(wizard.CompanyPatch{
		Name: strp("Acme Corp"), TaxID: strp("12-3456789"), Industry: &ind,
		Country: strp("Brazil"), Employees: &band, Stage: &stage,
	})
	areas := []string{"operations", "growth"}
	c.UpdateObjectives(wizard.ObjectivesPatch{PriorityAreas: &areas})
	mat := wizard.MaturityAdvanced
	c.UpdateInfrastructure(wizard.InfrastructurePatch{Maturity: &mat})
	lvl := wizard.AccessAdmin
	c.UpdateUser(wizard.UserPatch{
		FullName: strp("Maria Silva"), Position: strp("CEO"),
		Department: strp("Executive"), AccessLevel: &lvl,
	})
	role := wizard.RoleConsultant
	focus := []string{"innovation"}
	c.UpdatePersonalization(wizard.PersonalizationPatch{Role: &role, PrimaryFocus: &focus})
	return c.State()
}

func TestAssembleRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	chat := []string{"How do I cut costs?", "What about hiring?"}

	p := Assemble(acmeState(), chat, now)

	if p.CompanyName != "Acme Corp" || p.Industry != "Technology" {
		t.Errorf("company projection wrong: %q / %q", p.CompanyName, p.Industry)
	}
	if !p.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", p.GeneratedAt, now)
	}
	if diff := cmp.Diff(chat, p.ChatHistory); diff != "" {
		t.Errorf("chat history mismatch (-want +got):\n%s", diff)
	}

	qs := p.SuggestedQuestions
	if len(qs) != 5 {
		t.Fatalf("got %d suggested questions, want 5", len(qs))
	}
	if !strings.Contains(qs[0], "operations") {
		t.Errorf("q1 missing operations variant: %q", qs[0])
	}
	if !strings.Contains(qs[1], "growth") || !strings.Contains(qs[1], "Technology") {
		t.Errorf("q2 missing growth variant or industry: %q", qs[1])
	}
	if !strings.Contains(qs[3], "innovation") {
		t.Errorf("q4 missing innovation variant: %q", qs[3])
	}

	if p.FileCount != 0 || p.LinkCount != 0 {
		t.Errorf("file/link counts = %d/%d, want 0/0", p.FileCount, p.LinkCount)
	}
}

func TestAssemblePlaceholders(t *testing.T) {
	p := Assemble(wizard.NewState(), nil, time.Now())

	for name, got := range map[string]string{
		"CompanyName": p.CompanyName,
		"Challenges":  p.Challenges,
		"Maturity":    p.Maturity,
		"Role":        p.AssistantRole,
	} {
		if got != NotSpecified {
			t.Errorf("%s = %q, want placeholder", name, got)
		}
	}
}

func TestAssembleCountsNonEmptyURLsOnly(t *testing.T) {
	c := wizard.NewControllerWith(wizard.NewState())
	urls := []string{"https://example.com", "", "  ", "https://docs.example.com"}
	files := []wizard.FileRef{{Name: "deck.pdf", Size: 2048}}
	c.UpdatePersonalization(wizard.PersonalizationPatch{ReferenceURLs: &urls, Files: &files})

	p := Assemble(c.State(), nil, time.Now())
	if p.LinkCount != 2 {
		t.Errorf("LinkCount = %d, want 2", p.LinkCount)
	}
	if p.FileCount != 1 {
		t.Errorf("FileCount = %d, want 1", p.FileCount)
	}
}

func TestAssembleDoesNotAliasState(t *testing.T) {
	s := acmeState()
	p := Assemble(s, []string{"hello"}, time.Now())

	p.PriorityAreas[0] = "mutated"
	p.ChatHistory[0] = "mutated"
	if s.Objectives.PriorityAreas[0] == "mutated" {
		t.Error("payload aliases wizard tag sets")
	}
}

func TestSuggestedQuestionsDeterministic(t *testing.T) {
	areas := []string{"operations", "growth"}
	focus := []string{"innovation"}
	a := SuggestedQuestions(areas, "Technology", focus)
	b := SuggestedQuestions(areas, "Technology", focus)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same inputs produced different questions:\n%s", diff)
	}
}

func TestSuggestedQuestionsBranchIsolation(t *testing.T) {
	focus := []string{"innovation"}
	with := SuggestedQuestions([]string{"operations"}, "Retail", focus)
	without := SuggestedQuestions([]string{}, "Retail", focus)

	if with[0] == without[0] {
		t.Error("operations membership did not flip question 1")
	}
	for i := 1; i < 5; i++ {
		if with[i] != without[i] {
			t.Errorf("operations membership changed question %d: %q vs %q", i+1, with[i], without[i])
		}
	}
}

func TestSuggestedQuestionsVariants(t *testing.T) {
	qs := SuggestedQuestions(nil, "", nil)
	wantFragments := []string{"business", "expansion", "sustainability", "technology", "communication"}
	for i, frag := range wantFragments {
		if !strings.Contains(qs[i], frag) {
			t.Errorf("q%d = %q, want fallback variant containing %q", i+1, qs[i], frag)
		}
	}

	qs = SuggestedQuestions(
		[]string{"operations", "growth", "esg", "marketing"},
		"Finance",
		[]string{"innovation"},
	)
	wantFragments = []string{"operations", "growth", "ESG", "innovation", "marketing"}
	for i, frag := range wantFragments {
		if !strings.Contains(qs[i], frag) {
			t.Errorf("q%d = %q, want tag variant containing %q", i+1, qs[i], frag)
		}
	}
}

func TestUsageSeriesDeterministicAndCapped(t *testing.T) {
	areas := []string{"legal", "hr", "growth", "esg", "sales", "marketing", "finance"}
	byArea1, byPeriod1 := UsageSeries(areas, 0)
	byArea2, byPeriod2 := UsageSeries(areas, 0)

	if diff := cmp.Diff(byArea1, byArea2); diff != "" {
		t.Errorf("area series not deterministic:\n%s", diff)
	}
	if diff := cmp.Diff(byPeriod1, byPeriod2); diff != "" {
		t.Errorf("period series not deterministic:\n%s", diff)
	}
	if len(byArea1) != 5 {
		t.Errorf("charted %d areas, want cap of 5", len(byArea1))
	}
	for _, a := range byArea1 {
		if a.Queries < 5 {
			t.Errorf("area %q queries = %d, want >= 5", a.Area, a.Queries)
		}
	}
}

func TestUsageSeriesWeek4TracksChat(t *testing.T) {
	_, byPeriod := UsageSeries([]string{"growth"}, 7)
	last := byPeriod[len(byPeriod)-1]
	if last.Queries != 7 {
		t.Errorf("final period queries = %d, want live chat count 7", last.Queries)
	}
}
