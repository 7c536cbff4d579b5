package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"nowgo/internal/report"
)

// Page geometry for the plain-text artifact. ContentLines is checked per
// rendered line, so a single long list flows across page breaks instead of
// overflowing one page.
const (
	pageWidth    = 76
	contentLines = 56
	footerLines  = 3 // separator, attribution, page indicator
)

// attribution is the fixed footer line stamped on every page.
const attribution = "NowGo AI — Confidential onboarding report"

// TextRenderer renders the payload as a paginated plain-text document.
type TextRenderer struct{}

// Render lays out the payload sections in fixed order, wraps long lines to
// the page width, splits the result into pages and stamps each page footer
// with the final page count. Footers are applied after layout so "page X of
// N" is always correct.
func (TextRenderer) Render(p report.Payload) (Artifact, error) {
	lines := buildLines(p)

	pages := paginate(lines, contentLines)
	total := len(pages)

	var b strings.Builder
	for i, page := range pages {
		for _, l := range page {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		// Pad so the footer sits at the same position on every page.
		for pad := len(page); pad < contentLines; pad++ {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("-", pageWidth))
		b.WriteByte('\n')
		b.WriteString(attribution)
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("page %d of %d", i+1, total))
		b.WriteByte('\n')
		if i < total-1 {
			b.WriteByte('\f')
		}
	}

	return Artifact{
		Filename: Filename(p.CompanyName, p.GeneratedAt, "txt"),
		MIME:     "text/plain; charset=utf-8",
		Data:     []byte(b.String()),
		Pages:    total,
	}, nil
}

func buildLines(p report.Payload) []string {
	var out []string
	add := func(s string) { out = append(out, wrap(s, pageWidth)...) }
	field := func(label, value string) { add(fmt.Sprintf("%s: %s", label, value)) }
	list := func(items []string) {
		for i, it := range items {
			add(fmt.Sprintf("  %d. %s", i+1, it))
		}
	}
	section := func(title string) {
		out = append(out, "", title, strings.Repeat("=", len(title)), "")
	}

	add("NowGo AI Onboarding Report")
	add("Generated " + p.GeneratedAt.Format("2006-01-02 15:04 MST"))

	section("Company Information")
	field("Company", p.CompanyName)
	field("Tax ID", p.TaxID)
	field("Industry", p.Industry)
	field("Country", p.Country)
	field("Region", p.Region)
	field("Employees", p.Employees)
	field("Stage", p.Stage)

	section("Objectives and Priorities")
	field("Main objectives", joinOrPlaceholder(p.MainObjectives))
	field("Custom objective", p.CustomObjective)
	field("Challenges", p.Challenges)
	field("Priority areas", joinOrPlaceholder(p.PriorityAreas))
	field("Tools in use", joinOrPlaceholder(p.Tools))
	field("Databases", joinOrPlaceholder(p.Databases))
	field("Integrations", joinOrPlaceholder(p.Integrations))
	field("Digital maturity", p.Maturity)

	section("Assistant Configuration")
	field("Assistant role", p.AssistantRole)
	field("Primary focus", joinOrPlaceholder(p.PrimaryFocus))
	field("Uploaded documents", fmt.Sprintf("%d", p.FileCount))
	field("Reference links", fmt.Sprintf("%d", p.LinkCount))

	section("User Profile")
	field("Name", p.UserFullName)
	field("Position", p.UserPosition)
	field("Department", p.UserDepartment)
	field("Access level", p.UserAccess)
	field("Language style", p.LanguageStyle)
	field("Response depth", p.ResponseDepth)

	if len(p.ChatHistory) > 0 {
		section("Chat History")
		list(p.ChatHistory)
	}

	section("Suggested Questions")
	list(p.SuggestedQuestions)

	return out
}

func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return report.NotSpecified
	}
	return strings.Join(items, ", ")
}

// wrap breaks s into lines no wider than width runes, splitting on spaces.
// Words longer than the width are hard-broken on rune boundaries rather
// than overflowed.
func wrap(s string, width int) []string {
	if utf8.RuneCountInString(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, word := range strings.Fields(s) {
		wordLen := utf8.RuneCountInString(word)
		for wordLen > width {
			if curLen > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curLen = 0
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
			wordLen -= width
		}
		switch {
		case curLen == 0:
			cur.WriteString(word)
			curLen = wordLen
		case curLen+1+wordLen <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curLen += 1 + wordLen
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curLen = wordLen
		}
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func paginate(lines []string, perPage int) [][]string {
	if len(lines) == 0 {
		return [][]string{{}}
	}
	var pages [][]string
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	return pages
}
