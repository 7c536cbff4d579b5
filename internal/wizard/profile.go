// Package wizard holds the onboarding state machine: the five profile
// records collected across the wizard steps, the controller that owns and
// mutates them, and the step access policy that gates navigation.
package wizard

// =============================================================================
// ENUM FIELDS
// =============================================================================
// Single-select fields are closed string types validated when a patch is
// applied. The UI only offers catalog values, but the boundary check means a
// typo in calling code surfaces as an untouched field instead of corrupt
// state.

// EmployeeBand is the company headcount bracket.
type EmployeeBand string

const (
	Employees1to10     EmployeeBand = "1-10"
	Employees11to50    EmployeeBand = "11-50"
	Employees51to200   EmployeeBand = "51-200"
	Employees201to500  EmployeeBand = "201-500"
	Employees501to1000 EmployeeBand = "501-1000"
	EmployeesOver1000  EmployeeBand = "1000+"
)

// EmployeeBands lists every band in display order.
var EmployeeBands = []EmployeeBand{
	Employees1to10, Employees11to50, Employees51to200,
	Employees201to500, Employees501to1000, EmployeesOver1000,
}

func (b EmployeeBand) Valid() bool { return b == "" || containsEnum(EmployeeBands, b) }

// CompanyStage is the growth stage of the organization.
type CompanyStage string

const (
	StageIdeation   CompanyStage = "Ideation"
	StageValidation CompanyStage = "Validation"
	StageTraction   CompanyStage = "Traction"
	StageScale      CompanyStage = "Scale"
	StageGlobal     CompanyStage = "Global"
)

var CompanyStages = []CompanyStage{
	StageIdeation, StageValidation, StageTraction, StageScale, StageGlobal,
}

func (s CompanyStage) Valid() bool { return s == "" || containsEnum(CompanyStages, s) }

// Industry is the company sector.
type Industry string

// Industries lists the selectable sectors in display order.
var Industries = []Industry{
	"Technology", "Healthcare", "Finance", "Education", "Retail",
	"Logistics", "Manufacturing", "Services", "Energy", "Agriculture",
	"Construction", "Media", "Telecommunications", "Hospitality", "Other",
}

func (i Industry) Valid() bool { return i == "" || containsEnum(Industries, i) }

// MaturityLevel is the self-assessed digital maturity of the company.
type MaturityLevel string

const (
	MaturityBeginner     MaturityLevel = "beginner"
	MaturityIntermediate MaturityLevel = "intermediate"
	MaturityAdvanced     MaturityLevel = "advanced"
	MaturityExpert       MaturityLevel = "expert"
)

var MaturityLevels = []MaturityLevel{
	MaturityBeginner, MaturityIntermediate, MaturityAdvanced, MaturityExpert,
}

func (m MaturityLevel) Valid() bool { return m == "" || containsEnum(MaturityLevels, m) }

// AccessLevel is the primary user's permission tier.
type AccessLevel string

const (
	AccessAdmin       AccessLevel = "admin"
	AccessManager     AccessLevel = "manager"
	AccessContributor AccessLevel = "contributor"
)

var AccessLevels = []AccessLevel{AccessAdmin, AccessManager, AccessContributor}

func (a AccessLevel) Valid() bool { return a == "" || containsEnum(AccessLevels, a) }

// LanguageStyle tunes the assistant's tone. Optional.
type LanguageStyle string

const (
	StyleFormal     LanguageStyle = "formal"
	StyleDirect     LanguageStyle = "direct"
	StyleEmpathetic LanguageStyle = "empathetic"
	StyleCasual     LanguageStyle = "casual"
)

var LanguageStyles = []LanguageStyle{StyleFormal, StyleDirect, StyleEmpathetic, StyleCasual}

func (s LanguageStyle) Valid() bool { return s == "" || containsEnum(LanguageStyles, s) }

// ResponseDepth tunes how detailed assistant answers should be. Optional.
type ResponseDepth string

const (
	DepthSimple    ResponseDepth = "simple"
	DepthTechnical ResponseDepth = "technical"
	DepthStrategic ResponseDepth = "strategic"
	DepthDeep      ResponseDepth = "deep"
)

var ResponseDepths = []ResponseDepth{DepthSimple, DepthTechnical, DepthStrategic, DepthDeep}

func (d ResponseDepth) Valid() bool { return d == "" || containsEnum(ResponseDepths, d) }

// AssistantRole is the persona the customized assistant adopts.
type AssistantRole string

const (
	RoleConsultant   AssistantRole = "consultant"
	RoleAnalyst      AssistantRole = "analyst"
	RoleWriter       AssistantRole = "writer"
	RoleLegalAdvisor AssistantRole = "legal-advisor"
	RoleStrategist   AssistantRole = "strategist"
	RoleCoach        AssistantRole = "coach"
)

var AssistantRoles = []AssistantRole{
	RoleConsultant, RoleAnalyst, RoleWriter,
	RoleLegalAdvisor, RoleStrategist, RoleCoach,
}

func (r AssistantRole) Valid() bool { return r == "" || containsEnum(AssistantRoles, r) }

// DisplayName maps a role to its user-facing label.
func (r AssistantRole) DisplayName() string {
	switch r {
	case RoleConsultant:
		return "Consultant"
	case RoleAnalyst:
		return "Analyst"
	case RoleWriter:
		return "Writer"
	case RoleLegalAdvisor:
		return "Legal Advisor"
	case RoleStrategist:
		return "Strategist"
	case RoleCoach:
		return "Coach"
	}
	return string(r)
}

func containsEnum[T comparable](catalog []T, v T) bool {
	for _, c := range catalog {
		if c == v {
			return true
		}
	}
	return false
}

// =============================================================================
// TAG CATALOGS
// =============================================================================
// Multi-select options are plain string tags drawn from fixed catalogs.
// Profiles store tags in insertion order with at-most-once membership.

// ObjectiveTags are the selectable strategic objectives (step 2).
var ObjectiveTags = []string{
	"reduce-costs", "increase-revenue", "optimize-processes",
	"improve-customer-experience", "develop-new-products", "expand-markets",
	"transform-digital", "sustainability", "innovation", "other",
}

// PriorityAreaTags are the areas where AI should have the greatest impact.
var PriorityAreaTags = []string{
	"legal", "hr", "growth", "esg", "sales", "marketing",
	"finance", "operations", "it", "innovation", "strategy", "compliance",
}

// ToolTags are the tool categories already in use (step 3).
var ToolTags = []string{
	"crm", "erp", "spreadsheets", "bi", "project-management", "other",
}

// DatabaseTags are the database technologies in use.
var DatabaseTags = []string{
	"sql", "mongodb", "postgresql", "oracle", "mysql", "firebase", "none",
}

// IntegrationTags are the API integrations in use.
var IntegrationTags = []string{
	"zapier", "hubspot", "notion", "power-bi", "google-analytics",
	"slack", "microsoft-teams", "other",
}

// FocusAreaTags are the assistant's primary focus areas (step 5).
var FocusAreaTags = []string{
	"growth", "esg", "finance", "digital-transformation", "public-policy",
	"innovation", "marketing", "sales", "hr", "operations",
}

// TagLabel returns the display label for a catalog tag. Tags not in the
// label table fall back to the raw id.
func TagLabel(tag string) string {
	if l, ok := tagLabels[tag]; ok {
		return l
	}
	return tag
}

var tagLabels = map[string]string{
	"reduce-costs":                "Reduce Costs",
	"increase-revenue":            "Increase Revenue",
	"optimize-processes":          "Optimize Processes",
	"improve-customer-experience": "Improve Customer Experience",
	"develop-new-products":        "Develop New Products",
	"expand-markets":              "Expand Markets",
	"transform-digital":           "Digital Transformation",
	"sustainability":              "Sustainability",
	"innovation":                  "Innovation",
	"other":                       "Other",
	"legal":                       "Legal",
	"hr":                          "HR",
	"growth":                      "Growth",
	"esg":                         "ESG",
	"sales":                       "Sales",
	"marketing":                   "Marketing",
	"finance":                     "Finance",
	"operations":                  "Operations",
	"it":                          "IT",
	"strategy":                    "Strategy",
	"compliance":                  "Compliance",
	"crm":                         "CRM (Salesforce, etc)",
	"erp":                         "ERP (SAP, etc)",
	"spreadsheets":                "Spreadsheets",
	"bi":                          "BI Tools",
	"project-management":          "Project Management",
	"sql":                         "SQL",
	"mongodb":                     "MongoDB",
	"postgresql":                  "PostgreSQL",
	"oracle":                      "Oracle",
	"mysql":                       "MySQL",
	"firebase":                    "Firebase",
	"none":                        "None",
	"zapier":                      "Zapier",
	"hubspot":                     "HubSpot",
	"notion":                      "Notion",
	"power-bi":                    "Power BI",
	"google-analytics":            "Google Analytics",
	"slack":                       "Slack",
	"microsoft-teams":             "Microsoft Teams",
	"digital-transformation":      "Digital Transformation",
	"public-policy":               "Public Policy",
}

// =============================================================================
// PROFILES
// =============================================================================

// CompanyProfile is the step 1 record.
// Required for step validity: Name, TaxID, Industry, Country, Employees, Stage.
type CompanyProfile struct {
	Name      string
	TaxID     string
	Industry  Industry
	Country   string
	Region    string // state or city; optional
	Employees EmployeeBand
	Stage     CompanyStage
}

// ObjectivesProfile is the step 2 record.
// Required: at least one priority area.
type ObjectivesProfile struct {
	MainObjectives  []string
	CustomObjective string
	Challenges      string
	PriorityAreas   []string
}

// InfrastructureProfile is the step 3 record.
// Required: Maturity.
type InfrastructureProfile struct {
	Tools             []string
	CustomTool        string
	Databases         []string
	Integrations      []string
	CustomIntegration string
	Maturity          MaturityLevel
}

// UserProfile is the step 4 record.
// Required: FullName, Position, Department, AccessLevel.
type UserProfile struct {
	FullName    string
	Position    string
	Department  string
	AccessLevel AccessLevel
	Style       LanguageStyle // optional
	Depth       ResponseDepth // optional
}

// FileRef describes an uploaded context document. Only the name and byte
// size are retained; file content stays with the host file picker.
type FileRef struct {
	Name string
	Size int64
}

// PersonalizationProfile is the step 5 record.
// Required: Role and at least one focus area.
type PersonalizationProfile struct {
	// ReferenceURLs may contain empty placeholder entries; they are
	// filtered at render time, never at storage time.
	ReferenceURLs []string
	Files         []FileRef
	Role          AssistantRole
	PrimaryFocus  []string
}

// =============================================================================
// PATCHES
// =============================================================================
// Each wizard step submits partial updates. A nil field leaves the current
// value untouched; a set field replaces it. Tag-set fields are normalized to
// at-most-once membership when applied.

// CompanyPatch is a partial update for CompanyProfile.
type CompanyPatch struct {
	Name      *string
	TaxID     *string
	Industry  *Industry
	Country   *string
	Region    *string
	Employees *EmployeeBand
	Stage     *CompanyStage
}

// ObjectivesPatch is a partial update for ObjectivesProfile.
type ObjectivesPatch struct {
	MainObjectives  *[]string
	CustomObjective *string
	Challenges      *string
	PriorityAreas   *[]string
}

// InfrastructurePatch is a partial update for InfrastructureProfile.
type InfrastructurePatch struct {
	Tools             *[]string
	CustomTool        *string
	Databases         *[]string
	Integrations      *[]string
	CustomIntegration *string
	Maturity          *MaturityLevel
}

// UserPatch is a partial update for UserProfile.
type UserPatch struct {
	FullName    *string
	Position    *string
	Department  *string
	AccessLevel *AccessLevel
	Style       *LanguageStyle
	Depth       *ResponseDepth
}

// PersonalizationPatch is a partial update for PersonalizationProfile.
type PersonalizationPatch struct {
	ReferenceURLs *[]string
	Files         *[]FileRef
	Role          *AssistantRole
	PrimaryFocus  *[]string
}

// =============================================================================
// TAG SET OPERATIONS
// =============================================================================

// AddTag appends tag to set if absent. Idempotent.
func AddTag(set []string, tag string) []string {
	if HasTag(set, tag) {
		return set
	}
	return append(set, tag)
}

// RemoveTag removes tag from set. Removing an absent tag is a no-op.
func RemoveTag(set []string, tag string) []string {
	out := set[:0:0]
	for _, t := range set {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// ToggleTag adds tag when absent and removes it when present.
func ToggleTag(set []string, tag string) []string {
	if HasTag(set, tag) {
		return RemoveTag(set, tag)
	}
	return AddTag(set, tag)
}

// HasTag reports whether tag is a member of set.
func HasTag(set []string, tag string) bool {
	for _, t := range set {
		if t == tag {
			return true
		}
	}
	return false
}

// dedupeTags drops repeated tags, keeping first occurrence order.
func dedupeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		out = AddTag(out, t)
	}
	return out
}
