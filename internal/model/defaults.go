package model

// Template describes one entry of the closed template catalog.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
	Style       string `json:"style"`
}

const DefaultTemplate = "classic"

// Templates is the closed catalog of selectable templates. Identifiers are
// part of the wire contract; unrecognized ids fall back to classic styling
// at render time instead of erroring.
var Templates = []Template{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional professional layout with clean typography",
		Preview:     "/templates/classic-preview.jpg",
		Style:       "classic",
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Contemporary design with accent colors and modern spacing",
		Preview:     "/templates/modern-preview.jpg",
		Style:       "modern",
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Bold design with creative elements and visual hierarchy",
		Preview:     "/templates/creative-preview.jpg",
		Style:       "creative",
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Clean and simple layout focusing on content",
		Preview:     "/templates/minimal-preview.jpg",
		Style:       "minimal",
	},
}

// DefaultSectionOrder returns a fresh copy of the canonical section order.
// Every document carries exactly these five sections; reordering permutes
// them and hiding flips Visible, but the set itself never changes.
func DefaultSectionOrder() []Section {
	return []Section{
		{ID: "personal", Type: SectionPersonal, Title: "Personal Information", Visible: true},
		{ID: "summary", Type: SectionSummary, Title: "Professional Summary", Visible: true},
		{ID: "experience", Type: SectionExperience, Title: "Work Experience", Visible: true},
		{ID: "education", Type: SectionEducation, Title: "Education", Visible: true},
		{ID: "skills", Type: SectionSkills, Title: "Skills", Visible: true},
	}
}

// NewResume creates an empty document: empty lists, default order, default
// template. No persistence identity until the store assigns one.
func NewResume() Resume {
	return Resume{
		Experience:   []Experience{},
		Education:    []Education{},
		Skills:       []Skill{},
		Template:     DefaultTemplate,
		SectionOrder: DefaultSectionOrder(),
	}
}

// Normalize fills defaults on a document received from the wire or the
// store: nil lists become empty, a missing template becomes classic, a
// missing or incomplete section order is reset to the default, and skills
// without a level default to Intermediate. Content is never altered.
func Normalize(r Resume) Resume {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Template == "" {
		r.Template = DefaultTemplate
	}
	if !hasAllSectionTypes(r.SectionOrder) {
		r.SectionOrder = DefaultSectionOrder()
	}
	for i := range r.Skills {
		if r.Skills[i].Level == "" {
			// copy-on-write so the caller's slice is left untouched
			skills := append([]Skill(nil), r.Skills...)
			for j := range skills {
				if skills[j].Level == "" {
					skills[j].Level = LevelIntermediate
				}
			}
			r.Skills = skills
			break
		}
	}
	return r
}

// hasAllSectionTypes reports whether order is a permutation of the five
// section types: no duplicates, no omissions.
func hasAllSectionTypes(order []Section) bool {
	want := map[SectionType]bool{
		SectionPersonal:   false,
		SectionSummary:    false,
		SectionExperience: false,
		SectionEducation:  false,
		SectionSkills:     false,
	}
	if len(order) != len(want) {
		return false
	}
	for _, s := range order {
		seen, ok := want[s.Type]
		if !ok || seen {
			return false
		}
		want[s.Type] = true
	}
	return true
}
