package model

import "time"

// Go models for the resume document exchanged with clients and persisted as
// a whole snapshot. Field names match the wire contract in resume.schema.json.

type PersonalInfo struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Location       string `json:"location,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	Website        string `json:"website,omitempty"`
	Summary        string `json:"summary,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type Experience struct {
	ID           string `json:"id"`
	JobTitle     string `json:"jobTitle"`
	Company      string `json:"company"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	IsCurrentJob bool   `json:"isCurrentJob"`
	Description  string `json:"description,omitempty"`
}

type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

// SkillLevel is a closed set; unknown values are kept as-is on the wire and
// rendered verbatim.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category,omitempty"`
	Level    SkillLevel `json:"level"`
}

// SectionType is the closed set of renderable resume sections.
type SectionType string

const (
	SectionPersonal   SectionType = "personal"
	SectionSummary    SectionType = "summary"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
)

// Section is one orderable, hideable block of the rendered resume. Its ID is
// stable across reorders; visibility is a flag, never removal from the order.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Visible bool        `json:"visible"`
}

// Resume is the complete document: content, render order and template choice,
// plus the persistence identity and timestamps assigned by the store.
type Resume struct {
	ID           string       `json:"id,omitempty"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Template     string       `json:"template"`
	SectionOrder []Section    `json:"sectionOrder"`
	CreatedAt    *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
}

// Summary is the listing projection returned by the summaries endpoint.
type Summary struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// IsEmpty reports whether the document has no renderable content at all:
// no name and no experience/education/skill entries. The renderer shows the
// empty-state placeholder for such documents regardless of order or template.
func (r *Resume) IsEmpty() bool {
	return r.PersonalInfo.FullName == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0
}
