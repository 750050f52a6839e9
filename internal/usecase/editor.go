package usecase

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// ErrOrderMismatch is returned when a submitted section order is not a
// permutation of the document's current sections.
var ErrOrderMismatch = fmt.Errorf("section order mismatch")

// The editor is the document mutation surface. Every operation takes a
// document snapshot and returns a new one; the input is never aliased, so
// callers can keep old snapshots around safely. Field names match the JSON
// wire names (case-insensitive). Updating or removing a list item by an
// absent id is a silent no-op; only reorder commits can fail.

// CloneResume returns a deep copy of the document. Empty lists stay empty
// (not nil) so snapshots compare equal and encode as [] on the wire.
func CloneResume(r model.Resume) model.Resume {
	out := r
	if r.Experience != nil {
		out.Experience = make([]model.Experience, len(r.Experience))
		copy(out.Experience, r.Experience)
	}
	if r.Education != nil {
		out.Education = make([]model.Education, len(r.Education))
		copy(out.Education, r.Education)
	}
	if r.Skills != nil {
		out.Skills = make([]model.Skill, len(r.Skills))
		copy(out.Skills, r.Skills)
	}
	if r.SectionOrder != nil {
		out.SectionOrder = make([]model.Section, len(r.SectionOrder))
		copy(out.SectionOrder, r.SectionOrder)
	}
	return out
}

// UpdatePersonalField sets one personal-info field by wire name. Unknown
// field names leave the document unchanged.
func UpdatePersonalField(r model.Resume, field, value string) model.Resume {
	out := CloneResume(r)
	switch strings.ToLower(field) {
	case "fullname":
		out.PersonalInfo.FullName = value
	case "email":
		out.PersonalInfo.Email = value
	case "phone":
		out.PersonalInfo.Phone = value
	case "location":
		out.PersonalInfo.Location = value
	case "linkedin":
		out.PersonalInfo.LinkedIn = value
	case "website":
		out.PersonalInfo.Website = value
	case "summary":
		out.PersonalInfo.Summary = value
	case "profilepicture":
		out.PersonalInfo.ProfilePicture = value
	}
	return out
}

// AddExperience appends a blank experience entry with a fresh id.
func AddExperience(r model.Resume) model.Resume {
	out := CloneResume(r)
	out.Experience = append(out.Experience, model.Experience{ID: uuid.NewString()})
	return out
}

// UpdateExperienceField sets one field of the experience entry with the
// given id. The value is coerced per field: isCurrentJob accepts a bool or
// the strings "true"/"false", everything else is stored as its string form.
func UpdateExperienceField(r model.Resume, id, field string, value interface{}) model.Resume {
	out := CloneResume(r)
	for i, exp := range out.Experience {
		if exp.ID != id {
			continue
		}
		switch strings.ToLower(field) {
		case "jobtitle":
			exp.JobTitle = asString(value)
		case "company":
			exp.Company = asString(value)
		case "location":
			exp.Location = asString(value)
		case "startdate":
			exp.StartDate = asString(value)
		case "enddate":
			exp.EndDate = asString(value)
		case "iscurrentjob":
			exp.IsCurrentJob = asBool(value)
		case "description":
			exp.Description = asString(value)
		}
		out.Experience[i] = exp
		break
	}
	return out
}

// RemoveExperience deletes the entry with the given id; absent ids no-op.
func RemoveExperience(r model.Resume, id string) model.Resume {
	out := CloneResume(r)
	out.Experience = removeExperienceByID(out.Experience, id)
	return out
}

// AddEducation appends a blank education entry with a fresh id.
func AddEducation(r model.Resume) model.Resume {
	out := CloneResume(r)
	out.Education = append(out.Education, model.Education{ID: uuid.NewString()})
	return out
}

// UpdateEducationField sets one field of the education entry with the given id.
func UpdateEducationField(r model.Resume, id, field, value string) model.Resume {
	out := CloneResume(r)
	for i, edu := range out.Education {
		if edu.ID != id {
			continue
		}
		switch strings.ToLower(field) {
		case "degree":
			edu.Degree = value
		case "institution":
			edu.Institution = value
		case "location":
			edu.Location = value
		case "graduationdate":
			edu.GraduationDate = value
		case "gpa":
			edu.GPA = value
		case "honors":
			edu.Honors = value
		}
		out.Education[i] = edu
		break
	}
	return out
}

// RemoveEducation deletes the entry with the given id; absent ids no-op.
func RemoveEducation(r model.Resume, id string) model.Resume {
	out := CloneResume(r)
	out.Education = removeEducationByID(out.Education, id)
	return out
}

// AddSkill appends a blank skill with a fresh id and the default level.
func AddSkill(r model.Resume) model.Resume {
	out := CloneResume(r)
	out.Skills = append(out.Skills, model.Skill{ID: uuid.NewString(), Level: model.LevelIntermediate})
	return out
}

// UpdateSkillField sets one field of the skill with the given id.
func UpdateSkillField(r model.Resume, id, field, value string) model.Resume {
	out := CloneResume(r)
	for i, sk := range out.Skills {
		if sk.ID != id {
			continue
		}
		switch strings.ToLower(field) {
		case "name":
			sk.Name = value
		case "category":
			sk.Category = value
		case "level":
			sk.Level = model.SkillLevel(value)
		}
		out.Skills[i] = sk
		break
	}
	return out
}

// RemoveSkill deletes the skill with the given id; absent ids no-op.
func RemoveSkill(r model.Resume, id string) model.Resume {
	out := CloneResume(r)
	out.Skills = removeSkillByID(out.Skills, id)
	return out
}

// SetTemplate stores the template identifier as-is. Unknown identifiers are
// legal; the renderer falls back to classic styling for them.
func SetTemplate(r model.Resume, templateID string) model.Resume {
	out := CloneResume(r)
	out.Template = templateID
	return out
}

// SetSectionOrder commits a new section order, typically the output of
// ReorderSections. The new order must contain exactly the document's current
// section ids; anything else is rejected so a section can never be dropped
// or duplicated through a commit.
func SetSectionOrder(r model.Resume, order []model.Section) (model.Resume, error) {
	if !sameSectionSet(r.SectionOrder, order) {
		return r, fmt.Errorf("commit order: %w", ErrOrderMismatch)
	}
	out := CloneResume(r)
	out.SectionOrder = make([]model.Section, len(order))
	copy(out.SectionOrder, order)
	return out, nil
}

func sameSectionSet(current, next []model.Section) bool {
	if len(current) != len(next) {
		return false
	}
	seen := make(map[string]int, len(current))
	for _, s := range current {
		seen[s.ID]++
	}
	for _, s := range next {
		seen[s.ID]--
		if seen[s.ID] < 0 {
			return false
		}
	}
	return true
}

func removeExperienceByID(list []model.Experience, id string) []model.Experience {
	out := list[:0]
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func removeEducationByID(list []model.Education, id string) []model.Education {
	out := list[:0]
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func removeSkillByID(list []model.Skill, id string) []model.Skill {
	out := list[:0]
	for _, s := range list {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	default:
		return false
	}
}
