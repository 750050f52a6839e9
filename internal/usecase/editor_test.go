package usecase

import (
	"errors"
	"reflect"
	"testing"

	"resume-builder/internal/model"
)

func TestUpdatePersonalField(t *testing.T) {
	doc := model.NewResume()
	got := UpdatePersonalField(doc, "fullName", "Jane Doe")
	if got.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("fullName not set: %+v", got.PersonalInfo)
	}
	if doc.PersonalInfo.FullName != "" {
		t.Fatalf("input snapshot was mutated")
	}

	got = UpdatePersonalField(got, "summary", "Engineer.")
	if got.PersonalInfo.Summary != "Engineer." || got.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("sequential updates lost data: %+v", got.PersonalInfo)
	}
}

func TestUpdatePersonalField_UnknownFieldNoop(t *testing.T) {
	doc := UpdatePersonalField(model.NewResume(), "fullName", "Jane Doe")
	got := UpdatePersonalField(doc, "favoriteColor", "orange")
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("unknown field must be a no-op: %+v", got)
	}
}

func TestAddExperience_FreshUniqueIDs(t *testing.T) {
	doc := model.NewResume()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		doc = AddExperience(doc)
		id := doc.Experience[len(doc.Experience)-1].ID
		if id == "" {
			t.Fatalf("iteration %d: empty id", i)
		}
		if seen[id] {
			t.Fatalf("iteration %d: duplicate id %q", i, id)
		}
		seen[id] = true
	}
	if len(doc.Experience) != 20 {
		t.Fatalf("got %d entries, want 20", len(doc.Experience))
	}
}

func TestUpdateExperienceField(t *testing.T) {
	doc := AddExperience(model.NewResume())
	id := doc.Experience[0].ID

	doc = UpdateExperienceField(doc, id, "jobTitle", "Engineer")
	doc = UpdateExperienceField(doc, id, "isCurrentJob", true)
	doc = UpdateExperienceField(doc, id, "endDate", "2024-12")

	exp := doc.Experience[0]
	if exp.JobTitle != "Engineer" || !exp.IsCurrentJob || exp.EndDate != "2024-12" {
		t.Fatalf("updates not applied: %+v", exp)
	}

	// string-typed booleans from form payloads coerce too
	doc = UpdateExperienceField(doc, id, "isCurrentJob", "false")
	if doc.Experience[0].IsCurrentJob {
		t.Fatalf("string false must coerce")
	}
}

func TestUpdateExperienceField_AbsentIDNoop(t *testing.T) {
	doc := AddExperience(model.NewResume())
	got := UpdateExperienceField(doc, "missing", "jobTitle", "Engineer")
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("absent id must be a no-op")
	}
}

func TestRemoveExperience_Idempotent(t *testing.T) {
	doc := AddExperience(AddExperience(model.NewResume()))
	id := doc.Experience[0].ID

	got := RemoveExperience(doc, id)
	if len(got.Experience) != 1 {
		t.Fatalf("got %d entries, want 1", len(got.Experience))
	}
	if len(doc.Experience) != 2 {
		t.Fatalf("input snapshot was mutated")
	}

	again := RemoveExperience(got, id)
	if !reflect.DeepEqual(again, got) {
		t.Fatalf("deleting an absent id must return an equal document")
	}
}

func TestEducationOperations(t *testing.T) {
	doc := AddEducation(model.NewResume())
	id := doc.Education[0].ID

	doc = UpdateEducationField(doc, id, "degree", "BSc")
	doc = UpdateEducationField(doc, id, "gpa", "3.8")
	if doc.Education[0].Degree != "BSc" || doc.Education[0].GPA != "3.8" {
		t.Fatalf("updates not applied: %+v", doc.Education[0])
	}

	doc = RemoveEducation(doc, "missing")
	if len(doc.Education) != 1 {
		t.Fatalf("absent id must be a no-op")
	}
	doc = RemoveEducation(doc, id)
	if len(doc.Education) != 0 {
		t.Fatalf("entry not removed")
	}
}

func TestSkillOperations(t *testing.T) {
	doc := AddSkill(model.NewResume())
	id := doc.Skills[0].ID

	if doc.Skills[0].Level != model.LevelIntermediate {
		t.Fatalf("new skills default to Intermediate, got %q", doc.Skills[0].Level)
	}

	doc = UpdateSkillField(doc, id, "name", "Go")
	doc = UpdateSkillField(doc, id, "category", "Languages")
	doc = UpdateSkillField(doc, id, "level", "Expert")
	sk := doc.Skills[0]
	if sk.Name != "Go" || sk.Category != "Languages" || sk.Level != model.LevelExpert {
		t.Fatalf("updates not applied: %+v", sk)
	}

	doc = RemoveSkill(doc, id)
	if len(doc.Skills) != 0 {
		t.Fatalf("skill not removed")
	}
}

func TestSetTemplate_StoresUnknownIDs(t *testing.T) {
	doc := SetTemplate(model.NewResume(), "brutalist")
	if doc.Template != "brutalist" {
		t.Fatalf("template not stored: %q", doc.Template)
	}
	// unknown ids degrade at render time instead
	if StyleFor(doc.Template) != StyleFor("classic") {
		t.Fatalf("unknown template must fall back to classic styling")
	}
}

func TestSetSectionOrder_CommitsReorderOutput(t *testing.T) {
	doc := AddExperience(model.NewResume())
	doc = UpdatePersonalField(doc, "fullName", "Jane Doe")

	order, err := ReorderSections(doc.SectionOrder, "skills", "personal")
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	got, err := SetSectionOrder(doc, order)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got.SectionOrder[0].ID != "skills" {
		t.Fatalf("order not committed: %v", ids(got.SectionOrder))
	}

	// reordering must never touch content
	if got.PersonalInfo.FullName != "Jane Doe" || len(got.Experience) != 1 {
		t.Fatalf("content changed by reorder commit: %+v", got)
	}
	if doc.SectionOrder[0].ID != "personal" {
		t.Fatalf("input snapshot was mutated")
	}
}

func TestSetSectionOrder_RejectsMismatch(t *testing.T) {
	doc := model.NewResume()

	_, err := SetSectionOrder(doc, doc.SectionOrder[:4])
	if !errors.Is(err, ErrOrderMismatch) {
		t.Fatalf("short order: got %v, want ErrOrderMismatch", err)
	}

	dup := append([]model.Section(nil), doc.SectionOrder...)
	dup[1] = dup[0]
	_, err = SetSectionOrder(doc, dup)
	if !errors.Is(err, ErrOrderMismatch) {
		t.Fatalf("duplicated section: got %v, want ErrOrderMismatch", err)
	}
}

func TestCloneResume_NoAliasing(t *testing.T) {
	doc := AddSkill(AddExperience(model.NewResume()))
	clone := CloneResume(doc)
	clone.Experience[0].JobTitle = "Changed"
	clone.Skills[0].Name = "Changed"
	clone.SectionOrder[0].Visible = false
	if doc.Experience[0].JobTitle == "Changed" || doc.Skills[0].Name == "Changed" || !doc.SectionOrder[0].Visible {
		t.Fatalf("clone aliases the original")
	}
}
