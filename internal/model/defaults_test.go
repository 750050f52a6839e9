package model

import "testing"

func TestNewResume(t *testing.T) {
	doc := NewResume()
	if doc.Template != DefaultTemplate {
		t.Fatalf("template = %q, want %q", doc.Template, DefaultTemplate)
	}
	if len(doc.SectionOrder) != 5 {
		t.Fatalf("got %d sections, want 5", len(doc.SectionOrder))
	}
	for _, s := range doc.SectionOrder {
		if !s.Visible {
			t.Fatalf("section %s must start visible", s.ID)
		}
	}
	if doc.Experience == nil || doc.Education == nil || doc.Skills == nil {
		t.Fatalf("lists must be empty, not nil")
	}
}

func TestNormalize_FillsDefaults(t *testing.T) {
	got := Normalize(Resume{})
	if got.Template != DefaultTemplate {
		t.Fatalf("template = %q, want %q", got.Template, DefaultTemplate)
	}
	if len(got.SectionOrder) != 5 {
		t.Fatalf("missing order must reset to default, got %v", got.SectionOrder)
	}
	if got.Experience == nil || got.Education == nil || got.Skills == nil {
		t.Fatalf("nil lists must become empty")
	}
}

func TestNormalize_ResetsBrokenOrder(t *testing.T) {
	doc := NewResume()
	// duplicate section type sneaks in from a drifted client
	doc.SectionOrder[1] = doc.SectionOrder[0]
	got := Normalize(doc)
	seen := map[SectionType]bool{}
	for _, s := range got.SectionOrder {
		if seen[s.Type] {
			t.Fatalf("normalize left a duplicate type: %v", got.SectionOrder)
		}
		seen[s.Type] = true
	}
}

func TestNormalize_KeepsCustomOrder(t *testing.T) {
	doc := NewResume()
	doc.SectionOrder[0], doc.SectionOrder[4] = doc.SectionOrder[4], doc.SectionOrder[0]
	doc.SectionOrder[2].Visible = false
	got := Normalize(doc)
	if got.SectionOrder[0].Type != SectionSkills || got.SectionOrder[2].Visible {
		t.Fatalf("valid custom order must survive normalize: %v", got.SectionOrder)
	}
}

func TestNormalize_DefaultsSkillLevel(t *testing.T) {
	doc := NewResume()
	doc.Skills = []Skill{{ID: "s1", Name: "Go"}, {ID: "s2", Name: "Rust", Level: LevelExpert}}
	got := Normalize(doc)
	if got.Skills[0].Level != LevelIntermediate {
		t.Fatalf("missing level must default to Intermediate, got %q", got.Skills[0].Level)
	}
	if got.Skills[1].Level != LevelExpert {
		t.Fatalf("set levels must be kept, got %q", got.Skills[1].Level)
	}
	if doc.Skills[0].Level != "" {
		t.Fatalf("normalize must not mutate the input slice")
	}
}

func TestIsEmpty(t *testing.T) {
	doc := NewResume()
	if !doc.IsEmpty() {
		t.Fatalf("fresh document must be empty")
	}
	doc.PersonalInfo.FullName = "Jane Doe"
	if doc.IsEmpty() {
		t.Fatalf("named document is not empty")
	}

	doc = NewResume()
	doc.Skills = []Skill{{ID: "s1", Name: "Go"}}
	if doc.IsEmpty() {
		t.Fatalf("document with skills is not empty")
	}
}

func TestTemplatesCatalog(t *testing.T) {
	want := []string{"classic", "modern", "creative", "minimal"}
	if len(Templates) != len(want) {
		t.Fatalf("got %d templates, want %d", len(Templates), len(want))
	}
	for i, id := range want {
		if Templates[i].ID != id {
			t.Fatalf("template %d = %q, want %q", i, Templates[i].ID, id)
		}
	}
}
