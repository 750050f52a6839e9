package model

import (
	"strings"
	"testing"
)

func TestRequiredFieldHints_EmptyResume(t *testing.T) {
	hints, err := RequiredFieldHints(NewResume())
	if err != nil {
		t.Fatalf("hints: %v", err)
	}
	for _, want := range []string{"fullName", "email"} {
		found := false
		for _, h := range hints {
			if strings.Contains(h, want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected a hint for %s, got %v", want, hints)
		}
	}
}

func TestRequiredFieldHints_CompleteResume(t *testing.T) {
	doc := NewResume()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Email = "jane@example.com"
	doc.Experience = []Experience{{ID: "e1", JobTitle: "Engineer", Company: "Acme", StartDate: "2021-02"}}
	doc.Education = []Education{{ID: "d1", Degree: "BSc", Institution: "IST", GraduationDate: "2020"}}
	doc.Skills = []Skill{{ID: "s1", Name: "Go", Level: LevelExpert}}

	hints, err := RequiredFieldHints(doc)
	if err != nil {
		t.Fatalf("hints: %v", err)
	}
	if len(hints) != 0 {
		t.Fatalf("complete resume must produce no hints, got %v", hints)
	}
}

func TestRequiredFieldHints_PointAtListEntries(t *testing.T) {
	doc := NewResume()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Email = "jane@example.com"
	doc.Experience = []Experience{{ID: "e1", StartDate: "2021-02"}}

	hints, err := RequiredFieldHints(doc)
	if err != nil {
		t.Fatalf("hints: %v", err)
	}
	joined := strings.Join(hints, " ")
	if !strings.Contains(joined, "jobTitle") || !strings.Contains(joined, "company") {
		t.Fatalf("expected entry-level hints, got %v", hints)
	}
}
