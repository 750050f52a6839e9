package usecase

import "resume-builder/internal/model"

// TemplateStyle is one bundle of presentation parameters. Templates change
// these five knobs only; the structure the section renderers produce is the
// same under every template.
type TemplateStyle struct {
	Layout          string // class on the outer resume wrapper
	Header          string // class sizing the name header
	SectionHeading  string // class sizing section headings
	ExperienceBlock string // class on each experience block
	SkillsGroup     string // class on the skills group grid
}

var templateStyles = map[string]TemplateStyle{
	"classic": {
		Layout:          "layout-classic",
		Header:          "header-lg",
		SectionHeading:  "heading-md",
		ExperienceBlock: "exp-plain",
		SkillsGroup:     "skills-grid",
	},
	"modern": {
		Layout:          "layout-modern",
		Header:          "header-lg",
		SectionHeading:  "heading-md",
		ExperienceBlock: "exp-plain",
		SkillsGroup:     "skills-grid",
	},
	"creative": {
		Layout:          "layout-creative",
		Header:          "header-xl",
		SectionHeading:  "heading-lg",
		ExperienceBlock: "exp-card",
		SkillsGroup:     "skills-stack",
	},
	"minimal": {
		Layout:          "layout-minimal",
		Header:          "header-sm",
		SectionHeading:  "heading-sm",
		ExperienceBlock: "exp-rule",
		SkillsGroup:     "skills-list",
	},
}

// StyleFor resolves a template identifier to its style set. Unrecognized
// identifiers degrade to the classic styles instead of erroring.
func StyleFor(templateID string) TemplateStyle {
	if s, ok := templateStyles[templateID]; ok {
		return s
	}
	return templateStyles[model.DefaultTemplate]
}
