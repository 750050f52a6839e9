package usecase

import (
	"html/template"

	"resume-builder/internal/model"
)

// sectionRenderer produces the HTML fragment for one section of the
// document, or an empty fragment when the section's conditional-presence
// rule says it contributes nothing.
type sectionRenderer func(r model.Resume, sec model.Section, style TemplateStyle) (template.HTML, error)

// sectionRenderers keys the closed set of section types to their renderers.
// The render loop skips types missing from this map, so documents carrying
// section types from a newer or older schema degrade to rendering nothing
// for them rather than failing.
var sectionRenderers = map[model.SectionType]sectionRenderer{
	model.SectionPersonal:   renderPersonal,
	model.SectionSummary:    renderSummary,
	model.SectionExperience: renderExperience,
	model.SectionEducation:  renderEducation,
	model.SectionSkills:     renderSkills,
}
