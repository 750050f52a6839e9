package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"strings"

	"resume-builder/internal/model"

	"golang.org/x/net/publicsuffix"
)

// The renderer projects a document to HTML. It is a pure function of the
// document: section content comes from the per-section renderers dispatched
// in sectionOrder, presentation comes from the template's style parameters.
// It never fails on missing optional fields, empty lists or unknown enum
// values.

const sectionTemplates = `
{{define "personal"}}
<div class="section section-personal">
  {{if .Picture}}<div class="picture"><img src="{{.Picture}}" alt="Profile"/></div>{{end}}
  <h1 class="{{.HeaderClass}}">{{.Name}}</h1>
  {{if .Contact}}<div class="contact">{{range $i, $c := .Contact}}{{if $i}} {{end}}<span>{{$c}}</span>{{end}}</div>{{end}}
  {{if .Links}}<div class="links">{{range $i, $l := .Links}}{{if $i}} {{end}}<a href="{{$l.Href}}">{{$l.Label}}</a>{{end}}</div>{{end}}
</div>
{{end}}

{{define "summary"}}
<div class="section section-summary">
  <h2 class="{{.HeadingClass}}">{{.Title}}</h2>
  <p>{{.Summary}}</p>
</div>
{{end}}

{{define "experience"}}
<div class="section section-experience">
  <h2 class="{{.HeadingClass}}">{{.Title}}</h2>
  {{range .Entries}}
  <div class="{{$.BlockClass}}">
    <div class="entry-head">
      <div>
        <h3>{{.JobTitle}}</h3>
        <p class="org">{{.Company}}</p>
        {{if .Location}}<p class="muted">{{.Location}}</p>{{end}}
      </div>
      <div class="dates">{{.DateRange}}</div>
    </div>
    {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "education"}}
<div class="section section-education">
  <h2 class="{{.HeadingClass}}">{{.Title}}</h2>
  {{range .Entries}}
  <div class="edu-entry">
    <div class="entry-head">
      <div>
        <h3>{{.Degree}}</h3>
        <p class="org">{{.Institution}}</p>
        {{if .Location}}<p class="muted">{{.Location}}</p>{{end}}
        {{if .Credentials}}<p class="muted credentials">{{.Credentials}}</p>{{end}}
      </div>
      <div class="dates">{{.GraduationDate}}</div>
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "skills"}}
<div class="section section-skills">
  <h2 class="{{.HeadingClass}}">{{.Title}}</h2>
  <div class="{{.GroupClass}}">
    {{range .Groups}}
    <div class="skill-group">
      <h3>{{.Category}}</h3>
      {{range .Skills}}
      <div class="skill"><span>{{.Name}}</span><span class="level">{{.Level}}</span></div>
      {{end}}
    </div>
    {{end}}
  </div>
</div>
{{end}}

{{define "empty"}}
<div class="resume-empty">
  <h3>Your resume preview will appear here</h3>
  <p>Start filling out the form to see your resume come to life!</p>
  <p class="muted">You can drag and drop sections to reorder them.</p>
</div>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="resume {{.LayoutClass}}">
{{.Body}}
</div>
</body>
</html>
{{end}}
`

var resumeTpl = template.Must(template.New("resume").Parse(sectionTemplates))

// Render projects the document to its HTML body: the empty-state placeholder
// for documents with no content, otherwise every visible section in order.
func Render(r model.Resume) (string, error) {
	if r.IsEmpty() {
		return execute("empty", nil)
	}

	style := StyleFor(r.Template)
	var b strings.Builder
	for _, sec := range VisibleSections(r.SectionOrder) {
		render, ok := sectionRenderers[sec.Type]
		if !ok {
			continue
		}
		frag, err := render(r, sec, style)
		if err != nil {
			return "", fmt.Errorf("render section %s: %w", sec.Type, err)
		}
		b.WriteString(string(frag))
	}
	return b.String(), nil
}

// RenderPage wraps the rendered body in a printable standalone page with the
// stylesheet inlined, ready for the PDF exporter or a browser print dialog.
func RenderPage(r model.Resume) (string, error) {
	body, err := Render(r)
	if err != nil {
		return "", err
	}

	title := r.PersonalInfo.FullName
	if title == "" {
		title = "Resume"
	}

	data := map[string]interface{}{
		"Title":       title,
		"CSS":         template.CSS(loadStylesheet()),
		"LayoutClass": StyleFor(r.Template).Layout,
		"Body":        template.HTML(body),
	}
	return execute("page", data)
}

// loadStylesheet reads templates/style.css from the usual locations.
// Best-effort: a missing stylesheet renders unstyled rather than failing.
func loadStylesheet() string {
	candidates := []string{"templates/style.css", "./templates/style.css", "/app/templates/style.css"}
	for _, c := range candidates {
		if b, err := os.ReadFile(c); err == nil {
			return string(b)
		}
	}
	return ""
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := resumeTpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type link struct {
	Href  string
	Label string
}

func renderPersonal(r model.Resume, _ model.Section, style TemplateStyle) (template.HTML, error) {
	info := r.PersonalInfo

	name := info.FullName
	if name == "" {
		name = "Your Name"
	}

	contact := make([]string, 0, 3)
	for _, v := range []string{info.Email, info.Phone, info.Location} {
		if v != "" {
			contact = append(contact, v)
		}
	}

	links := make([]link, 0, 2)
	for _, v := range []string{info.LinkedIn, info.Website} {
		if v != "" {
			links = append(links, link{Href: ensureScheme(v), Label: linkLabel(v)})
		}
	}

	out, err := execute("personal", map[string]interface{}{
		"Name": name,
		// data-URI pictures are legitimate here; template.URL keeps the
		// sanitizer from rewriting them
		"Picture":     template.URL(info.ProfilePicture),
		"Contact":     contact,
		"Links":       links,
		"HeaderClass": style.Header,
	})
	return template.HTML(out), err
}

// renderSummary contributes nothing at all, heading included, when the
// summary text is empty.
func renderSummary(r model.Resume, sec model.Section, style TemplateStyle) (template.HTML, error) {
	if r.PersonalInfo.Summary == "" {
		return "", nil
	}
	out, err := execute("summary", map[string]interface{}{
		"Title":        sectionTitle(sec, "Professional Summary"),
		"Summary":      r.PersonalInfo.Summary,
		"HeadingClass": style.SectionHeading,
	})
	return template.HTML(out), err
}

type experienceEntry struct {
	JobTitle    string
	Company     string
	Location    string
	DateRange   string
	Description string
}

func renderExperience(r model.Resume, sec model.Section, style TemplateStyle) (template.HTML, error) {
	if len(r.Experience) == 0 {
		return "", nil
	}
	// insertion order is authoritative; entries are never re-sorted by date
	entries := make([]experienceEntry, 0, len(r.Experience))
	for _, exp := range r.Experience {
		end := exp.EndDate
		if exp.IsCurrentJob {
			end = "Present"
		}
		entries = append(entries, experienceEntry{
			JobTitle:    exp.JobTitle,
			Company:     exp.Company,
			Location:    exp.Location,
			DateRange:   fmt.Sprintf("%s - %s", exp.StartDate, end),
			Description: exp.Description,
		})
	}
	out, err := execute("experience", map[string]interface{}{
		"Title":        sectionTitle(sec, "Work Experience"),
		"Entries":      entries,
		"HeadingClass": style.SectionHeading,
		"BlockClass":   style.ExperienceBlock,
	})
	return template.HTML(out), err
}

type educationEntry struct {
	Degree         string
	Institution    string
	Location       string
	GraduationDate string
	Credentials    string
}

func renderEducation(r model.Resume, sec model.Section, style TemplateStyle) (template.HTML, error) {
	if len(r.Education) == 0 {
		return "", nil
	}
	entries := make([]educationEntry, 0, len(r.Education))
	for _, edu := range r.Education {
		entries = append(entries, educationEntry{
			Degree:         edu.Degree,
			Institution:    edu.Institution,
			Location:       edu.Location,
			GraduationDate: edu.GraduationDate,
			Credentials:    credentialsLine(edu),
		})
	}
	out, err := execute("education", map[string]interface{}{
		"Title":        sectionTitle(sec, "Education"),
		"Entries":      entries,
		"HeadingClass": style.SectionHeading,
	})
	return template.HTML(out), err
}

// credentialsLine builds the "GPA: x | honors" composite. The separator
// appears only when both parts are present.
func credentialsLine(edu model.Education) string {
	switch {
	case edu.GPA != "" && edu.Honors != "":
		return fmt.Sprintf("GPA: %s | %s", edu.GPA, edu.Honors)
	case edu.GPA != "":
		return "GPA: " + edu.GPA
	case edu.Honors != "":
		return edu.Honors
	default:
		return ""
	}
}

type skillGroup struct {
	Category string
	Skills   []model.Skill
}

func renderSkills(r model.Resume, sec model.Section, style TemplateStyle) (template.HTML, error) {
	if len(r.Skills) == 0 {
		return "", nil
	}
	out, err := execute("skills", map[string]interface{}{
		"Title":        sectionTitle(sec, "Skills"),
		"Groups":       groupSkills(r.Skills),
		"HeadingClass": style.SectionHeading,
		"GroupClass":   style.SkillsGroup,
	})
	return template.HTML(out), err
}

// groupSkills folds the skill list into category groups in a single pass.
// The first occurrence of a category creates its group at the end of the
// list, later skills with the same category append to it, and within a group
// skills keep their original order. An empty category buckets under
// "General".
func groupSkills(skills []model.Skill) []skillGroup {
	groups := make([]skillGroup, 0, len(skills))
	index := make(map[string]int, len(skills))
	for _, sk := range skills {
		cat := sk.Category
		if cat == "" {
			cat = "General"
		}
		i, ok := index[cat]
		if !ok {
			index[cat] = len(groups)
			groups = append(groups, skillGroup{Category: cat})
			i = len(groups) - 1
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}
	return groups
}

func sectionTitle(sec model.Section, fallback string) string {
	if sec.Title != "" {
		return sec.Title
	}
	return fallback
}

func ensureScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// linkLabel shortens a profile URL to a tidy eTLD+1 label for display, e.g.
// "https://www.linkedin.com/in/jane" -> "linkedin.com". Unparseable values
// are shown as typed.
func linkLabel(raw string) string {
	parsed, err := url.Parse(ensureScheme(raw))
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
