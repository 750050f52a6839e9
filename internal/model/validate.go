package model

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// RequiredFieldHints evaluates the document against resume.schema.json and
// returns one hint per unmet required-field rule ("personalInfo.fullName",
// "experience.0.company", ...). Hints are advisory only: an incomplete
// document still saves and still renders. A non-nil error means the document
// could not be evaluated at all, not that it is invalid.
func RequiredFieldHints(r Resume) ([]string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal resume: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("evaluate schema: %w", err)
	}
	if res.Valid() {
		return nil, nil
	}

	hints := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		field := e.Field()
		// "required" errors report the parent object; point at the missing
		// property itself.
		if e.Type() == "required" {
			if prop, ok := e.Details()["property"].(string); ok && prop != "" {
				if field == "(root)" {
					field = prop
				} else {
					field = field + "." + prop
				}
			}
		}
		hints = append(hints, field)
	}
	return hints, nil
}
