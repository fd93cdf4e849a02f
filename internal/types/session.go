package types

import (
	"encoding/json"
	"fmt"
)

// OpenSessionRequest starts an editing session, optionally loading a stored résumé.
type OpenSessionRequest struct {
	ResumeID string `json:"resume_id,omitempty" validate:"omitempty,uuid"`
	Template string `json:"template,omitempty" validate:"omitempty,oneof=modern professional creative minimalist"`
}

// FieldEditRequest sets one field, one entry field or a whole scalar section.
type FieldEditRequest struct {
	Section string          `json:"section" validate:"required"`
	Field   string          `json:"field,omitempty"`
	Value   json.RawMessage `json:"value" validate:"required"`
	Index   *int            `json:"index,omitempty" validate:"omitempty,min=0"`
}

// DecodeValue decodes Value into the Go type the edit targets: a bool for
// experience "current", a string list for a whole skills list, PersonalInfo
// for a whole personal block and a string otherwise.
func (r *FieldEditRequest) DecodeValue(section Section) (any, error) {
	var target any
	switch {
	case r.Field == "current":
		target = new(bool)
	case r.Field == "" && r.Index == nil && section == SectionSkills:
		target = new([]string)
	case r.Field == "" && r.Index == nil && section == SectionPersonal:
		target = new(PersonalInfo)
	default:
		target = new(string)
	}
	if err := json.Unmarshal(r.Value, target); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", section, err)
	}
	switch v := target.(type) {
	case *bool:
		return *v, nil
	case *[]string:
		return *v, nil
	case *PersonalInfo:
		return *v, nil
	case *string:
		return *v, nil
	}
	return nil, fmt.Errorf("invalid value for %s", section)
}

// SectionRequest names a section for item, panel and suggestion calls.
type SectionRequest struct {
	Section string `json:"section" validate:"required"`
}

// TemplateRequest switches the session template.
type TemplateRequest struct {
	Template string `json:"template" validate:"required,oneof=modern professional creative minimalist"`
}

// ApplySuggestionRequest merges suggestion text into a section.
type ApplySuggestionRequest struct {
	Section string `json:"section" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// SuggestionResponse carries generated suggestion text.
type SuggestionResponse struct {
	Section Section `json:"section"`
	Text    string  `json:"text"`
}

// SessionResponse is the state of an editing session.
type SessionResponse struct {
	ID            string    `json:"id"`
	Document      *Document `json:"document"`
	Template      Template  `json:"template"`
	ActiveSection Section   `json:"active_section"`
	Loading       bool      `json:"loading"`
}
