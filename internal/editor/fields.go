package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// SetField applies one edit to doc and returns the edited copy. doc is never modified.
//
//   - index set on a list section: replaces field of the entry at index (skills replace the string itself)
//   - no index on personal: replaces the named contact field
//   - no field: replaces the whole section value (summary, title, personal, skills)
func SetField(doc *types.Document, section types.Section, field string, value any, index *int) (*types.Document, error) {
	next := doc.Clone()

	if index != nil {
		if !section.IsList() {
			return nil, &SectionError{Section: section, Op: "indexed edit"}
		}
		if err := checkIndex(next, section, *index); err != nil {
			return nil, err
		}
		if err := setEntryField(next, section, field, value, *index); err != nil {
			return nil, err
		}
		return next, nil
	}

	if field == "" {
		if err := replaceSection(next, section, value); err != nil {
			return nil, err
		}
		return next, nil
	}

	if section != types.SectionPersonal {
		return nil, &FieldError{Section: section, Field: field, Message: "field edits need an index or the personal section"}
	}
	if err := setPersonalField(&next.Personal, field, value); err != nil {
		return nil, err
	}
	return next, nil
}

func sectionLen(doc *types.Document, section types.Section) int {
	switch section {
	case types.SectionExperience:
		return len(doc.Experience)
	case types.SectionEducation:
		return len(doc.Education)
	case types.SectionSkills:
		return len(doc.Skills)
	case types.SectionCertifications:
		return len(doc.Certifications)
	}
	return 0
}

func checkIndex(doc *types.Document, section types.Section, index int) error {
	n := sectionLen(doc, section)
	if index < 0 || index >= n {
		return &IndexError{Section: section, Index: index, Len: n}
	}
	return nil
}

func setEntryField(doc *types.Document, section types.Section, field string, value any, index int) error {
	switch section {
	case types.SectionExperience:
		return setExperienceField(&doc.Experience[index], field, value)
	case types.SectionEducation:
		return setEducationField(&doc.Education[index], field, value)
	case types.SectionCertifications:
		return setCertificationField(&doc.Certifications[index], field, value)
	case types.SectionSkills:
		if field != "" && field != "name" {
			return &FieldError{Section: section, Field: field, Message: "skills have no fields"}
		}
		s, err := stringValue(section, field, value)
		if err != nil {
			return err
		}
		doc.Skills[index] = s
		return nil
	}
	return &SectionError{Section: section, Op: "indexed edit"}
}

func replaceSection(doc *types.Document, section types.Section, value any) error {
	switch section {
	case types.SectionTitle:
		s, err := stringValue(section, "", value)
		if err != nil {
			return err
		}
		doc.Title = s
	case types.SectionSummary:
		s, err := stringValue(section, "", value)
		if err != nil {
			return err
		}
		doc.Summary = s
	case types.SectionPersonal:
		p, ok := value.(types.PersonalInfo)
		if !ok {
			return &FieldError{Section: section, Message: fmt.Sprintf("expected personal info, got %T", value)}
		}
		doc.Personal = p
	case types.SectionSkills:
		skills, ok := value.([]string)
		if !ok {
			return &FieldError{Section: section, Message: fmt.Sprintf("expected list of strings, got %T", value)}
		}
		doc.Skills = append([]string(nil), skills...)
	default:
		return &SectionError{Section: section, Op: "section replace"}
	}
	return nil
}

func stringValue(section types.Section, field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &FieldError{Section: section, Field: field, Message: fmt.Sprintf("expected string, got %T", value)}
	}
	return s, nil
}

func setPersonalField(p *types.PersonalInfo, field string, value any) error {
	s, err := stringValue(types.SectionPersonal, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "firstName":
		p.FirstName = s
	case "lastName":
		p.LastName = s
	case "email":
		p.Email = s
	case "phone":
		p.Phone = s
	case "address":
		p.Address = s
	case "linkedIn":
		p.LinkedIn = s
	case "website":
		p.Website = s
	default:
		return &FieldError{Section: types.SectionPersonal, Field: field, Message: "unknown field"}
	}
	return nil
}

func setExperienceField(e *types.ExperienceEntry, field string, value any) error {
	if field == "current" {
		b, ok := value.(bool)
		if !ok {
			return &FieldError{Section: types.SectionExperience, Field: field, Message: fmt.Sprintf("expected bool, got %T", value)}
		}
		e.Current = b
		return nil
	}
	s, err := stringValue(types.SectionExperience, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "title":
		e.Title = s
	case "company":
		e.Company = s
	case "location":
		e.Location = s
	case "startDate":
		e.StartDate = s
	case "endDate":
		e.EndDate = s
	case "description":
		e.Description = s
	default:
		return &FieldError{Section: types.SectionExperience, Field: field, Message: "unknown field"}
	}
	return nil
}

func setEducationField(e *types.EducationEntry, field string, value any) error {
	s, err := stringValue(types.SectionEducation, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "degree":
		e.Degree = s
	case "school":
		e.School = s
	case "location":
		e.Location = s
	case "startDate":
		e.StartDate = s
	case "endDate":
		e.EndDate = s
	case "description":
		e.Description = s
	default:
		return &FieldError{Section: types.SectionEducation, Field: field, Message: "unknown field"}
	}
	return nil
}

func setCertificationField(c *types.CertificationEntry, field string, value any) error {
	s, err := stringValue(types.SectionCertifications, field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		c.Name = s
	case "issuer":
		c.Issuer = s
	case "date":
		c.Date = s
	case "description":
		c.Description = s
	default:
		return &FieldError{Section: types.SectionCertifications, Field: field, Message: "unknown field"}
	}
	return nil
}
