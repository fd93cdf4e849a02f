// Package types provides type definitions for the résumé documents, editor selectors and API payloads used throughout the resume-builder system.
package types

import "time"

// Document is a résumé as edited, rendered and persisted.
// ID is empty until the document has been saved once.
type Document struct {
	ID             string               `json:"id,omitempty"`
	Title          string               `json:"title"`
	Personal       PersonalInfo         `json:"personal"`
	Summary        string               `json:"summary"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
}

// PersonalInfo holds the contact block. All fields are free text.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedIn"`
	Website   string `json:"website"`
}

// ExperienceEntry is one position. When Current is set the end date is shown as "Present".
type ExperienceEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationEntry is one degree or program.
type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// CertificationEntry is one certification.
type CertificationEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Clone returns a deep copy of the document. Slices of the copy never alias the receiver's.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Experience = append([]ExperienceEntry(nil), d.Experience...)
	c.Education = append([]EducationEntry(nil), d.Education...)
	c.Skills = append([]string(nil), d.Skills...)
	c.Certifications = append([]CertificationEntry(nil), d.Certifications...)
	return &c
}

// FullName joins first and last name, skipping empty parts.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// ResumeSummary is the listing view of a stored résumé.
type ResumeSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
