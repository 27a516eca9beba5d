package entity

import "strings"

// Signatory is the person whose signature block closes a printed donation report.
type Signatory struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Address      string `json:"address"`
}

// Normalize trims surrounding whitespace from every field.
func (s Signatory) Normalize() Signatory {
	return Signatory{
		Name:         strings.TrimSpace(s.Name),
		Title:        strings.TrimSpace(s.Title),
		Organization: strings.TrimSpace(s.Organization),
		Address:      strings.TrimSpace(s.Address),
	}
}

// IsEmpty reports whether no field is set.
func (s Signatory) IsEmpty() bool {
	return s.Name == "" && s.Title == "" && s.Organization == "" && s.Address == ""
}
