package entity

import "strings"

// PartnerEntry is a curated business that overrides the generic provider search
// when its category and neighborhood match the request.
type PartnerEntry struct {
	Category      string `json:"category" yaml:"category" validate:"required"`
	MatchTerm     string `json:"matchTerm" yaml:"matchTerm"`
	Name          string `json:"name" yaml:"name" validate:"required"`
	Street        string `json:"street" yaml:"street"`
	Number        string `json:"number" yaml:"number"`
	Neighborhood  string `json:"neighborhood" yaml:"neighborhood" validate:"required"`
	City          string `json:"city" yaml:"city"`
	State         string `json:"state" yaml:"state"`
	Status        string `json:"status" yaml:"status" validate:"required"`
	ClosingTime   string `json:"closingTime" yaml:"closingTime"`
	Phone         string `json:"phone" yaml:"phone"`
	DistanceLabel string `json:"distanceLabel" yaml:"distanceLabel"`
	Reason        string `json:"reason" yaml:"reason"`
}

// Address renders the partner's address as "Street, Number - Neighborhood, City - State",
// skipping the parts that are empty.
func (p PartnerEntry) Address() string {
	var line strings.Builder

	line.WriteString(p.Street)
	if p.Number != "" {
		line.WriteString(", " + p.Number)
	}

	locality := joinNonEmpty(", ", p.Neighborhood, p.City)
	if locality != "" {
		if line.Len() > 0 {
			line.WriteString(" - ")
		}
		line.WriteString(locality)
	}
	if p.State != "" {
		if line.Len() > 0 {
			line.WriteString(" - ")
		}
		line.WriteString(p.State)
	}

	if line.Len() == 0 {
		return NotInformed
	}

	return line.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, sep)
}
