package model

import (
	"strings"
	"time"
)

// SpecializationSource identifies how a specialization got onto a profile.
type SpecializationSource string

const (
	// SourceManual marks a specialization the tutor declared themselves.
	SourceManual SpecializationSource = "MANUAL"
	// SourceAIValidation marks a specialization inferred from an accepted credential document.
	SourceAIValidation SpecializationSource = "AI_VALIDATION"
)

// Specialization is a subject a tutor teaches, with verification provenance.
// A verified entry always carries VerifiedAt and the DocumentURL that backs it;
// an unverified entry carries neither.
type Specialization struct {
	Name        string               `json:"name"`
	Verified    bool                 `json:"verified"`
	Source      SpecializationSource `json:"source"`
	VerifiedAt  *time.Time           `json:"verifiedAt,omitempty"`
	DocumentURL string               `json:"documentUrl,omitempty"`
}

// SpecializationList is a JSON-serialized list column.
type SpecializationList []Specialization

// ContainsName reports whether an entry with the name exists, case-insensitively.
// Name comparison is case-insensitive everywhere specializations are deduplicated.
func (l SpecializationList) ContainsName(name string) bool {
	for _, s := range l {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}
