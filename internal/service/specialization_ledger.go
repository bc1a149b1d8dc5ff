package service

import (
	"strings"
	"time"

	"tutorhub/internal/model"
)

// SpecializationLedger reconciles a tutor's specialization list across manual
// profile edits, accepted credential documents, and credential removal.
// Specialization names are compared case-insensitively everywhere.
type SpecializationLedger struct {
	now func() time.Time
}

// NewSpecializationLedger creates a ledger using the wall clock.
func NewSpecializationLedger() *SpecializationLedger {
	return &SpecializationLedger{now: time.Now}
}

// ReconcileManualUpdate merges a manually edited specialization list into the
// existing one. Verified entries are retained unconditionally; a manual edit
// can neither remove nor alter them, and cannot grant verified status. Every
// incoming unverified entry whose name is not already present is appended as a
// fresh MANUAL entry.
func (l *SpecializationLedger) ReconcileManualUpdate(existing, incoming model.SpecializationList) model.SpecializationList {
	merged := make(model.SpecializationList, 0, len(existing)+len(incoming))
	for _, spec := range existing {
		if spec.Verified {
			merged = append(merged, spec)
		}
	}
	for _, spec := range incoming {
		if spec.Verified {
			// verified status cannot be granted through this path
			continue
		}
		if merged.ContainsName(spec.Name) {
			continue
		}
		merged = append(merged, model.Specialization{
			Name:     spec.Name,
			Verified: false,
			Source:   model.SourceManual,
		})
	}
	return merged
}

// AddVerified appends a verified specialization backed by documentURL. Blank
// names are ignored, and an existing entry with the same name wins regardless
// of its verified state: first verification is never overwritten.
func (l *SpecializationLedger) AddVerified(specs model.SpecializationList, name, documentURL string) model.SpecializationList {
	if strings.TrimSpace(name) == "" {
		return specs
	}
	if specs.ContainsName(name) {
		return specs
	}
	verifiedAt := l.now()
	return append(specs, model.Specialization{
		Name:        name,
		Verified:    true,
		Source:      model.SourceAIValidation,
		VerifiedAt:  &verifiedAt,
		DocumentURL: documentURL,
	})
}

// CascadeRemoval drops every verified specialization whose backing document
// URL was removed. Unverified entries are never dropped here. It returns the
// remaining list and the names that were removed.
func (l *SpecializationLedger) CascadeRemoval(specs model.SpecializationList, removedURLs map[string]struct{}) (model.SpecializationList, []string) {
	if len(specs) == 0 {
		return specs, nil
	}
	remaining := make(model.SpecializationList, 0, len(specs))
	var removedNames []string
	for _, spec := range specs {
		if spec.Verified {
			if _, gone := removedURLs[spec.DocumentURL]; gone {
				removedNames = append(removedNames, spec.Name)
				continue
			}
		}
		remaining = append(remaining, spec)
	}
	return remaining, removedNames
}
