package domain

import "github.com/google/uuid"

// Collections holding identifiers.
const (
	CollectionBeneficiaries = "beneficiaries"
	CollectionDependents    = "dependents"
)

// LegacyIdentifier is a record whose identifier column still holds plaintext.
type LegacyIdentifier struct {
	ID    uuid.UUID
	Value string
}

// CollectionMigrationReport summarizes the migration of one collection.
type CollectionMigrationReport struct {
	Collection string `json:"collection"`
	Scanned    int    `json:"scanned"`
	Migrated   int    `json:"migrated"`
	Conflicts  int    `json:"conflicts"`
	Invalid    int    `json:"invalid"`
	Skipped    int    `json:"skipped"`
}

// MigrationReport summarizes a legacy migration run.
type MigrationReport struct {
	DryRun      bool                        `json:"dry_run"`
	Collections []CollectionMigrationReport `json:"collections"`
}

// Migrated returns the number of records rewritten across collections.
func (r *MigrationReport) Migrated() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Migrated
	}
	return total
}

// LegacyStatus holds the remaining plaintext identifiers per collection.
type LegacyStatus struct {
	Beneficiaries int64 `json:"beneficiaries"`
	Dependents    int64 `json:"dependents"`
}

// Complete reports whether no plaintext identifiers remain, at which point
// the plaintext lookup fallback can be retired.
func (s *LegacyStatus) Complete() bool {
	return s.Beneficiaries == 0 && s.Dependents == 0
}
