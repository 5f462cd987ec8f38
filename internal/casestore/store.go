// Package casestore persists transformed appeal cases and answers the
// duplicate and association lookups the intake pipeline runs before a
// case is created.
package casestore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a stored tribunal case, keyed by the appellant identity
// fields the intake pipeline matches on.
type Record struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CaseRef     string    `db:"case_ref" json:"caseRef"`
	Nino        string    `db:"nino" json:"nino"`
	BenefitCode string    `db:"benefit_code" json:"benefitCode"`
	MrnDate     string    `db:"mrn_date" json:"mrnDate"`
	FormType    string    `db:"form_type" json:"formType"`
	Event       string    `db:"event" json:"event"`
	Data        []byte    `db:"data" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type Store interface {
	// FindByNino returns every case sharing the appellant's national
	// insurance number, newest first.
	FindByNino(ctx context.Context, nino string) ([]*Record, error)
	// FindExactMatch returns the case with the same identity triple, or
	// nil when none exists.
	FindExactMatch(ctx context.Context, nino, benefitCode, mrnDate string) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	GetByRef(ctx context.Context, caseRef string) (*Record, error)
}
