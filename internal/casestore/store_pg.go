package casestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type storePG struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) Store {
	return &storePG{pool: pool}
}

const caseCols = `id, case_ref, nino, benefit_code, mrn_date, form_type, event, data, created_at`

func (s *storePG) FindByNino(ctx context.Context, nino string) ([]*Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+caseCols+` FROM tribunal_case
		WHERE nino = $1
		ORDER BY created_at DESC`, nino)
	if err != nil {
		return nil, fmt.Errorf("find cases by nino: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *storePG) FindExactMatch(ctx context.Context, nino, benefitCode, mrnDate string) (*Record, error) {
	rec, err := scanRecord(s.pool.QueryRow(ctx, `
		SELECT `+caseCols+` FROM tribunal_case
		WHERE nino = $1 AND benefit_code = $2 AND mrn_date = $3
		ORDER BY created_at DESC
		LIMIT 1`, nino, benefitCode, mrnDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find exact match: %w", err)
	}
	return rec, nil
}

func (s *storePG) Create(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tribunal_case (
			id, case_ref, nino, benefit_code, mrn_date, form_type, event, data
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.CaseRef, rec.Nino, rec.BenefitCode, rec.MrnDate, rec.FormType, rec.Event, rec.Data,
	)
	if err != nil {
		return fmt.Errorf("create case: %w", err)
	}
	return nil
}

func (s *storePG) GetByRef(ctx context.Context, caseRef string) (*Record, error) {
	rec, err := scanRecord(s.pool.QueryRow(ctx,
		`SELECT `+caseCols+` FROM tribunal_case WHERE case_ref = $1`, caseRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get case by ref: %w", err)
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.CaseRef, &rec.Nino, &rec.BenefitCode, &rec.MrnDate,
		&rec.FormType, &rec.Event, &rec.Data, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
