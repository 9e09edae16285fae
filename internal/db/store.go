package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feeform/feeform/internal/normalize"
	embedsql "github.com/feeform/feeform/internal/sql"
)

// Store exposes the reference tables as loosely-typed records. Handlers
// normalize column-name drift themselves, so every query is a SELECT *
// whose rows are surfaced as normalize.Record maps.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Agencies returns all agency reference rows.
func (s *Store) Agencies(ctx context.Context) ([]normalize.Record, error) {
	return s.queryRecords(ctx, embedsql.ListAgencies)
}

// ProcedureTypes returns all procedure type reference rows.
func (s *Store) ProcedureTypes(ctx context.Context) ([]normalize.Record, error) {
	return s.queryRecords(ctx, embedsql.ListProcedureTypes)
}

// FeeRules returns the rule rows matching the exact triple, in stable
// rule order.
func (s *Store) FeeRules(ctx context.Context, agencyID string, procedureID int64, role string) ([]normalize.Record, error) {
	return s.queryRecords(ctx, embedsql.FeeRulesForTriple, agencyID, procedureID, role)
}

// Agency returns the agency row for id, or nil when no row matches.
func (s *Store) Agency(ctx context.Context, agencyID string) (normalize.Record, error) {
	recs, err := s.queryRecords(ctx, embedsql.AgencyByID, agencyID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// Components returns the component rows for the given ids.
func (s *Store) Components(ctx context.Context, ids []int64) ([]normalize.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.queryRecords(ctx, embedsql.ComponentsByIDs, ids)
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]normalize.Record, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return collectRecords(rows)
}

// collectRecords drains rows into Record maps keyed by column name.
func collectRecords(rows pgx.Rows) ([]normalize.Record, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []normalize.Record
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := make(normalize.Record, len(fields))
		for i, fd := range fields {
			rec[fd.Name] = coerceValue(vals[i])
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// coerceValue flattens pgx driver types into the plain scalars the
// normalize package understands.
func coerceValue(v any) any {
	switch t := v.(type) {
	case pgtype.Numeric:
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case []byte:
		return string(t)
	default:
		return v
	}
}
