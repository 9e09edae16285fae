// Package refdata lists the agency and procedure-type reference tables as
// stable {id, name} rows, tolerating the column-name drift across schema
// revisions of the hosted store.
package refdata

import (
	"context"
	"fmt"
	"sort"

	"github.com/feeform/feeform/internal/model"
	"github.com/feeform/feeform/internal/normalize"
)

// Store is the slice of the data store this service reads.
type Store interface {
	Agencies(ctx context.Context) ([]normalize.Record, error)
	ProcedureTypes(ctx context.Context) ([]normalize.Record, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListAgencies returns all agencies sorted ascending by display name.
// Rows without any recognizable identifier column are skipped.
func (s *Service) ListAgencies(ctx context.Context) ([]model.Agency, error) {
	recs, err := s.store.Agencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch agencies: %w", err)
	}
	out := make([]model.Agency, 0, len(recs))
	for _, rec := range recs {
		if a, ok := normalize.Agency(rec); ok {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListProcedureTypes returns all procedure types sorted ascending by
// display name.
func (s *Service) ListProcedureTypes(ctx context.Context) ([]model.ProcedureType, error) {
	recs, err := s.store.ProcedureTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch procedure types: %w", err)
	}
	out := make([]model.ProcedureType, 0, len(recs))
	for _, rec := range recs {
		if p, ok := normalize.ProcedureType(rec); ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
