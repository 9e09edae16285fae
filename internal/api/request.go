package api

import (
	"math"

	"github.com/feeform/feeform/internal/fees"
	"github.com/feeform/feeform/internal/normalize"
)

// calculateRequest mirrors the wire shape loosely. Field types are not
// trusted; coercion happens in toInput and validation in the engine.
type calculateRequest struct {
	AgencyID    any              `json:"agencyId"`
	ProcedureID any              `json:"procedureId"`
	Role        any              `json:"role"`
	Units       []map[string]any `json:"units"`
}

// toInput coerces the raw body into a typed engine input. Wrong-typed
// scalars become values the engine rejects with the right message;
// malformed unit entries are dropped, not rejected.
func (r calculateRequest) toInput() fees.Input {
	in := fees.Input{}
	if s, ok := r.AgencyID.(string); ok {
		in.AgencyID = s
	}
	if n, ok := normalize.AsNumber(r.ProcedureID); ok {
		in.ProcedureID = n
	} else {
		in.ProcedureID = math.NaN()
	}
	if s, ok := r.Role.(string); ok {
		in.Role = s
	}

	units := make([]normalize.Record, len(r.Units))
	for i, u := range r.Units {
		units[i] = normalize.Record(u)
	}
	in.Units = normalize.UnitInputs(units)
	return in
}
