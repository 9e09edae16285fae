// Package fees computes a total regulatory fee with a line-item breakdown
// from the rule rows matching an (agency, procedure, role) triple.
package fees

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/feeform/feeform/internal/model"
	"github.com/feeform/feeform/internal/normalize"
)

// Store is the slice of the data store the engine reads. The agency and
// component lookups degrade to fallback values on failure; only the rule
// fetch aborts a calculation.
type Store interface {
	FeeRules(ctx context.Context, agencyID string, procedureID int64, role string) ([]normalize.Record, error)
	Agency(ctx context.Context, agencyID string) (normalize.Record, error)
	Components(ctx context.Context, ids []int64) ([]normalize.Record, error)
}

// Input is a calculation request after JSON coercion. Calculate validates
// it before touching the store.
type Input struct {
	AgencyID    string
	ProcedureID float64
	Role        string
	Units       []model.UnitInput
}

// ValidationError marks a rejected input; handlers map it to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Engine struct {
	store Store
	log   zerolog.Logger
}

func NewEngine(store Store, log zerolog.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Calculate runs the fee algorithm. An empty rule set is a valid zero
// result, not an error. The breakdown preserves rule order.
func (e *Engine) Calculate(ctx context.Context, in Input) (*model.FeeResult, error) {
	agencyID := strings.TrimSpace(in.AgencyID)
	if agencyID == "" {
		return nil, &ValidationError{Msg: "agencyId is required."}
	}
	if math.IsNaN(in.ProcedureID) || math.IsInf(in.ProcedureID, 0) {
		return nil, &ValidationError{Msg: "procedureId must be a number."}
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		return nil, &ValidationError{Msg: "role is required."}
	}
	units := sanitizeUnits(in.Units)

	ruleRecs, err := e.store.FeeRules(ctx, agencyID, int64(in.ProcedureID), role)
	if err != nil {
		return nil, fmt.Errorf("fetch fee rules: %w", err)
	}

	currency := e.resolveCurrency(ctx, agencyID)

	result := &model.FeeResult{
		Currency:     currency,
		FeeBreakdown: []model.FeeBreakdownItem{},
	}
	if len(ruleRecs) == 0 {
		return result, nil
	}

	rules := make([]model.FeeRule, len(ruleRecs))
	for i, rec := range ruleRecs {
		rules[i] = normalize.FeeRule(rec)
	}
	names := e.resolveComponentNames(ctx, rules)

	total := decimal.Zero
	for _, r := range rules {
		if r.ComponentID <= 0 || !r.AmountPerUnit.IsPositive() {
			continue
		}
		name := displayName(r, names)

		// The base fee is charged once, unconditionally.
		if r.ComponentID == model.BaseFeeComponentID {
			total = total.Add(r.AmountPerUnit)
			result.FeeBreakdown = append(result.FeeBreakdown, model.FeeBreakdownItem{
				ComponentName: name,
				Amount:        r.AmountPerUnit.InexactFloat64(),
			})
			continue
		}

		unit, ok := findUnit(units, r.ComponentID)
		if !ok {
			// No supplied quantity means the component is not billed at
			// all, not billed at zero.
			continue
		}
		billable := unit.Quantity - r.IncludedQuantity
		if billable <= 0 {
			continue
		}
		cost := decimal.NewFromFloat(billable).Mul(r.AmountPerUnit)
		total = total.Add(cost)
		result.FeeBreakdown = append(result.FeeBreakdown, model.FeeBreakdownItem{
			ComponentName: fmt.Sprintf("%s (x%s)", name, formatQuantity(billable)),
			Amount:        cost.InexactFloat64(),
		})
	}

	result.TotalFee = total.InexactFloat64()
	return result, nil
}

// resolveCurrency looks up the agency's currency. Any failure, including a
// missing agency row, degrades to the default instead of aborting.
func (e *Engine) resolveCurrency(ctx context.Context, agencyID string) string {
	rec, err := e.store.Agency(ctx, agencyID)
	if err != nil {
		e.log.Warn().Err(err).Str("agency_id", agencyID).Msg("currency lookup failed, using default")
		return model.DefaultCurrency
	}
	if rec == nil {
		return model.DefaultCurrency
	}
	return normalize.Currency(rec)
}

// resolveComponentNames batch-resolves display names for the distinct
// component ids the rules reference. Failure degrades to rule-level or
// synthesized names.
func (e *Engine) resolveComponentNames(ctx context.Context, rules []model.FeeRule) map[int64]string {
	seen := make(map[int64]bool)
	var ids []int64
	for _, r := range rules {
		if r.ComponentID > 0 && !seen[r.ComponentID] {
			seen[r.ComponentID] = true
			ids = append(ids, r.ComponentID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	recs, err := e.store.Components(ctx, ids)
	if err != nil {
		e.log.Warn().Err(err).Msg("component name lookup failed, using fallbacks")
		return nil
	}
	names := make(map[int64]string, len(recs))
	for _, rec := range recs {
		if id, name, ok := normalize.Component(rec); ok {
			names[id] = name
		}
	}
	return names
}

// displayName picks the component's name: a rule-level override wins, then
// the component table, then a synthesized placeholder.
func displayName(r model.FeeRule, names map[int64]string) string {
	if r.ComponentName != "" {
		return r.ComponentName
	}
	if name, ok := names[r.ComponentID]; ok {
		return name
	}
	return normalize.ComponentName(r.ComponentID)
}

// sanitizeUnits drops entries with a non-positive component id or an
// invalid quantity.
func sanitizeUnits(units []model.UnitInput) []model.UnitInput {
	out := make([]model.UnitInput, 0, len(units))
	for _, u := range units {
		if u.ComponentID <= 0 {
			continue
		}
		if u.Quantity < 0 || math.IsNaN(u.Quantity) || math.IsInf(u.Quantity, 0) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func findUnit(units []model.UnitInput, componentID int64) (model.UnitInput, bool) {
	for _, u := range units {
		if u.ComponentID == componentID {
			return u, true
		}
	}
	return model.UnitInput{}, false
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
