package normalize

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feeform/feeform/internal/model"
)

var (
	componentIDCols = []string{"component_id", "componentid", "id"}
	amountCols      = []string{"amount_per_unit", "amountperunit", "amount"}
	includedCols    = []string{"included_quantity", "includedquantity", "included"}
	ruleNameCols    = []string{"component_name", "componentname", "display_name", "name"}
)

// FeeRule extracts a fee rule from a loosely-typed rule row. Amount and
// included quantity are floored at zero; a missing component id comes back
// as zero and is skipped by the engine.
func FeeRule(rec Record) model.FeeRule {
	var r model.FeeRule
	if n, ok := rec.FirstNumber(componentIDCols...); ok {
		r.ComponentID = int64(n)
	}
	if n, ok := rec.FirstNumber(amountCols...); ok && n > 0 {
		r.AmountPerUnit = decimal.NewFromFloat(n)
	}
	if n, ok := rec.FirstNumber(includedCols...); ok && n > 0 {
		r.IncludedQuantity = n
	}
	if s, ok := rec.FirstString(ruleNameCols...); ok {
		r.ComponentName = s
	}
	return r
}

// Component extracts a fee component's id and display name from a reference
// row, synthesizing "Component {id}" when the name is absent.
func Component(rec Record) (int64, string, bool) {
	n, ok := rec.FirstNumber(componentIDCols...)
	if !ok {
		return 0, "", false
	}
	id := int64(n)
	name, ok := rec.FirstString(displayNameCols...)
	if !ok {
		name = ComponentName(id)
	}
	return id, name, true
}

// ComponentName synthesizes a display name for a component id.
func ComponentName(id int64) string {
	return fmt.Sprintf("Component %d", id)
}

// UnitInputs sanitizes caller-supplied unit entries. Entries without a
// numeric component id or with a missing or negative quantity are dropped,
// never zero-filled.
func UnitInputs(raw []Record) []model.UnitInput {
	units := make([]model.UnitInput, 0, len(raw))
	for _, rec := range raw {
		cid, ok := rec.FirstNumber("componentId", "component_id", "componentid")
		if !ok {
			continue
		}
		qty, ok := rec.FirstNumber("quantity", "qty")
		if !ok || qty < 0 {
			continue
		}
		units = append(units, model.UnitInput{ComponentID: int64(cid), Quantity: qty})
	}
	return units
}
