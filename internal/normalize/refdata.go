package normalize

import (
	"fmt"
	"strconv"

	"github.com/feeform/feeform/internal/model"
)

// Candidate column names per logical field, in priority order. The compound
// name is tried before the bare "id"; that precedence matches the live
// schema and must not be reordered without confirming against it.
var (
	agencyIDCols    = []string{"agency_id", "agencyid", "id"}
	procedureIDCols = []string{"procedure_id", "procedureid", "id"}
	displayNameCols = []string{"display_name", "displayname", "name"}
	currencyCols    = []string{"currency", "currency_code"}
)

// Agency extracts a normalized agency from a reference row. ok=false when
// no identifier column is present.
func Agency(rec Record) (model.Agency, bool) {
	id, ok := rec.FirstString(agencyIDCols...)
	if !ok {
		// Some revisions store the agency id as a numeric column.
		n, numOK := rec.FirstNumber(agencyIDCols...)
		if !numOK {
			return model.Agency{}, false
		}
		id = strconv.FormatInt(int64(n), 10)
	}
	name, ok := rec.FirstString(displayNameCols...)
	if !ok {
		name = "Untitled Agency"
	}
	return model.Agency{ID: id, Name: name}, true
}

// ProcedureType extracts a normalized procedure type from a reference row.
// ok=false when no identifier column is present.
func ProcedureType(rec Record) (model.ProcedureType, bool) {
	n, ok := rec.FirstNumber(procedureIDCols...)
	if !ok {
		return model.ProcedureType{}, false
	}
	id := int64(n)
	name, ok := rec.FirstString(displayNameCols...)
	if !ok {
		name = fmt.Sprintf("Procedure %d", id)
	}
	return model.ProcedureType{ID: id, Name: name}, true
}

// Currency extracts the agency's currency code, defaulting to USD.
func Currency(rec Record) string {
	if c, ok := rec.FirstString(currencyCols...); ok {
		return c
	}
	return model.DefaultCurrency
}
