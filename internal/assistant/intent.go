package assistant

import (
	"encoding/json"
	"strings"

	"github.com/feeform/feeform/internal/model"
	"github.com/feeform/feeform/internal/normalize"
)

// Intent is a structured form-filling instruction extracted from the
// model's reply.
type Intent struct {
	AgencyID    string
	ProcedureID int64
	Role        string
	Units       []model.UnitInput
}

// Reply is the tagged union the proxy returns: either a validated
// structured intent (with the raw JSON object to pass through), or the
// reply text unchanged. Exactly one branch is populated.
type Reply struct {
	Structured json.RawMessage
	Intent     *Intent
	Text       string
}

// ParseReply discriminates the upstream content. Only a JSON object whose
// required intent fields validate against the closed role set counts as
// structured; anything else, including well-formed JSON of the wrong
// shape, is passed through as plain text.
func ParseReply(content string, roles []string) Reply {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") || !json.Valid([]byte(trimmed)) {
		return Reply{Text: content}
	}

	var raw struct {
		AgencyID    any              `json:"agencyId"`
		ProcedureID any              `json:"procedureId"`
		Role        any              `json:"role"`
		Units       []map[string]any `json:"units"`
	}
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Reply{Text: content}
	}

	agencyID, ok := raw.AgencyID.(string)
	if !ok || strings.TrimSpace(agencyID) == "" {
		return Reply{Text: content}
	}
	procID, ok := normalize.AsNumber(raw.ProcedureID)
	if !ok {
		return Reply{Text: content}
	}
	roleStr, ok := raw.Role.(string)
	if !ok {
		return Reply{Text: content}
	}
	role, ok := model.CanonicalRole(roles, strings.TrimSpace(roleStr))
	if !ok {
		return Reply{Text: content}
	}

	units := make([]normalize.Record, len(raw.Units))
	for i, u := range raw.Units {
		units[i] = normalize.Record(u)
	}

	return Reply{
		Structured: json.RawMessage(trimmed),
		Intent: &Intent{
			AgencyID:    strings.TrimSpace(agencyID),
			ProcedureID: int64(procID),
			Role:        role,
			Units:       normalize.UnitInputs(units),
		},
	}
}
