package model

// Agency is a normalized regulatory agency reference row.
type Agency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProcedureType is a normalized procedure type reference row.
type ProcedureType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
