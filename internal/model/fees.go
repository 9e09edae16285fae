package model

import "github.com/shopspring/decimal"

// BaseFeeComponentID identifies the fixed base-fee component. It is charged
// exactly once per calculation and ignores unit inputs and included
// quantities.
const BaseFeeComponentID = 1

// DefaultCurrency is used when the agency record is missing or carries no
// currency code.
const DefaultCurrency = "USD"

// FeeRule is one billing rule matched by an (agency, procedure, role) triple.
type FeeRule struct {
	ComponentID      int64
	AmountPerUnit    decimal.Decimal
	IncludedQuantity float64
	ComponentName    string // rule-level display-name override, may be empty
}

// UnitInput is a caller-supplied unit quantity for one fee component.
type UnitInput struct {
	ComponentID int64
	Quantity    float64
}

// FeeBreakdownItem is one line of the itemized fee response.
type FeeBreakdownItem struct {
	ComponentName string  `json:"componentName"`
	Amount        float64 `json:"amount"`
}

// FeeResult is the computed total with its line-item breakdown, in rule
// processing order.
type FeeResult struct {
	TotalFee     float64            `json:"totalFee"`
	Currency     string             `json:"currency"`
	FeeBreakdown []FeeBreakdownItem `json:"feeBreakdown"`
}
