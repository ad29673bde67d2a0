package domain

import "github.com/shopspring/decimal"

// TaxRate is a named percentage. At most one tax rate is the default.
type TaxRate struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description *string         `json:"description"`
	IsDefault   bool            `json:"is_default"`
	AuditFields
}

type TaxRatePatch struct {
	Name        *string
	Rate        *decimal.Decimal
	Description *string
	IsDefault   *bool
}

func (p TaxRatePatch) IsEmpty() bool {
	return p.Name == nil && p.Rate == nil && p.Description == nil && p.IsDefault == nil
}
