package domain

// DocumentType is the kind of fiscal document backing a transaction (invoice, receipt...).
type DocumentType struct {
	ID           int64   `json:"id" db:"id"`
	Code         string  `json:"code" db:"code"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description" db:"description"`
	IsElectronic bool    `json:"is_electronic" db:"is_electronic"`
}

type DocumentTypePatch struct {
	Code         *string
	Name         *string
	Description  *string
	IsElectronic *bool
}

func (p DocumentTypePatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Description == nil && p.IsElectronic == nil
}

type Region struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Code *string `json:"code" db:"code"`
}

type Commune struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	RegionID int64  `json:"region_id" db:"region_id"`
}

type PaymentType struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// Status is the workflow state of a transaction (pending, paid...).
type Status struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}
