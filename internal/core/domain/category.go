package domain

// Category classifies transactions. Default categories are seed data and cannot be changed.
type Category struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Type        TransactionType `json:"type" db:"type"`
	IsDefault   bool            `json:"is_default" db:"is_default"`
	Description *string         `json:"description" db:"description"`
	AuditFields
}

type CategoryPatch struct {
	Name        *string
	Type        *TransactionType
	Description *string
}

func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Description == nil
}
