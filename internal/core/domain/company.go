package domain

import "time"

// Company groups users that keep books together.
type Company struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	TaxID   string  `json:"tax_id"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	AuditFields
}

type CompanyPatch struct {
	Name    *string
	TaxID   *string
	Address *string
	City    *string
	Country *string
	Phone   *string
	Email   *string
}

func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.TaxID == nil && p.Address == nil && p.City == nil &&
		p.Country == nil && p.Phone == nil && p.Email == nil
}

// CompanyUser is a user's membership in a company. Admins manage the company and its members.
type CompanyUser struct {
	CompanyID int64     `json:"company_id"`
	UserID    string    `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
