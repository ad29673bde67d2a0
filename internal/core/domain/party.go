package domain

// PartyKind distinguishes the two roles a counterparty can play.
type PartyKind string

const (
	PartyClient PartyKind = "client"
	PartyVendor PartyKind = "vendor"
)

// Party is a client or a vendor. Both kinds share the same shape and are owned by one user.
type Party struct {
	ID          int64     `json:"id"`
	Kind        PartyKind `json:"-"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	ContactName *string   `json:"contact_name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
	Industry    *string   `json:"industry"`
	Notes       *string   `json:"notes"`
	UserID      string    `json:"user_id"`
	AuditFields
}

type PartyPatch struct {
	Name        *string
	TaxID       *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	Country     *string
	Industry    *string
	Notes       *string
}

func (p PartyPatch) IsEmpty() bool {
	return p.Name == nil && p.TaxID == nil && p.ContactName == nil && p.Email == nil &&
		p.Phone == nil && p.Address == nil && p.City == nil && p.Country == nil &&
		p.Industry == nil && p.Notes == nil
}

// PartyFilter holds case-insensitive substring filters.
type PartyFilter struct {
	Name     *string
	Industry *string
	Country  *string
	TaxID    *string
}
