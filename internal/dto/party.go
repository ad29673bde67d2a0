package dto

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// CreatePartyRequest is the body of POST /clients and POST /vendors.
type CreatePartyRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	TaxID       string  `json:"tax_id" binding:"required,rut" example:"12.345.678-5"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	Industry    *string `json:"industry" binding:"omitempty,max=100"`
	Notes       *string `json:"notes"`
}

func (r CreatePartyRequest) ToDomain() domain.Party {
	return domain.Party{
		Name:        r.Name,
		TaxID:       r.TaxID,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		Industry:    r.Industry,
		Notes:       r.Notes,
	}
}

// UpdatePartyRequest is the body of PUT /clients/:id and PUT /vendors/:id.
type UpdatePartyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	TaxID       *string `json:"tax_id" binding:"omitempty,rut"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	Industry    *string `json:"industry" binding:"omitempty,max=100"`
	Notes       *string `json:"notes"`
}

func (r UpdatePartyRequest) ToPatch() domain.PartyPatch {
	return domain.PartyPatch{
		Name:        r.Name,
		TaxID:       r.TaxID,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		Industry:    r.Industry,
		Notes:       r.Notes,
	}
}

// ListPartiesParams are the substring filters of GET /clients and GET /vendors.
type ListPartiesParams struct {
	Name     *string `form:"name"`
	Industry *string `form:"industry"`
	Country  *string `form:"country"`
	TaxID    *string `form:"taxId"`
}

func (p ListPartiesParams) ToFilter() domain.PartyFilter {
	return domain.PartyFilter{
		Name:     nonEmpty(p.Name),
		Industry: nonEmpty(p.Industry),
		Country:  nonEmpty(p.Country),
		TaxID:    nonEmpty(p.TaxID),
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
