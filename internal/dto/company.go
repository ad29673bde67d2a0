package dto

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// CreateCompanyRequest is the body of POST /companies. A Chilean company's tax_id must be a valid RUT.
type CreateCompanyRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	TaxID   string  `json:"tax_id" binding:"required,max=50"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Country *string `json:"country" binding:"omitempty,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

func (r CreateCompanyRequest) ToDomain() domain.Company {
	return domain.Company{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Address: r.Address,
		City:    r.City,
		Country: r.Country,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	TaxID   *string `json:"tax_id" binding:"omitempty,min=1,max=50"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Country *string `json:"country" binding:"omitempty,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

func (r UpdateCompanyRequest) ToPatch() domain.CompanyPatch {
	return domain.CompanyPatch{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Address: r.Address,
		City:    r.City,
		Country: r.Country,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

// AddCompanyUserRequest is the body of POST /companies/:id/users.
type AddCompanyUserRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	IsAdmin bool   `json:"is_admin"`
}
