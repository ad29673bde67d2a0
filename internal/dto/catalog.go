package dto

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Type        string  `json:"type" binding:"required,txtype" enums:"income,expense"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (r CreateCategoryRequest) ToDomain() domain.Category {
	return domain.Category{
		Name:        r.Name,
		Type:        domain.TransactionType(r.Type),
		Description: r.Description,
	}
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Type        *string `json:"type" binding:"omitempty,txtype" enums:"income,expense"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (r UpdateCategoryRequest) ToPatch() domain.CategoryPatch {
	return domain.CategoryPatch{
		Name:        r.Name,
		Type:        optionalType[domain.TransactionType](r.Type),
		Description: r.Description,
	}
}

// ListCategoriesParams are the query parameters of GET /categories.
type ListCategoriesParams struct {
	Type  *string `form:"type" binding:"omitempty,txtype"`
	Page  int     `form:"page"`
	Limit int     `form:"limit"`
}

type CreateTaxRateRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Rate        *decimal.Decimal `json:"rate" binding:"required,decimalgte0" swaggertype:"string" example:"19.00"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	IsDefault   bool             `json:"is_default"`
}

func (r CreateTaxRateRequest) ToDomain() domain.TaxRate {
	rate := domain.TaxRate{Name: r.Name, Description: r.Description, IsDefault: r.IsDefault}
	if r.Rate != nil {
		rate.Rate = *r.Rate
	}
	return rate
}

type UpdateTaxRateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Rate        *decimal.Decimal `json:"rate" binding:"omitempty,decimalgte0" swaggertype:"string"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	IsDefault   *bool            `json:"is_default"`
}

func (r UpdateTaxRateRequest) ToPatch() domain.TaxRatePatch {
	return domain.TaxRatePatch{
		Name:        r.Name,
		Rate:        r.Rate,
		Description: r.Description,
		IsDefault:   r.IsDefault,
	}
}

type CreateDocumentTypeRequest struct {
	Code         string  `json:"code" binding:"required,max=10" example:"33"`
	Name         string  `json:"name" binding:"required,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	IsElectronic bool    `json:"is_electronic"`
}

func (r CreateDocumentTypeRequest) ToDomain() domain.DocumentType {
	return domain.DocumentType{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		IsElectronic: r.IsElectronic,
	}
}

type UpdateDocumentTypeRequest struct {
	Code         *string `json:"code" binding:"omitempty,min=1,max=10"`
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	IsElectronic *bool   `json:"is_electronic"`
}

func (r UpdateDocumentTypeRequest) ToPatch() domain.DocumentTypePatch {
	return domain.DocumentTypePatch{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		IsElectronic: r.IsElectronic,
	}
}

// ListCommunesParams are the query parameters of GET /communes.
type ListCommunesParams struct {
	RegionID *int64 `form:"regionId"`
}
