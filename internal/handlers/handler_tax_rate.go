package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type taxRateHandler struct {
	taxRateService portssvc.TaxRateSvcFacade
}

func RegisterTaxRateRoutes(rg *gin.RouterGroup, taxRateService portssvc.TaxRateSvcFacade) {
	h := &taxRateHandler{taxRateService: taxRateService}

	taxRates := rg.Group("/tax-rates")
	{
		taxRates.GET("", h.listTaxRates)
		taxRates.POST("", h.createTaxRate)
		taxRates.GET("/default", h.getDefaultTaxRate)
		taxRates.GET("/:id", h.getTaxRate)
		taxRates.PUT("/:id", h.updateTaxRate)
		taxRates.DELETE("/:id", h.deleteTaxRate)
	}
}

// listTaxRates godoc
// @Summary List tax rates
// @Tags tax-rates
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]domain.TaxRate}
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *taxRateHandler) listTaxRates(c *gin.Context) {
	rates, err := h.taxRateService.ListTaxRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, rates)
}

// getDefaultTaxRate godoc
// @Summary Get the default tax rate
// @Tags tax-rates
// @Produce  json
// @Success 200 {object} dto.Envelope{data=domain.TaxRate}
// @Failure 404 {object} dto.Envelope "No default configured"
// @Security BearerAuth
// @Router /tax-rates/default [get]
func (h *taxRateHandler) getDefaultTaxRate(c *gin.Context) {
	rate, err := h.taxRateService.GetDefaultTaxRate(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, rate)
}

// getTaxRate godoc
// @Summary Get a tax rate
// @Tags tax-rates
// @Produce  json
// @Param   id path int true "Tax rate ID"
// @Success 200 {object} dto.Envelope{data=domain.TaxRate}
// @Failure 404 {object} dto.Envelope "Tax rate not found"
// @Security BearerAuth
// @Router /tax-rates/{id} [get]
func (h *taxRateHandler) getTaxRate(c *gin.Context) {
	taxRateID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	rate, err := h.taxRateService.GetTaxRate(c.Request.Context(), taxRateID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, rate)
}

// createTaxRate godoc
// @Summary Create a tax rate
// @Description Setting is_default replaces the current default.
// @Tags tax-rates
// @Accept  json
// @Produce  json
// @Param   taxRate body dto.CreateTaxRateRequest true "Tax rate details"
// @Success 201 {object} dto.Envelope{data=domain.TaxRate}
// @Failure 400 {object} dto.Envelope "Validation error"
// @Security BearerAuth
// @Router /tax-rates [post]
func (h *taxRateHandler) createTaxRate(c *gin.Context) {
	var req dto.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.taxRateService.CreateTaxRate(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// updateTaxRate godoc
// @Summary Update a tax rate
// @Tags tax-rates
// @Accept  json
// @Produce  json
// @Param   id      path int                      true "Tax rate ID"
// @Param   taxRate body dto.UpdateTaxRateRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.TaxRate}
// @Security BearerAuth
// @Router /tax-rates/{id} [put]
func (h *taxRateHandler) updateTaxRate(c *gin.Context) {
	taxRateID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.taxRateService.UpdateTaxRate(c.Request.Context(), taxRateID, req.ToPatch())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deleteTaxRate godoc
// @Summary Delete a tax rate
// @Tags tax-rates
// @Param   id path int true "Tax rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.Envelope "The default tax rate cannot be deleted"
// @Security BearerAuth
// @Router /tax-rates/{id} [delete]
func (h *taxRateHandler) deleteTaxRate(c *gin.Context) {
	taxRateID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.taxRateService.DeleteTaxRate(c.Request.Context(), taxRateID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
