package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

// RegisterReferenceRoutes registers the read-only catalog routes.
func RegisterReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := &referenceHandler{referenceService: referenceService}

	rg.GET("/regions", h.listRegions)
	rg.GET("/regions/:id/communes", h.listRegionCommunes)
	rg.GET("/communes", h.listCommunes)
	rg.GET("/payment-types", h.listPaymentTypes)
	rg.GET("/payment-types/:id", h.getPaymentType)
	rg.GET("/status", h.listStatuses)
	rg.GET("/status/:id", h.getStatus)
}

// listRegions godoc
// @Summary List regions
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]domain.Region}
// @Security BearerAuth
// @Router /regions [get]
func (h *referenceHandler) listRegions(c *gin.Context) {
	regions, err := h.referenceService.ListRegions(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, regions)
}

// listRegionCommunes godoc
// @Summary List the communes of a region
// @Tags reference
// @Produce  json
// @Param   id path int true "Region ID"
// @Success 200 {object} dto.Envelope{data=[]domain.Commune}
// @Security BearerAuth
// @Router /regions/{id}/communes [get]
func (h *referenceHandler) listRegionCommunes(c *gin.Context) {
	regionID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	communes, err := h.referenceService.ListCommunes(c.Request.Context(), &regionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, communes)
}

// listCommunes godoc
// @Summary List communes
// @Tags reference
// @Produce  json
// @Param   regionId query int false "Only the communes of this region"
// @Success 200 {object} dto.Envelope{data=[]domain.Commune}
// @Security BearerAuth
// @Router /communes [get]
func (h *referenceHandler) listCommunes(c *gin.Context) {
	var params dto.ListCommunesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	communes, err := h.referenceService.ListCommunes(c.Request.Context(), params.RegionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, communes)
}

// listPaymentTypes godoc
// @Summary List payment types
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]domain.PaymentType}
// @Security BearerAuth
// @Router /payment-types [get]
func (h *referenceHandler) listPaymentTypes(c *gin.Context) {
	types, err := h.referenceService.ListPaymentTypes(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, types)
}

// getPaymentType godoc
// @Summary Get a payment type
// @Tags reference
// @Produce  json
// @Param   id path int true "Payment type ID"
// @Success 200 {object} dto.Envelope{data=domain.PaymentType}
// @Failure 404 {object} dto.Envelope "Payment type not found"
// @Security BearerAuth
// @Router /payment-types/{id} [get]
func (h *referenceHandler) getPaymentType(c *gin.Context) {
	paymentTypeID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	paymentType, err := h.referenceService.GetPaymentType(c.Request.Context(), paymentTypeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, paymentType)
}

// listStatuses godoc
// @Summary List transaction statuses
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]domain.Status}
// @Security BearerAuth
// @Router /status [get]
func (h *referenceHandler) listStatuses(c *gin.Context) {
	statuses, err := h.referenceService.ListStatuses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, statuses)
}

// getStatus godoc
// @Summary Get a transaction status
// @Tags reference
// @Produce  json
// @Param   id path int true "Status ID"
// @Success 200 {object} dto.Envelope{data=domain.Status}
// @Failure 404 {object} dto.Envelope "Status not found"
// @Security BearerAuth
// @Router /status/{id} [get]
func (h *referenceHandler) getStatus(c *gin.Context) {
	statusID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	status, err := h.referenceService.GetStatus(c.Request.Context(), statusID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, status)
}
