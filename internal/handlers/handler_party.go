package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// partyHandler serves one party kind. /clients and /vendors share it.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// RegisterPartyRoutes registers CRUD routes for the party kind of partyService under path.
func RegisterPartyRoutes(rg *gin.RouterGroup, path string, partyService portssvc.PartySvcFacade) {
	h := &partyHandler{partyService: partyService}

	parties := rg.Group(path)
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
		parties.DELETE("/:id", h.deleteParty)
	}
}

// createParty godoc
// @Summary Create a client or vendor
// @Description The tax id must be a valid RUT and is stored in canonical form. On conflict the existing record is returned in data.
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.Envelope{data=domain.Party}
// @Failure 400 {object} dto.Envelope "Validation error"
// @Failure 409 {object} dto.Envelope{data=domain.Party} "Tax id already registered"
// @Security BearerAuth
// @Router /clients [post]
// @Router /vendors [post]
func (h *partyHandler) createParty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.partyService.CreateParty(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// listParties godoc
// @Summary List clients or vendors
// @Tags parties
// @Produce  json
// @Param   name     query string false "Name substring"
// @Param   industry query string false "Industry substring"
// @Param   country  query string false "Country substring"
// @Param   taxId    query string false "Tax id substring"
// @Success 200 {object} dto.Envelope{data=[]domain.Party}
// @Security BearerAuth
// @Router /clients [get]
// @Router /vendors [get]
func (h *partyHandler) listParties(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	parties, err := h.partyService.ListParties(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, parties)
}

// getParty godoc
// @Summary Get a client or vendor
// @Tags parties
// @Produce  json
// @Param   id path int true "Party ID"
// @Success 200 {object} dto.Envelope{data=domain.Party}
// @Failure 403 {object} dto.Envelope "Owned by another user"
// @Failure 404 {object} dto.Envelope "Not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
// @Router /vendors/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	partyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	party, err := h.partyService.GetParty(c.Request.Context(), userID, partyID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, party)
}

// updateParty godoc
// @Summary Update a client or vendor
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id    path int                    true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Party}
// @Failure 400 {object} dto.Envelope "Validation error"
// @Failure 403 {object} dto.Envelope "Owned by another user"
// @Failure 409 {object} dto.Envelope{data=domain.Party} "Tax id already registered"
// @Security BearerAuth
// @Router /clients/{id} [put]
// @Router /vendors/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	partyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.partyService.UpdateParty(c.Request.Context(), userID, partyID, req.ToPatch())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deleteParty godoc
// @Summary Delete a client or vendor
// @Tags parties
// @Param   id path int true "Party ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope "Owned by another user"
// @Failure 404 {object} dto.Envelope "Not found"
// @Failure 409 {object} dto.Envelope "Referenced by transactions"
// @Security BearerAuth
// @Router /clients/{id} [delete]
// @Router /vendors/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	partyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.partyService.DeleteParty(c.Request.Context(), userID, partyID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
