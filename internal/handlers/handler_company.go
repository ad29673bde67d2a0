package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// RegisterCompanyRoutes registers the /companies routes and their membership sub-routes.
func RegisterCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := &companyHandler{companyService: companyService}

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listAssignedCompanies)
		companies.GET("/assigned", h.listAssignedCompanies)
		companies.GET("/:id", h.getCompany)
		companies.PUT("/:id", h.updateCompany)

		companies.GET("/:id/users", h.listCompanyUsers)
		companies.POST("/:id/users", h.addUserToCompany)
		companies.DELETE("/:id/users/:userId", h.removeUserFromCompany)
	}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company with the caller as its admin. Chilean companies need a valid RUT.
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.Envelope{data=domain.Company}
// @Failure 400 {object} dto.Envelope "Validation error"
// @Failure 409 {object} dto.Envelope "Tax id already registered"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.companyService.CreateCompany(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// listAssignedCompanies godoc
// @Summary List the caller's companies
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]domain.Company}
// @Security BearerAuth
// @Router /companies [get]
// @Router /companies/assigned [get]
func (h *companyHandler) listAssignedCompanies(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	companies, err := h.companyService.ListAssignedCompanies(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, companies)
}

// getCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce  json
// @Param   id path int true "Company ID"
// @Success 200 {object} dto.Envelope{data=domain.Company}
// @Failure 403 {object} dto.Envelope "Not a member"
// @Failure 404 {object} dto.Envelope "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	companyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	company, err := h.companyService.GetCompany(c.Request.Context(), userID, companyID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, company)
}

// updateCompany godoc
// @Summary Update a company
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   id      path int                      true "Company ID"
// @Param   company body dto.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Company}
// @Failure 403 {object} dto.Envelope "Not an admin"
// @Failure 404 {object} dto.Envelope "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	companyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.companyService.UpdateCompany(c.Request.Context(), userID, companyID, req.ToPatch())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// listCompanyUsers godoc
// @Summary List company members
// @Tags companies
// @Produce  json
// @Param   id path int true "Company ID"
// @Success 200 {object} dto.Envelope{data=[]domain.CompanyUser}
// @Failure 403 {object} dto.Envelope "Not a member"
// @Security BearerAuth
// @Router /companies/{id}/users [get]
func (h *companyHandler) listCompanyUsers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	companyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	users, err := h.companyService.ListCompanyUsers(c.Request.Context(), userID, companyID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, users)
}

// addUserToCompany godoc
// @Summary Add a member to a company
// @Tags companies
// @Accept  json
// @Param   id   path int                       true "Company ID"
// @Param   user body dto.AddCompanyUserRequest true "Member to add"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope "Not an admin"
// @Failure 409 {object} dto.Envelope "Already a member"
// @Security BearerAuth
// @Router /companies/{id}/users [post]
func (h *companyHandler) addUserToCompany(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	companyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.AddCompanyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.companyService.AddUserToCompany(c.Request.Context(), userID, companyID, req.UserID, req.IsAdmin); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeUserFromCompany godoc
// @Summary Remove a member from a company
// @Tags companies
// @Param   id     path int    true "Company ID"
// @Param   userId path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope "Not an admin"
// @Failure 404 {object} dto.Envelope "Not a member"
// @Security BearerAuth
// @Router /companies/{id}/users/{userId} [delete]
func (h *companyHandler) removeUserFromCompany(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	companyID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.companyService.RemoveUserFromCompany(c.Request.Context(), userID, companyID, c.Param("userId")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
