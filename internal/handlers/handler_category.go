package handlers

import (
	"net/http"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService    portssvc.CategorySvcFacade
	transactionService portssvc.TransactionReaderSvc
}

// RegisterCategoryRoutes registers the /categories routes, including the monthly consolidated report.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, transactionService portssvc.TransactionReaderSvc) {
	h := &categoryHandler{categoryService: categoryService, transactionService: transactionService}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/monthly-consolidated", h.monthlyConsolidated)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce  json
// @Param   type  query string false "income or expense"
// @Param   page  query int    false "Page" default(1)
// @Param   limit query int    false "Page size (max 100)" default(50)
// @Success 200 {object} dto.Envelope{data=[]domain.Category}
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	var categoryType *domain.TransactionType
	if params.Type != nil && *params.Type != "" {
		t := domain.TransactionType(*params.Type)
		categoryType = &t
	}
	categories, meta, err := h.categoryService.ListCategories(c.Request.Context(), categoryType,
		domain.PageRequest{Page: params.Page, Limit: params.Limit})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageEnvelope(categories, meta))
}

// monthlyConsolidated godoc
// @Summary Monthly totals per category
// @Description Sums the caller's transactions per category and month of a year.
// @Tags categories
// @Produce  json
// @Param   year      query int    false "Year, defaults to the current one"
// @Param   type      query string false "income or expense"
// @Param   companyId query int    false "Company ID"
// @Success 200 {object} dto.Envelope{data=[]domain.CategoryMonthlyRow}
// @Security BearerAuth
// @Router /categories/monthly-consolidated [get]
func (h *categoryHandler) monthlyConsolidated(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var params dto.MonthlyConsolidatedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	rows, err := h.transactionService.GetCategoryMonthlyConsolidated(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, rows)
}

// getCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce  json
// @Param   id path int true "Category ID"
// @Success 200 {object} dto.Envelope{data=domain.Category}
// @Failure 404 {object} dto.Envelope "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	categoryID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, category)
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Envelope{data=domain.Category}
// @Failure 409 {object} dto.Envelope "Name already used for this type"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.categoryService.CreateCategory(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id       path int                       true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Category}
// @Failure 403 {object} dto.Envelope "Default categories are read-only"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	categoryID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req.ToPatch())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param   id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope "Default categories are read-only"
// @Failure 409 {object} dto.Envelope "Used by transactions"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	categoryID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
