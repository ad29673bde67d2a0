package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type documentTypeHandler struct {
	documentTypeService portssvc.DocumentTypeSvcFacade
}

func RegisterDocumentTypeRoutes(rg *gin.RouterGroup, documentTypeService portssvc.DocumentTypeSvcFacade) {
	h := &documentTypeHandler{documentTypeService: documentTypeService}

	documentTypes := rg.Group("/document-types")
	{
		documentTypes.GET("", h.listDocumentTypes)
		documentTypes.POST("", h.createDocumentType)
		documentTypes.GET("/:id", h.getDocumentType)
		documentTypes.PUT("/:id", h.updateDocumentType)
		documentTypes.DELETE("/:id", h.deleteDocumentType)
	}
}

// listDocumentTypes godoc
// @Summary List document types
// @Tags document-types
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]domain.DocumentType}
// @Security BearerAuth
// @Router /document-types [get]
func (h *documentTypeHandler) listDocumentTypes(c *gin.Context) {
	types, err := h.documentTypeService.ListDocumentTypes(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, types)
}

// getDocumentType godoc
// @Summary Get a document type
// @Tags document-types
// @Produce  json
// @Param   id path int true "Document type ID"
// @Success 200 {object} dto.Envelope{data=domain.DocumentType}
// @Failure 404 {object} dto.Envelope "Document type not found"
// @Security BearerAuth
// @Router /document-types/{id} [get]
func (h *documentTypeHandler) getDocumentType(c *gin.Context) {
	documentTypeID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	documentType, err := h.documentTypeService.GetDocumentType(c.Request.Context(), documentTypeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, documentType)
}

// createDocumentType godoc
// @Summary Create a document type
// @Tags document-types
// @Accept  json
// @Produce  json
// @Param   documentType body dto.CreateDocumentTypeRequest true "Document type details"
// @Success 201 {object} dto.Envelope{data=domain.DocumentType}
// @Failure 409 {object} dto.Envelope "Code already used"
// @Security BearerAuth
// @Router /document-types [post]
func (h *documentTypeHandler) createDocumentType(c *gin.Context) {
	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.documentTypeService.CreateDocumentType(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// updateDocumentType godoc
// @Summary Update a document type
// @Tags document-types
// @Accept  json
// @Produce  json
// @Param   id           path int                           true "Document type ID"
// @Param   documentType body dto.UpdateDocumentTypeRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.DocumentType}
// @Security BearerAuth
// @Router /document-types/{id} [put]
func (h *documentTypeHandler) updateDocumentType(c *gin.Context) {
	documentTypeID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.documentTypeService.UpdateDocumentType(c.Request.Context(), documentTypeID, req.ToPatch())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deleteDocumentType godoc
// @Summary Delete a document type
// @Tags document-types
// @Param   id path int true "Document type ID"
// @Success 204 "No Content"
// @Failure 409 {object} dto.Envelope "Used by transactions"
// @Security BearerAuth
// @Router /document-types/{id} [delete]
func (h *documentTypeHandler) deleteDocumentType(c *gin.Context) {
	documentTypeID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.documentTypeService.DeleteDocumentType(c.Request.Context(), documentTypeID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
