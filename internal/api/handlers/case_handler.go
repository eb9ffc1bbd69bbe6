package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/application"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
	"github.com/haiminh-dev/ihk-case-api/pkg/response"
	"github.com/haiminh-dev/ihk-case-api/pkg/utils"
)

type CaseHandler struct {
	svc  *application.CaseService
	docs *application.DocumentService
}

func NewCaseHandler(svc *application.CaseService, docs *application.DocumentService) *CaseHandler {
	return &CaseHandler{svc: svc, docs: docs}
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	var input casefile.CreateCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "fullName is required"})
		return
	}

	created, err := h.svc.CreateCase(input)
	if err != nil {
		if errors.Is(err, application.ErrFullNameRequired) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to create case"})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: created})
}

func (h *CaseHandler) ListCases(c *gin.Context) {
	cases, err := h.svc.ListCases()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to list cases"})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: cases})
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	found, err := h.svc.GetCase(caseID)
	if err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch case"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: found})
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	var input casefile.UpdateCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.svc.UpdateCase(caseID, input)
	if err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to update case"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: updated})
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	if err := h.svc.DeleteCase(c.Request.Context(), caseID); err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to delete case"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Case deleted"})
}

func (h *CaseHandler) GetChecklist(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	checklist, err := h.docs.GetChecklist(caseID)
	if err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load checklist"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: checklist})
}
