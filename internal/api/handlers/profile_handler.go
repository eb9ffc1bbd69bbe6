package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/application"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/profile"
	"github.com/haiminh-dev/ihk-case-api/internal/render"
	"github.com/haiminh-dev/ihk-case-api/pkg/response"
	"github.com/haiminh-dev/ihk-case-api/pkg/utils"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type ProfileHandler struct {
	cases *application.CaseService
	svc   *application.ProfileService
}

func NewProfileHandler(cases *application.CaseService, svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{cases: cases, svc: svc}
}

// GetProfile returns the display-normalized questionnaire, or null data when
// it has never been saved.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	if _, err := h.cases.GetCase(caseID); err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch profile"})
		return
	}

	p, err := h.svc.GetByCase(caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch profile"})
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, response.SuccessResponse{Data: nil})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: profile.ForDisplay(p)})
}

// SaveProfile replaces the questionnaire wholesale with the sanitized
// payload. Unknown keys are dropped, empty strings become nulls.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload"})
		return
	}

	saved, err := h.svc.Upsert(caseID, raw)
	if err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: profile.ForDisplay(&saved)})
}

// DownloadBiography renders the "Sơ yếu lý lịch" document from whatever has
// been saved so far. A missing profile still yields a valid document full of
// placeholders.
func (h *ProfileHandler) DownloadBiography(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	found, err := h.cases.GetCase(caseID)
	if err != nil {
		if errors.Is(err, application.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to render document"})
		return
	}

	p, err := h.svc.GetByCase(caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to render document"})
		return
	}

	data, err := render.Biography(found, profile.ForDisplay(p))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to render document"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("so-yeu-ly-lich-%d.docx", found.ID)))
	c.Data(http.StatusOK, docxContentType, data)
}
