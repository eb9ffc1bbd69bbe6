package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/application"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/document"
	"github.com/haiminh-dev/ihk-case-api/pkg/response"
	"github.com/haiminh-dev/ihk-case-api/pkg/utils"
)

type DocumentHandler struct {
	svc *application.DocumentService
}

func NewDocumentHandler(svc *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// readUpload pulls the multipart "file" part into memory. Checklist files are
// small scans, so buffering the whole part is fine.
func readUpload(c *gin.Context) ([]byte, string, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", "", err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", "", err
	}
	return data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), nil
}

func uploaderID(c *gin.Context) *uint {
	id, err := utils.UserIDFromContext(c)
	if err != nil {
		return nil
	}
	return &id
}

func (h *DocumentHandler) UploadDefault(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	data, fileName, contentType, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	result, err := h.svc.AttachDefaultDocument(c.Request.Context(), caseID, c.Param("type"), data, fileName, contentType, uploaderID(c))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCaseNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
		case errors.Is(err, document.ErrInvalidDocType):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "uploaded file is empty"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to upload document"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *DocumentHandler) DownloadDefault(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	ref, err := h.svc.GetDocumentFile(caseID, c.Param("type"))
	if err != nil {
		h.fileError(c, err)
		return
	}
	h.serveFile(c, ref)
}

func (h *DocumentHandler) AddCustom(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}

	var input document.AddCustomDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "title is required"})
		return
	}

	doc, err := h.svc.AddCustomDocument(caseID, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCaseNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
		case errors.Is(err, application.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to add document"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: doc})
}

func (h *DocumentHandler) DeleteCustom(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}
	docID, err := utils.ParseIDParam(c, "docId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}

	if err := h.svc.DeleteCustomDocument(c.Request.Context(), caseID, docID); err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}

func (h *DocumentHandler) UploadCustom(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}
	docID, err := utils.ParseIDParam(c, "docId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}

	data, fileName, contentType, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	doc, err := h.svc.AttachCustomDocumentFile(c.Request.Context(), caseID, docID, data, fileName, contentType, uploaderID(c))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
		case errors.Is(err, application.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "uploaded file is empty"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to upload document"})
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: doc})
}

func (h *DocumentHandler) DownloadCustom(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid case id"})
		return
	}
	docID, err := utils.ParseIDParam(c, "docId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}

	ref, err := h.svc.GetCustomDocumentFile(caseID, docID)
	if err != nil {
		h.fileError(c, err)
		return
	}
	h.serveFile(c, ref)
}

func (h *DocumentHandler) fileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrCaseNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "case not found"})
	case errors.Is(err, application.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
	case errors.Is(err, application.ErrFileNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "file not found"})
	case errors.Is(err, document.ErrInvalidDocType):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch file"})
	}
}

func (h *DocumentHandler) serveFile(c *gin.Context, ref document.FileRef) {
	obj, err := h.svc.FetchObject(c.Request.Context(), ref.StorageKey)
	if err != nil {
		h.fileError(c, err)
		return
	}

	fileName := path.Base(ref.StorageKey)
	if ref.FileName != nil && *ref.FileName != "" {
		fileName = *ref.FileName
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
