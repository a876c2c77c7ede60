package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// maxMultipartMemory caps the in-memory portion of multipart parsing; the
// rest spills to temp files. The real size ceiling lives in the receiver.
const maxMultipartMemory = 32 << 20

type UploadHandler struct {
	*BaseHandler
	uploadService *services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload-project", h.UploadProject)

	// Listing endpoints have no access control, matching the deployed
	// surface. Known insecure-by-default.
	uploads := r.Group("/uploads")
	{
		uploads.GET("", h.ListUploads)
		uploads.GET("/:uploadId", h.GetUpload)
	}
}

// UploadProject handles one multipart project submission.
func (h *UploadHandler) UploadProject(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to parse form: "+err.Error()))
		return
	}

	var req dto.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return
	}
	req.Files = c.Request.MultipartForm.File["files"]

	data, err := h.uploadService.HandleUpload(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project uploaded successfully!",
		"data":    data,
	})
}

// ListUploads returns the full upload history.
func (h *UploadHandler) ListUploads(c *gin.Context) {
	records, err := h.uploadService.ListUploads()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// GetUpload returns one upload record.
func (h *UploadHandler) GetUpload(c *gin.Context) {
	id, err := ParseParamID(c, "uploadId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	record, err := h.uploadService.GetUpload(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}
