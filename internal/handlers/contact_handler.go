package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type ContactHandler struct {
	*BaseHandler
	contactService *services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.SubmitContact)

	// Operator surface. No access control, matching the deployed site;
	// known insecure-by-default.
	contacts := r.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.GET("/stats", h.GetStats)
		contacts.GET("/:messageId", h.GetContact)
		contacts.PUT("/:messageId/status", h.UpdateStatus)
		contacts.DELETE("/:messageId", h.DeleteContact)
	}
}

// SubmitContact handles one contact-form submission.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	record, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Message received! I will contact you soon.",
		"messageId": record.ID,
	})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	records, err := h.contactService.List()
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

func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := ParseParamID(c, "messageId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	record, err := h.contactService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := ParseParamID(c, "messageId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.ContactStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	record, err := h.contactService.UpdateStatus(id, models.ContactStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := ParseParamID(c, "messageId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message deleted",
	})
}

func (h *ContactHandler) GetStats(c *gin.Context) {
	stats, err := h.contactService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
