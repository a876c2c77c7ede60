package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ResultHandler struct {
	*BaseHandler
	resultService *services.ResultService
}

func NewResultHandler(base *BaseHandler, resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{
		BaseHandler:   base,
		resultService: resultService,
	}
}

func (h *ResultHandler) RegisterRoutes(r *gin.RouterGroup) {
	results := r.Group("/results")
	{
		results.POST("/submit", h.SubmitResult)
		results.GET("/:studentId", h.GetResult)
	}
}

func (h *ResultHandler) SubmitResult(c *gin.Context) {
	var req dto.ResultSubmitRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	record, err := h.resultService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Result submitted successfully",
		"resultId": record.ID,
	})
}

func (h *ResultHandler) GetResult(c *gin.Context) {
	record, err := h.resultService.GetByStudent(c.Param("studentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}
