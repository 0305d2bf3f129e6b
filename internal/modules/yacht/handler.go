package yacht

import (
	"errors"
	"net/http"

	"yachtbooking/internal/pkg/response"
	"yachtbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/yachts", h.ListYachts)
	rg.GET("/yachts/:id", h.GetYacht)
	rg.POST("/yachts", h.CreateYacht)
	rg.PATCH("/yachts/:id", h.UpdateYacht)
	rg.DELETE("/yachts/:id", h.DeleteYacht)
}

func (h *Handler) ListYachts(c *gin.Context) {
	yachts, err := h.service.ListYachts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"yachts": yachts})
}

func (h *Handler) GetYacht(c *gin.Context) {
	y, err := h.service.GetYacht(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"yacht": y})
}

func (h *Handler) CreateYacht(c *gin.Context) {
	var req CreateYachtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request fields", fields)
		return
	}

	y, err := h.service.CreateYacht(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"yacht": y})
}

func (h *Handler) UpdateYacht(c *gin.Context) {
	var req UpdateYachtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	y, err := h.service.UpdateYacht(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"yacht": y})
}

func (h *Handler) DeleteYacht(c *gin.Context) {
	if err := h.service.DeleteYacht(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Yacht not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
