package calendar

import (
	"net/http"
	"time"

	"bridalbook/internal/domain"
	"bridalbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts block management under the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/calendar/block", h.CreateBlock)
	rg.GET("/calendar/blocks", h.ListBlocks)
	rg.DELETE("/calendar/block/:id", h.RemoveBlock)
}

// RegisterPublicRoutes mounts the availability check for the storefront.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/availability", h.CheckAvailability)
}

func (h *Handler) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBlock(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidRange:
			response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Block start must not be after block end")
		case ErrUnavailable:
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Storage temporarily unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create calendar block")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"block": b})
}

func (h *Handler) ListBlocks(c *gin.Context) {
	from, err := time.Parse(domain.SlotDateLayout, c.Query("startDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startDate must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse(domain.SlotDateLayout, c.Query("endDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endDate must be YYYY-MM-DD")
		return
	}
	// endDate is inclusive on the wire, the range predicate is half-open
	to = to.Add(24 * time.Hour)

	blocks, err := h.service.ListBlocks(c.Request.Context(), from, to, c.Query("locationId"))
	if err != nil {
		if err == ErrUnavailable {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Storage temporarily unavailable")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list calendar blocks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

func (h *Handler) RemoveBlock(c *gin.Context) {
	err := h.service.RemoveBlock(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Calendar block not found")
		case ErrUnavailable:
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Storage temporarily unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove calendar block")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	locationID := c.Query("location_id")

	date, err := time.Parse(domain.SlotDateLayout, dateStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}
	if locationID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "location_id is required")
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), date, timeStr, locationID)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "time must be HH:MM")
		case ErrUnavailable:
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Storage temporarily unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		}
		return
	}

	response.Success(c, http.StatusOK, AvailabilityResponse{
		Date:       dateStr,
		Time:       timeStr,
		LocationID: locationID,
		Available:  available,
	})
}
