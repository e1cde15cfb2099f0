package booking

import (
	"fmt"
	"net/http"
	"time"

	"bridalbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the storefront booking endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
}

// RegisterAdminRoutes mounts booking management under the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/export/csv", h.ExportCSV)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.RescheduleBooking)
	rg.PUT("/bookings/:id/deposit", h.UpdateDeposit)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)
	rg.DELETE("/bookings/:id", h.CancelBooking)
}

// respondErr maps module sentinels onto the HTTP error taxonomy.
func respondErr(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrSlotUnavailable:
		response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Requested slot is blocked or already booked")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed from the current state")
	case ErrInvalidState:
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking is completed or cancelled and cannot be rescheduled")
	case ErrUnavailable:
		response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Storage temporarily unavailable")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) RescheduleBooking(c *gin.Context) {
	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.RescheduleBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.AdminNotes, req.ReplaceNotes)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateDeposit(c *gin.Context) {
	var req UpdateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateDeposit(c.Request.Context(), c.Param("id"), *req.DepositPaid, req.AdminNotes, req.ReplaceNotes)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), c.Query("admin_notes")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListBookings(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	page, err := h.service.ListBookings(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	bookings, err := h.service.ExportBookings(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err)
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := WriteCSV(c.Writer, bookings); err != nil {
		_ = c.Error(err)
	}
}
