package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/vehiclerental/internal/domain"
	"github.com/Domenick1991/vehiclerental/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingResponse struct {
	Reference   string `json:"reference"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SubmittedAt string `json:"submitted_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sub, err := h.service.SubmitBookingRequest(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		Reference:   sub.Reference,
		Title:       sub.Title,
		Description: sub.Description,
		SubmittedAt: sub.SubmittedAt.Format(time.RFC3339),
	})
}
