package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/vehiclerental/internal/service/booking"
	"github.com/Domenick1991/vehiclerental/internal/validation"
	"github.com/gin-gonic/gin"
)

type validationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// writeError maps service errors onto status codes. Validation failures carry
// the per-field messages so the form can render them inline.
func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse{Errors: verr.Fields})
	case errors.Is(err, booking.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}
