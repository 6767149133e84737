package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofounderbase/internal/apperrors"
)

// APIResponse is the shared JSON envelope for every endpoint.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// FromError maps a service error onto the envelope. AppErrors carry their own
// HTTP status and are serialized structurally; anything else is a 500.
func FromError(c *gin.Context, err error, message string) {
	status := apperrors.HTTPStatus(err)
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}

	var ae *apperrors.AppError
	if apperrors.As(err, &ae) {
		resp.Error = ae
	} else if err != nil {
		status = http.StatusInternalServerError
		resp.Error = err.Error()
	}

	c.JSON(status, resp)
}
