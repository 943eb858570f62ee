package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorBody is the wire shape of every failed request. Details carries the
// per-field validation failures when present.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ValidationError returns a 400 carrying the per-field failure map produced
// by the request DTO's Validate method. Errors that did not come from the
// validator degrade to a plain 400 body.
func ValidationError(c *gin.Context, message string, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Details: fieldErrors})
		return
	}
	BadRequest(c, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError hides the underlying failure from the client.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
