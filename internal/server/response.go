package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the envelope.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeGeneration    = "GENERATION_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

type APIError struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Steps   []string `json:"steps,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondFile sends data as a download named filename.
func RespondFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", contentDisposition(filename))
	c.Data(http.StatusOK, contentType, data)
}
