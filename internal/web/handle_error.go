package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// HandleError writes the JSON error envelope, logs through the request
// logger, and aborts the handler chain.
func HandleError(c *gin.Context, code int, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}

	if logger, ok := c.Get("logger"); ok {
		logger.(*zerolog.Logger).
			Warn().
			Int("code", code).
			Str("details", details).
			Msg(message)
	}

	c.AbortWithStatusJSON(code, errorResponse{
		Error: errorBody{
			Message: message,
			Details: details,
		},
	})
}
