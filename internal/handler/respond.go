package handler

import (
	"errors"
	"net/http"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	relay_errors "relay-chat/pkg/errors"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const invalidRequest = "Invalid request"

// writeError sends the public form of err. Server side failures are logged
// with their full cause.
func writeError(c *gin.Context, l *logger.Logger, err error) {
	status := services.HTTPStatus(err)
	if status >= http.StatusInternalServerError && l != nil {
		l.ErrorCtx(c.Request.Context(), "request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
	}
	c.JSON(status, httpdto.NewErrorResponse(services.PublicMessage(err), services.Code(err)))
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(invalidRequest, "INVALID_REQUEST"))
}

// bindBody decodes the JSON body into req. The body is cached on the context so
// the action envelope and the typed request can both read it.
func bindBody(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, httpdto.NewErrorResponse("file too large", "TOO_LARGE"))
			return false
		}
		badRequest(c)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		badRequest(c)
		return false
	}
	return true
}

func unknownAction(c *gin.Context, l *logger.Logger) {
	writeError(c, l, relay_errors.ErrUnknownAction)
}

// InvalidMethod rejects verbs a handler does not serve.
func InvalidMethod(c *gin.Context) {
	badRequest(c)
}
