package middleware

import (
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// SecureHeaders sets the usual hardening headers on every response.
func SecureHeaders(l *logger.Logger, isDevelopment bool) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
		IsDevelopment:      isDevelopment,
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			if l != nil {
				l.ErrorCtx(c.Request.Context(), "secure headers rejected request", zap.Error(err))
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
