package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "propcalc/internal/errors"
	"propcalc/internal/logger"
)

// ErrorHandler renders the last error set on the Gin context, unless a
// response has already been written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RenderError(c, c.Errors.Last().Err)
	}
}

// RenderError writes err as the JSON error envelope. Unexpected errors are
// logged in full and masked; AppErrors with an internal cause are logged at
// warn level, or error level for 5xx.
func RenderError(c *gin.Context, err error) {
	status, body := apperrors.Response(err)

	var appErr *apperrors.AppError
	switch {
	case !errors.As(err, &appErr):
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
	case appErr.Internal == nil:
	default:
		log := logger.Get().Warnw
		if status >= http.StatusInternalServerError {
			log = logger.Get().Errorw
		}
		log("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(status, body)
}
