package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 carrying the request id.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			reqID := GetRequestID(c)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", reqID),
				logger.String("method", c.Request.Method),
				logger.String("route", c.FullPath()),
				logger.Any("error", rec),
				logger.String("stack", string(debug.Stack())),
			)

			// picked up by RequestLogger
			c.Set("error", fmt.Sprintf("panic: %v", rec))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":     "internal server error",
				"requestId": reqID,
			})
		}()

		c.Next()
	}
}
