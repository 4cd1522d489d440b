package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// LogWithWriter is the gin access log middleware.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		Infof(ctx, "%s %s status: %d latency: %s client: %s",
			ctx.Request.Method,
			path,
			ctx.Writer.Status(),
			time.Since(start),
			ctx.ClientIP())

		if len(ctx.Errors) > 0 {
			Errorf(ctx, "%s %s errors: %s", ctx.Request.Method, path, ctx.Errors.String())
		}
	}
}
