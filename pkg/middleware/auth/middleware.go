package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nqn-dd/NovoMD/pkg/common"
	"github.com/nqn-dd/NovoMD/pkg/common/code"
	"github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	"github.com/nqn-dd/NovoMD/pkg/utils"
)

// Auth validates the bearer token from header, cookie or query and puts
// the claims on the request context.
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, _ := ctx.Cookie("access_token")
		header := ctx.GetHeader("Authorization")
		query := ctx.Query("access_token")

		bearer := ""
		if strings.HasPrefix(header, "Bearer ") {
			bearer = strings.TrimPrefix(header, "Bearer ")
		}

		token := utils.Or(bearer, cookie, query)
		if token == "" {
			common.ReplyErr(ctx, code.UnLogin)
			ctx.Abort()
			return
		}

		claims, err := ValidateToken(ctx, token)
		if err != nil {
			logger.Warnf(ctx, "auth token rejected: %+v", err)
			common.ReplyErr(ctx, code.InvalidToken)
			ctx.Abort()
			return
		}

		ctx.Set(UserKey, claims)
		ctx.Next()
	}
}
