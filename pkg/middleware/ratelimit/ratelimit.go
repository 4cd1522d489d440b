package ratelimit

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nqn-dd/NovoMD/internal/config"
	"github.com/nqn-dd/NovoMD/pkg/common"
	"github.com/nqn-dd/NovoMD/pkg/common/code"
	"github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	"github.com/nqn-dd/NovoMD/pkg/middleware/redis"
)

const window = time.Minute

// PerClient gates total request throughput with a fixed-window counter in
// Redis, keyed per client IP. Admission happens before any calculation
// logic runs; the property gate itself never sees rejected requests.
func PerClient() gin.HandlerFunc {
	conf := config.Global().RateLimit

	return func(ctx *gin.Context) {
		if !conf.Enabled {
			ctx.Next()
			return
		}

		rc := redis.GetClient()
		if rc == nil {
			// No counter backend: admit rather than block the service.
			ctx.Next()
			return
		}

		key := fmt.Sprintf("novomd:ratelimit:%s:%d", ctx.ClientIP(), time.Now().Unix()/int64(window.Seconds()))
		count, err := rc.Incr(ctx, key).Result()
		if err != nil {
			logger.Errorf(ctx, "ratelimit incr err: %+v", err)
			ctx.Next()
			return
		}
		if count == 1 {
			rc.Expire(ctx, key, window)
		}

		if count > int64(conf.PerMinute) {
			common.ReplyErr(ctx, code.RateLimited)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
