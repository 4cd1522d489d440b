package health

import (
	// 外部依赖
	"github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/nqn-dd/NovoMD/pkg/common"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	db "github.com/nqn-dd/NovoMD/pkg/middleware/db"
	redis "github.com/nqn-dd/NovoMD/pkg/middleware/redis"
)

// Health is the liveness probe: the process is up and serving.
func Health(ctx *gin.Context) {
	common.ReplyOk(ctx, gin.H{"status": "ok"})
}

// Ready is the readiness probe: every backing store answers.
func Ready(ctx *gin.Context) {
	sqlDB, err := db.DB().DBIns().DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		common.ReplyErr(ctx, code.UnDefineErr.WithMsgf("database unreachable: %v", err))
		return
	}

	if rc := redis.GetClient(); rc != nil {
		if err := rc.Ping(ctx).Err(); err != nil {
			common.ReplyErr(ctx, code.UnDefineErr.WithMsgf("redis unreachable: %v", err))
			return
		}
	}

	common.ReplyOk(ctx, gin.H{"status": "ready"})
}
