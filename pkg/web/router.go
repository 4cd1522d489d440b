package web

import (
	// 外部依赖
	"context"

	cors "github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	// 内部引用
	config "github.com/nqn-dd/NovoMD/internal/config"
	_ "github.com/nqn-dd/NovoMD/docs"
	auth "github.com/nqn-dd/NovoMD/pkg/middleware/auth"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	ratelimit "github.com/nqn-dd/NovoMD/pkg/middleware/ratelimit"
	health "github.com/nqn-dd/NovoMD/pkg/web/views/health"
	login "github.com/nqn-dd/NovoMD/pkg/web/views/login"
	moleculelib "github.com/nqn-dd/NovoMD/pkg/web/views/moleculelib"
	property "github.com/nqn-dd/NovoMD/pkg/web/views/property"
)

func NewRouter(ctx context.Context, g *gin.Engine) context.CancelFunc {
	installMiddleware(g)
	return installURL(ctx, g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	g.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	g.Use(logger.LogWithWriter())
	g.Use(otelgin.Middleware(config.Global().Server.Platform))
	if config.Global().RateLimit.Enabled {
		g.Use(ratelimit.PerClient())
	}
}

func installURL(ctx context.Context, g *gin.Engine) context.CancelFunc {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/ready", health.Ready)
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	propHandle := property.NewHandle(ctx)
	libHandle := moleculelib.NewHandle()

	v1 := api.Group("/v1")
	{
		v1.POST("/auth/token", login.Token)
		v1.GET("/properties", propHandle.Capabilities)
		v1.POST("/calculate", propHandle.Calculate)
		v1.POST("/convert", propHandle.Convert)
	}

	{
		ws := v1.Group("/ws")
		ws.GET("/calculate", propHandle.Connect)
	}

	{
		molecules := v1.Group("/molecules", auth.Auth())
		molecules.POST("", libHandle.Insert)
		molecules.GET("", libHandle.Query)
		molecules.GET("/:uuid", libHandle.Get)
		molecules.PUT("", libHandle.Update)
		molecules.DELETE("", libHandle.Delete)
		molecules.POST("/enrich", libHandle.Enrich)
	}

	return func() {
		propHandle.Close(ctx)
	}
}
