package api

import (
	// 外部依赖
	"context"
	"fmt"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	cobra "github.com/spf13/cobra"

	// 内部引用
	config "github.com/nqn-dd/NovoMD/internal/config"
	db "github.com/nqn-dd/NovoMD/pkg/middleware/db"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	redis "github.com/nqn-dd/NovoMD/pkg/middleware/redis"
	trace "github.com/nqn-dd/NovoMD/pkg/middleware/trace"
	web "github.com/nqn-dd/NovoMD/pkg/web"
)

func NewWeb() *cobra.Command {
	return &cobra.Command{
		Use:          "apiserver",
		Long:         `api server start`,
		SilenceUsage: true,
		PreRunE:      initWeb,
		RunE:         runWeb,
		PostRunE:     cleanWebResource,
	}
}

func initWeb(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	ctx := cmd.Context()

	db.InitPostgres(ctx, &db.Config{
		Host:   conf.Database.Host,
		Port:   conf.Database.Port,
		User:   conf.Database.User,
		PW:     conf.Database.Password,
		DBName: conf.Database.Name,
		LogConf: db.LogConf{
			Level: conf.Log.LogLevel,
		},
	})

	redis.InitRedis(ctx, &redis.Redis{
		Host:     conf.Redis.Host,
		Port:     conf.Redis.Port,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	trace.InitTrace(ctx, &trace.InitConfig{
		ServiceName:    conf.Server.Platform,
		Version:        conf.Trace.Version,
		TraceEndpoint:  conf.Trace.TraceEndpoint,
		MetricEndpoint: conf.Trace.MetricEndpoint,
	})

	return nil
}

func runWeb(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	ctx := cmd.Context()

	if conf.Server.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	g := gin.New()
	g.Use(gin.Recovery())
	closeRouter := web.NewRouter(ctx, g)
	defer closeRouter()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "api server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "api server shutdown err: %+v", err)
		return err
	}
	logger.Infof(ctx, "api server stopped")
	return nil
}

func cleanWebResource(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	trace.CloseTrace()
	redis.CloseRedis(ctx)
	db.ClosePostgres(ctx)
	return nil
}
