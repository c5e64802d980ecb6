package app

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/config"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores, wires every module onto router and returns
// a function that closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	router.Use(middleware.RequestID())
	registerModules(router, buildServices(gormDB, redisClient, cfg, logger), redisClient, cfg, logger)

	return func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}, nil
}
