package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"property-control/internal/repositories"
	"property-control/internal/routes"
	"property-control/pkg/config"
	"property-control/pkg/database/postgresql"
	"property-control/pkg/logger"
	"property-control/pkg/service"
	"property-control/pkg/utils"
)

func main() {
	logger := logger.NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Validator = utils.NewValidator(validator.New())

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "migrations"); err != nil {
		logger.Fatal("не удалось применить миграции", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err))
	}
	cacheRepository := repositories.NewRedisCacheRepository(redisClient)

	jwtService := service.NewJWTService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		logger,
	)

	routes.InitRouter(e, dbPool, cacheRepository, jwtService, logger)

	logger.Info("сервер запускается", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("сервер остановлен", zap.Error(err))
	}
}
