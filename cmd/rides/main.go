package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/config"
	"github.com/piresc/wheelshare/internal/pkg/database"
	"github.com/piresc/wheelshare/internal/pkg/health"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/metrics"
	"github.com/piresc/wheelshare/internal/pkg/middleware"
	nrpkg "github.com/piresc/wheelshare/internal/pkg/newrelic"
	"github.com/piresc/wheelshare/internal/pkg/server"
	"github.com/piresc/wheelshare/internal/utils"
	"github.com/piresc/wheelshare/services/rides/gateway"
	"github.com/piresc/wheelshare/services/rides/handler"
	"github.com/piresc/wheelshare/services/rides/repository"
	"github.com/piresc/wheelshare/services/rides/usecase"
)

func main() {
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("broker", configs.Events.Broker))

	e := echo.New()
	gs := server.NewGracefulServer(e, zapLogger, configs.Server)
	gs.OnShutdown("logger", func(context.Context) error { return zapLogger.Close() })
	if nrApp != nil {
		gs.OnShutdown("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	gs.OnShutdown("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	gs.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

	publisher, err := newPublisher(configs, healthService, gs)
	if err != nil {
		zapLogger.Fatal("Failed to connect to event broker", logger.Err(err))
	}

	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	driverRepo := repository.NewDriverRepository(configs, postgresClient.GetDB())
	paymentRepo := repository.NewPaymentRepository(configs, postgresClient.GetDB())

	ridesGW := gateway.NewRideGW(publisher,
		gateway.WithRetrier(newPublishRetrier(configs, zapLogger)),
		gateway.WithBreaker(newPublishBreaker(configs, zapLogger)))

	rideUC, err := usecase.NewRideUC(configs, rideRepo, paymentRepo, ridesGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}
	driverUC, err := usecase.NewDriverUC(configs, rideRepo, driverRepo, paymentRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize driver use case", logger.Err(err))
	}

	// panic recovery must wrap everything else
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PrometheusMiddleware())
	e.Validator = utils.EchoValidator{}

	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)
	e.GET("/metrics", metrics.Handler())

	handler.NewHandler(rideUC, driverUC, configs).RegisterRoutes(e, redisClient)

	if err := gs.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
}
