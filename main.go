package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	echo "github.com/labstack/echo/v4"

	"github.com/gamescriptai/payment-webhook-service/config"
	"github.com/gamescriptai/payment-webhook-service/handlers"
	"github.com/gamescriptai/payment-webhook-service/pkg/hmacvalidator"
	"github.com/gamescriptai/payment-webhook-service/queue"
	"github.com/gamescriptai/payment-webhook-service/routes"
	service "github.com/gamescriptai/payment-webhook-service/services"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

func main() {
	utils.InitLogger()
	logger := utils.Logger

	if err := run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func run() error {
	logger := utils.Logger
	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	// A bad secret is fatal: nothing downstream may run without a working
	// verification gate.
	hmacValidator, err := hmacvalidator.New(cfg.HmacKey)
	if err != nil {
		return fmt.Errorf("initialize hmac validator: %w", err)
	}

	jobQueue, cleanup, err := setupQueue(&cfg)
	if err != nil {
		return fmt.Errorf("initialize queue: %w", err)
	}
	defer cleanup()

	services := service.NewServices(&cfg, jobQueue)
	newHandlers := handlers.NewHandlers(services, hmacValidator)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services.StartWorkers(ctx)

	e := echo.New()

	validate := utils.InitValidator()
	e.Validator = &CustomValidator{validator: validate}
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	routes.Register(e, &cfg, newHandlers)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("Payment Webhook Verification Service running")

	return e.Start(":" + port)
}

func setupQueue(cfg *config.Config) (queue.Queue, func(), error) {
	logger := utils.Logger

	switch cfg.QueueBackend {
	case "rabbitmq":
		q, err := queue.NewRabbitMQQueue(cfg.RabbitMQURL)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := q.Close(); err != nil {
				logger.Error().Err(err).Msg("error closing rabbitmq")
			}
		}
		return q, cleanup, nil
	case "redis":
		redisClient, err := utils.NewRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := redisClient.Close(); err != nil {
				logger.Error().Err(err).Msg("error closing redis")
			}
		}
		return queue.NewRedisQueue(redisClient.GetClient()), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown queue backend: %s", cfg.QueueBackend)
	}
}
