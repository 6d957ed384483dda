package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/connectfour-backend/internal/analytics"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/transport/rest"
	"github.com/rocketscienceinc/connectfour-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := entity.NewBoard(conf.Game.Rows, conf.Game.Columns).Validate(); err != nil {
		return fmt.Errorf("bad game board size: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	producer := analytics.NewProducer(conf.Kafka.Brokers, conf.Kafka.Topic)
	if producer == nil {
		log.Info("kafka is not configured, analytics disabled")
	}

	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("could not close analytics producer", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(logger, redisStorage.Connection)
	botService := service.NewBotService(logger, conf.Game.SearchParallelism)
	gameManager := usecase.NewGameManager(logger, usecase.Config{
		Rows:            conf.Game.Rows,
		Columns:         conf.Game.Columns,
		TickInterval:    conf.Game.TickInterval,
		BotDelay:        conf.Game.BotDelay,
		SnapshotTTL:     conf.Game.SnapshotTTL,
		UpdateQueueSize: conf.Game.UpdateQueueSize,
		ExternalClock:   conf.Game.ExternalClock,
	}, gameRepo, producer, botService)
	defer gameManager.Shutdown()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return gameManager.Run(groupCtx)
	})

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.New(logger, gameManager).Start(groupCtx, conf.HTTPPort); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if err := websocket.New(logger, gameManager, gameRepo).Start(groupCtx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("application stopped: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
