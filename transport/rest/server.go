package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	router *gin.Engine
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	ping := NewPingHandler()
	handler := NewGameHandler(logger, games)

	router.GET("/ping", ping.Ping)

	router.POST("/games", handler.NewGame)
	router.GET("/games/:id", handler.GetGame)
	router.POST("/games/:id/moves", handler.MakeMove)
	router.POST("/games/:id/reset", handler.Reset)
	router.POST("/games/:id/tick", handler.Tick)
	router.DELETE("/games/:id", handler.EndGame)

	router.POST("/best-move", handler.BestMove)

	return &Server{
		logger: logger.With("component", "rest"),
		router: router,
	}
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is done, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
