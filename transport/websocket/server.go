package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	sendBuffer      = 16
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, column int) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	Tick(ctx context.Context, id string) (*entity.Game, error)
}

type gameSubscriber interface {
	Subscribe(ctx context.Context, id string) (<-chan *entity.Game, func() error)
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger     *slog.Logger
	games      gameUseCase
	subscriber gameSubscriber
	upgrader   websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase, subscriber gameSubscriber) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		games:      games,
		subscriber: subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameState] = server.handleState
	server.handlers[actionGameMove] = server.handleMove
	server.handlers[actionGameReset] = server.handleReset
	server.handlers[actionGameTick] = server.handleTick

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and binds it to one game.
func (that *Server) serveWS(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	gameID := req.URL.Query().Get("game")

	game, err := that.games.GetGame(req.Context(), gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(writer, err.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", gameID, "error", err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	gameClient := &client{
		gameID: gameID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}

	updates, closeSubscription := that.subscriber.Subscribe(connCtx, gameID)
	defer func() {
		if err := closeSubscription(); err != nil {
			log.Error("failed to close subscription", "error", err)
		}
	}()

	go that.writePump(connCtx, gameClient, updates)

	log.Info("WebSocket connection established", "gameID", gameID)

	that.reply(gameClient, actionGameState, ResponsePayload{Game: game})

	if err = that.readPump(connCtx, gameClient); err != nil {
		log.Debug("connection closed", "gameID", gameID, "error", err)
	}
}

// readPump - dispatches client messages until the connection fails.
func (that *Server) readPump(ctx context.Context, gameClient *client) error {
	log := that.logger.With("method", "readPump", "gameID", gameClient.gameID)

	gameClient.conn.SetReadLimit(maxMessageSize)
	_ = gameClient.conn.SetReadDeadline(time.Now().Add(pongWait))
	gameClient.conn.SetPongHandler(func(string) error {
		return gameClient.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := gameClient.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.reply(gameClient, "", ResponsePayload{Error: "malformed message"})
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.reply(gameClient, message.Action, ResponsePayload{Error: "unknown action"})
			continue
		}

		if err = handler(ctx, gameClient, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			that.reply(gameClient, message.Action, ResponsePayload{Error: err.Error()})
		}
	}
}

// writePump - owns all writes to the connection: replies, pushed snapshots and pings.
func (that *Server) writePump(ctx context.Context, gameClient *client, updates <-chan *entity.Game) {
	log := that.logger.With("method", "writePump", "gameID", gameClient.gameID)

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = gameClient.conn.Close()
	}()

	for {
		var (
			data        []byte
			messageType = websocket.TextMessage
		)

		select {
		case <-ctx.Done():
			_ = gameClient.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case data = <-gameClient.send:
		case game, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}

			message, err := newMessage(actionGameState, ResponsePayload{Game: game})
			if err != nil {
				log.Error("failed to build update", "error", err)
				continue
			}
			data = message
		case <-ticker.C:
			messageType = websocket.PingMessage
		}

		_ = gameClient.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := gameClient.conn.WriteMessage(messageType, data); err != nil {
			log.Debug("failed to write message", "error", err)
			return
		}
	}
}

// reply - queues a message for the client, dropping it when the client is too slow.
func (that *Server) reply(gameClient *client, action string, payload ResponsePayload) {
	message, err := newMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to build reply", "action", action, "error", err)
		return
	}

	select {
	case gameClient.send <- message:
	default:
		that.logger.Warn("client send buffer is full, reply dropped", "gameID", gameClient.gameID, "action", action)
	}
}

type client struct {
	gameID string
	conn   *websocket.Conn
	send   chan []byte
}
