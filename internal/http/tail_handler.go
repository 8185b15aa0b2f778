package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/streams"

	"github.com/gorilla/websocket"
)

const (
	tailWriteWait  = 10 * time.Second
	tailPongWait   = 60 * time.Second
	tailPingPeriod = tailPongWait * 9 / 10
)

// TailSubscriptions is the subscriber side of the tail push channel.
type TailSubscriptions interface {
	Subscribe(ctx context.Context) (*streams.Subscriber, error)
	Unsubscribe(subscriber *streams.Subscriber)
}

type tailHandler struct {
	subscriptions TailSubscriptions
	upgrader      websocket.Upgrader
}

func NewTailHandler(subscriptions TailSubscriptions) AppHttpHandler {
	return &tailHandler{
		subscriptions: subscriptions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The dashboard is served from another origin during development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades GET /api/tail to a websocket and streams every tail batch as one text message.
func (h *tailHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	subscriber, err := h.subscriptions.Subscribe(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return errTailUnavailable(err)
	}
	defer h.subscriptions.Unsubscribe(subscriber)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied to the client.
		loggers.Ctx(ctx).Debug().Err(err).Msg("websocket upgrade failed")
		return nil
	}
	defer conn.Close()

	metricTailConnections.Inc()
	defer metricTailConnections.Dec()

	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSubscriberID, subscriber.ID()).Logger()
	logger.Info().Msg("tail subscriber connected")

	go h.readPump(conn, cancel)
	h.writePump(ctx, conn, subscriber, &logger)

	logger.Info().Msg("tail subscriber disconnected")
	return nil
}

// readPump discards client messages and cancels the subscription once the connection closes.
func (h *tailHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(tailPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(tailPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *tailHandler) writePump(ctx context.Context, conn *websocket.Conn, subscriber *streams.Subscriber, logger *loggers.Logger) {
	ticker := time.NewTicker(tailPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case message, ok := <-subscriber.Messages():
			_ = conn.SetWriteDeadline(time.Now().Add(tailWriteWait))
			if !ok {
				// Dropped for falling behind, or the hub stopped.
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Debug().Err(err).Msg("tail write failed")
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(tailWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
