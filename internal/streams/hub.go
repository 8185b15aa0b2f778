package streams

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"log-viewer/internal/events"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/shared/ulid"
)

const defaultSubscriberBuffer = 64

var ErrHubClosed = errors.New("tail hub closed")

//go:generate mockgen -source=hub.go -destination=./mocks/hub_mock.go -package=mocks
type Broadcaster interface {
	// Broadcast delivers event to every current subscriber.
	Broadcast(ctx context.Context, event *events.TailBatchEvent) error
}

// Subscriber receives every broadcast tail batch as encoded JSON. Its channel is closed when it
// unsubscribes, falls behind, or the hub stops.
type Subscriber struct {
	id   string
	send chan []byte
}

func (s *Subscriber) ID() string { return s.id }

func (s *Subscriber) Messages() <-chan []byte { return s.send }

// Hub fans tail batches out to push subscribers. All subscriber bookkeeping happens on the
// goroutine running Run; a subscriber whose buffer is full is dropped rather than waited on.
type Hub struct {
	subscribers      map[*Subscriber]struct{}
	register         chan *Subscriber
	unregister       chan *Subscriber
	broadcast        chan []byte
	done             chan struct{}
	count            atomic.Int64
	subscriberBuffer int
	logger           loggers.Logger
}

func NewHub(subscriberBuffer int, logger loggers.Logger) *Hub {
	if subscriberBuffer <= 0 {
		subscriberBuffer = defaultSubscriberBuffer
	}
	return &Hub{
		subscribers:      make(map[*Subscriber]struct{}),
		register:         make(chan *Subscriber),
		unregister:       make(chan *Subscriber),
		broadcast:        make(chan []byte),
		done:             make(chan struct{}),
		subscriberBuffer: subscriberBuffer,
		logger:           logger,
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes every subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return

		case subscriber := <-h.register:
			h.subscribers[subscriber] = struct{}{}
			h.setCount()
			h.logger.Debug().Str(loggers.FieldSubscriberID, subscriber.id).Msgf("subscriber connected: %d active", len(h.subscribers))

		case subscriber := <-h.unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				h.remove(subscriber)
				h.logger.Debug().Str(loggers.FieldSubscriberID, subscriber.id).Msgf("subscriber disconnected: %d active", len(h.subscribers))
			}

		case message := <-h.broadcast:
			for subscriber := range h.subscribers {
				select {
				case subscriber.send <- message:
				default:
					h.remove(subscriber)
					metricSubscriberDroppedTotal.WithLabelValues().Inc()
					h.logger.Warn().Str(loggers.FieldSubscriberID, subscriber.id).Msg("dropping slow subscriber")
				}
			}
		}
	}
}

func (h *Hub) Subscribe(ctx context.Context) (*Subscriber, error) {
	subscriber := &Subscriber{
		id:   ulid.NewULID(),
		send: make(chan []byte, h.subscriberBuffer),
	}
	select {
	case h.register <- subscriber:
		return subscriber, nil
	case <-h.done:
		return nil, ErrHubClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) Unsubscribe(subscriber *Subscriber) {
	select {
	case h.unregister <- subscriber:
	case <-h.done:
	}
}

func (h *Hub) Broadcast(ctx context.Context, event *events.TailBatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) SubscriberCount() int {
	return int(h.count.Load())
}

func (h *Hub) remove(subscriber *Subscriber) {
	delete(h.subscribers, subscriber)
	close(subscriber.send)
	h.setCount()
}

func (h *Hub) closeAll() {
	for subscriber := range h.subscribers {
		h.remove(subscriber)
	}
}

func (h *Hub) setCount() {
	h.count.Store(int64(len(h.subscribers)))
	metricSubscribers.Set(float64(len(h.subscribers)))
}
