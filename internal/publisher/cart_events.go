package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	Topic     = "storefront-cart-events"
	EventType = "cart.changed"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type CartChangedItem struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type CartChangedEvent struct {
	EventID       string            `json:"event_id"`
	Sequence      uint64            `json:"sequence"`
	Items         []CartChangedItem `json:"items"`
	DistinctItems int               `json:"distinct_items"`
	TotalQuantity int               `json:"total_quantity"`
	Subtotal      string            `json:"subtotal"`
	IsOpen        bool              `json:"is_open"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// CartEventPublisher is a store listener that forwards every cart transition
// to Kafka. OnChange only enqueues; Run does the network writes, so a slow
// broker never holds up a dispatch.
type CartEventPublisher struct {
	writer  messageWriter
	logger  *zap.Logger
	events  chan CartChangedEvent
	timeout time.Duration
	seq     uint64
}

func NewCartEventPublisher(logger *zap.Logger, brokers ...string) *CartEventPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return newCartEventPublisher(w, logger, 256)
}

func newCartEventPublisher(w messageWriter, logger *zap.Logger, buffer int) *CartEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartEventPublisher{
		writer:  w,
		logger:  logger,
		events:  make(chan CartChangedEvent, buffer),
		timeout: 5 * time.Second,
	}
}

// OnChange has the store.Listener signature. Dispatches are serialized, so
// the sequence counter needs no lock.
func (p *CartEventPublisher) OnChange(state domain.CartState) {
	p.seq++
	event := newCartChangedEvent(p.seq, state)

	select {
	case p.events <- event:
	default:
		p.logger.Warn("cart event buffer full, dropping event",
			zap.String("event_id", event.EventID),
			zap.Uint64("sequence", event.Sequence))
	}
}

// Run publishes queued events until ctx is cancelled
func (p *CartEventPublisher) Run(ctx context.Context) {
	for {
		select {
		case event := <-p.events:
			if err := p.publish(ctx, event); err != nil {
				p.logger.Error("failed to publish cart event",
					zap.String("event_id", event.EventID),
					zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (p *CartEventPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("error closing kafka writer", zap.Error(err))
	}
}

func (p *CartEventPublisher) publish(ctx context.Context, event CartChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cart event failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventType)},
		},
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}
	return nil
}

func newCartChangedEvent(seq uint64, state domain.CartState) CartChangedEvent {
	items := make([]CartChangedItem, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, CartChangedItem{BookID: item.Book.ID, Quantity: item.Quantity})
	}
	return CartChangedEvent{
		EventID:       uuid.New().String(),
		Sequence:      seq,
		Items:         items,
		DistinctItems: cart.DistinctItems(state),
		TotalQuantity: cart.TotalQuantity(state),
		Subtotal:      cart.FormatPrice(cart.Subtotal(state)),
		IsOpen:        state.IsOpen,
		OccurredAt:    time.Now().UTC(),
	}
}
