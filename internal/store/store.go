package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"go.uber.org/zap"
)

// Listener is called after every completed dispatch with the new state.
// The state is shared: listeners must treat it as read-only.
type Listener func(state domain.CartState)

// Unsubscribe removes a listener. Calling it more than once is harmless.
type Unsubscribe func()

type subscription struct {
	id       uint64
	listener Listener
}

// Store owns the current cart state. Every change goes through Dispatch,
// which runs the reducer, persists the cart and notifies listeners before
// returning. Dispatches are serialized; readers never see a partial update.
type Store struct {
	storage        storage.Storage
	key            string
	logger         *zap.Logger
	persistTimeout time.Duration

	dispatchMu sync.Mutex // one dispatch at a time

	mu        sync.RWMutex // guards state and listeners
	state     domain.CartState
	listeners []subscription
	nextID    uint64
}

type Option func(*Store)

// WithKey overrides the storage key of the snapshot
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithPersistTimeout bounds each storage read and write
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) { s.persistTimeout = d }
}

// New builds a store and loads its initial state from st. Any failure to
// read or parse the snapshot falls back to an empty cart.
func New(ctx context.Context, st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage:        st,
		key:            DefaultKey,
		logger:         zap.NewNop(),
		persistTimeout: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) domain.CartState {
	if s.storage == nil {
		return domain.EmptyCart()
	}

	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("cart snapshot unreadable, starting empty", zap.String("key", s.key), zap.Error(err))
		}
		return domain.EmptyCart()
	}

	state, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("cart snapshot rejected, starting empty", zap.String("key", s.key), zap.Error(err))
		// drop it so the next start does not log the same rejection
		if err := s.storage.Delete(ctx, s.key); err != nil {
			s.logger.Warn("cart snapshot delete failed", zap.String("key", s.key), zap.Error(err))
		}
		return domain.EmptyCart()
	}

	s.logger.Info("cart snapshot loaded",
		zap.String("key", s.key),
		zap.Int("items", len(state.Items)),
		zap.Bool("is_open", state.IsOpen))
	return state
}

// GetState returns the state produced by the most recent dispatch
func (s *Store) GetState() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dispatch applies action and returns the resulting state. Listeners run
// synchronously on the calling goroutine and must not call Dispatch.
func (s *Store) Dispatch(action cart.Action) domain.CartState {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next := cart.Reduce(s.state, action)
	s.state = next
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.persist(next)

	// listeners registered or removed during notification take effect from
	// the next dispatch
	for _, sub := range listeners {
		sub.listener(next)
	}

	return next.Clone()
}

// persist writes the cart slice. Failures are logged and dropped: the
// in-memory state is authoritative for the session.
func (s *Store) persist(state domain.CartState) {
	if s.storage == nil {
		return
	}

	data, err := encodeSnapshot(state)
	if err != nil {
		s.logger.Error("cart snapshot encode failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("cart snapshot write failed", zap.String("key", s.key), zap.Error(err))
	}
}

// Subscribe registers listener for every following dispatch
func (s *Store) Subscribe(listener Listener) Unsubscribe {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, listener: listener})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.listeners {
		if sub.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
