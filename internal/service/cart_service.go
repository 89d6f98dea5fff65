package service

import (
	"sync"
	"time"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/store"
	"go.uber.org/zap"
)

// DefaultOpenDelay is how long AddToCart waits before opening the cart panel
const DefaultOpenDelay = 500 * time.Millisecond

// CartStore is the part of the store the service needs
type CartStore interface {
	Dispatch(action cart.Action) domain.CartState
	GetState() domain.CartState
	Subscribe(listener store.Listener) store.Unsubscribe
}

// Summary is the cart plus the totals every surface shows
type Summary struct {
	State         domain.CartState
	DistinctItems int
	TotalQuantity int
	Subtotal      string
}

// CartService holds the presentation policies of the storefront surfaces.
// None of them live in the store: the store only knows actions.
type CartService struct {
	store     CartStore
	logger    *zap.Logger
	openDelay time.Duration

	mu       sync.Mutex
	timers   map[*time.Timer]struct{}
	closed   bool
	inFlight sync.WaitGroup
}

func NewCartService(s CartStore, logger *zap.Logger, openDelay time.Duration) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		store:     s,
		logger:    logger,
		openDelay: openDelay,
		timers:    make(map[*time.Timer]struct{}),
	}
}

// AddToCart adds quantity copies of book, then opens the cart panel once
// after the open delay. Quantities below one add a single copy.
func (s *CartService) AddToCart(book domain.Book, quantity int) domain.CartState {
	if quantity < 1 {
		quantity = 1
	}

	var state domain.CartState
	for i := 0; i < quantity; i++ {
		state = s.dispatch(cart.AddItem{Book: book})
	}

	s.scheduleOpen()
	return state
}

func (s *CartService) scheduleOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.inFlight.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(s.openDelay, func() {
		defer s.inFlight.Done()

		s.mu.Lock()
		_, pending := s.timers[timer]
		delete(s.timers, timer)
		s.mu.Unlock()

		if pending {
			s.dispatch(cart.OpenCart{})
		}
	})
	s.timers[timer] = struct{}{}
}

func (s *CartService) RemoveItem(bookID string) domain.CartState {
	return s.dispatch(cart.RemoveItem{BookID: bookID})
}

func (s *CartService) UpdateQuantity(bookID string, quantity int) domain.CartState {
	return s.dispatch(cart.UpdateQuantity{BookID: bookID, Quantity: quantity})
}

func (s *CartService) ClearCart() domain.CartState {
	return s.dispatch(cart.ClearCart{})
}

func (s *CartService) OpenCart() domain.CartState {
	return s.dispatch(cart.OpenCart{})
}

func (s *CartService) CloseCart() domain.CartState {
	return s.dispatch(cart.CloseCart{})
}

func (s *CartService) ToggleCart() domain.CartState {
	return s.dispatch(cart.ToggleCart{})
}

func (s *CartService) GetCart() Summary {
	return Summarize(s.store.GetState())
}

// Subscribe forwards to the store
func (s *CartService) Subscribe(listener store.Listener) store.Unsubscribe {
	return s.store.Subscribe(listener)
}

// Close cancels pending open timers and waits for a callback that has
// already fired, so no dispatch happens after Close returns.
func (s *CartService) Close() {
	s.mu.Lock()
	s.closed = true
	for timer := range s.timers {
		if timer.Stop() {
			s.inFlight.Done()
		}
		delete(s.timers, timer)
	}
	s.mu.Unlock()

	s.inFlight.Wait()
}

func (s *CartService) dispatch(action cart.Action) domain.CartState {
	state := s.store.Dispatch(action)
	s.logger.Debug("cart action dispatched",
		zap.String("action", action.Kind()),
		zap.Int("items", len(state.Items)),
		zap.Bool("is_open", state.IsOpen))
	return state
}

func Summarize(state domain.CartState) Summary {
	return Summary{
		State:         state,
		DistinctItems: cart.DistinctItems(state),
		TotalQuantity: cart.TotalQuantity(state),
		Subtotal:      cart.FormatPrice(cart.Subtotal(state)),
	}
}
