package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/service"
	"go.uber.org/zap"
)

const eventBuffer = 64

// Events streams the cart as server-sent events: the current cart first,
// then one "cart" event per dispatch. A client that falls eventBuffer
// events behind is disconnected rather than shown a gap; on reconnect it
// starts again from the current cart.
func (h *CartHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming_unsupported", "streaming unsupported")
		return
	}

	updates := make(chan domain.CartState, eventBuffer)
	overflow := make(chan struct{})
	overflowed := false

	unsubscribe := h.cart.Subscribe(func(state domain.CartState) {
		if overflowed {
			return
		}
		select {
		case updates <- state.Clone():
		default:
			overflowed = true
			close(overflow)
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, h.cart.GetCart()); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case state := <-updates:
			if err := writeEvent(w, service.Summarize(state)); err != nil {
				h.logger.Debug("cart event stream closed", zap.Error(err))
				return
			}
			flusher.Flush()
		case <-overflow:
			h.logger.Warn("cart event subscriber fell behind, disconnecting",
				zap.String("request_id", getRequestID(r.Context())))
			return
		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, s service.Summary) error {
	data, err := json.Marshal(toCartResponse(s))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: cart\ndata: %s\n\n", data)
	return err
}
