package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// DefaultKey names the persisted snapshot. Bump the version suffix instead of
// migrating data in place when the snapshot shape changes.
const DefaultKey = "cart-state-v1"

var (
	errNoCart       = errors.New("snapshot has no cart")
	errInvalidShape = errors.New("snapshot cart has invalid shape")
)

// snapshot is the persisted document. Only the cart slice is ever written;
// unknown top-level fields are ignored when reading.
type snapshot struct {
	Cart *domain.CartState `json:"cart"`
}

func encodeSnapshot(state domain.CartState) ([]byte, error) {
	if state.Items == nil {
		state.Items = []domain.LineItem{}
	}
	data, err := json.Marshal(snapshot{Cart: &state})
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot failed: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (domain.CartState, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.CartState{}, fmt.Errorf("unmarshal snapshot failed: %w", err)
	}
	if s.Cart == nil {
		return domain.CartState{}, errNoCart
	}
	if err := validate(*s.Cart); err != nil {
		return domain.CartState{}, err
	}
	state := *s.Cart
	if state.Items == nil {
		state.Items = []domain.LineItem{}
	}
	return state, nil
}

// validate rejects carts the reducer could never have produced. An empty
// book id is a valid key for the reducer, so it is accepted here too.
func validate(state domain.CartState) error {
	seen := make(map[string]struct{}, len(state.Items))
	for _, item := range state.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %q has quantity %d", errInvalidShape, item.Book.ID, item.Quantity)
		}
		if _, dup := seen[item.Book.ID]; dup {
			return fmt.Errorf("%w: duplicate item %q", errInvalidShape, item.Book.ID)
		}
		seen[item.Book.ID] = struct{}{}
	}
	return nil
}
