package cart

import (
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// Reduce returns the state that follows applying action to state.
// It has no side effects and never modifies the slice backing state.Items.
func Reduce(state domain.CartState, action Action) domain.CartState {
	switch a := action.(type) {
	case AddItem:
		return addItem(state, a.Book)
	case RemoveItem:
		return removeItem(state, a.BookID)
	case UpdateQuantity:
		return updateQuantity(state, a.BookID, a.Quantity)
	case ClearCart:
		return domain.CartState{Items: []domain.LineItem{}, IsOpen: state.IsOpen}
	case OpenCart:
		return withOpen(state, true)
	case CloseCart:
		return withOpen(state, false)
	case ToggleCart:
		return withOpen(state, !state.IsOpen)
	default:
		// unreachable outside this package: Action is sealed
		panic(fmt.Sprintf("cart: unhandled action %T", action))
	}
}

func addItem(state domain.CartState, book domain.Book) domain.CartState {
	next := state.Clone()
	if i := next.IndexOf(book.ID); i >= 0 {
		next.Items[i].Quantity++
		return next
	}
	next.Items = append(next.Items, domain.LineItem{Book: book, Quantity: 1})
	return next
}

func removeItem(state domain.CartState, bookID string) domain.CartState {
	items := make([]domain.LineItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.Book.ID != bookID {
			items = append(items, item)
		}
	}
	return domain.CartState{Items: items, IsOpen: state.IsOpen}
}

func updateQuantity(state domain.CartState, bookID string, quantity int) domain.CartState {
	i := state.IndexOf(bookID)
	if i < 0 {
		return state.Clone()
	}
	if quantity <= 0 {
		return removeItem(state, bookID)
	}
	next := state.Clone()
	next.Items[i].Quantity = quantity
	return next
}

func withOpen(state domain.CartState, open bool) domain.CartState {
	next := state.Clone()
	next.IsOpen = open
	return next
}
