package cart

import (
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookA = domain.Book{ID: "a", Title: "Dune", Author: "Frank Herbert", Price: 20, Discount: 0.25}
	bookB = domain.Book{ID: "b", Title: "Emma", Author: "Jane Austen", Price: 10}
	bookC = domain.Book{ID: "c", Title: "Ulysses", Author: "James Joyce", Price: 12.5, Discount: 0.1}
)

func apply(state domain.CartState, actions ...Action) domain.CartState {
	for _, a := range actions {
		state = Reduce(state, a)
	}
	return state
}

func ids(state domain.CartState) []string {
	out := make([]string, 0, len(state.Items))
	for _, item := range state.Items {
		out = append(out, item.Book.ID)
	}
	return out
}

func TestAddItem_NewItemAppended(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookB})

	require.Len(t, state.Items, 2)
	assert.Equal(t, []string{"a", "b"}, ids(state))
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, bookA, state.Items[0].Book)
}

func TestAddItem_SameBookAccumulates(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookA})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestAddItem_DoesNotChangeVisibility(t *testing.T) {
	state := apply(domain.EmptyCart(), OpenCart{}, AddItem{Book: bookA})
	assert.True(t, state.IsOpen)

	state = apply(domain.EmptyCart(), AddItem{Book: bookA})
	assert.False(t, state.IsOpen)
}

func TestRemoveItem_PreservesOrder(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookB}, AddItem{Book: bookC})

	state = Reduce(state, RemoveItem{BookID: "b"})

	assert.Equal(t, []string{"a", "c"}, ids(state))
}

func TestRemoveItem_Idempotent(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookB})

	once := Reduce(state, RemoveItem{BookID: "a"})
	twice := Reduce(once, RemoveItem{BookID: "a"})

	assert.Equal(t, once, twice)
}

func TestRemoveItem_UnknownIsNoop(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA})

	next := Reduce(state, RemoveItem{BookID: "missing"})

	assert.Equal(t, state, next)
}

func TestUpdateQuantity_AbsoluteSet(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookA})

	state = Reduce(state, UpdateQuantity{BookID: "a", Quantity: 7})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 7, state.Items[0].Quantity)
}

func TestUpdateQuantity_NoUpperBound(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA})

	state = Reduce(state, UpdateQuantity{BookID: "a", Quantity: 1_000_000})

	assert.Equal(t, 1_000_000, state.Items[0].Quantity)
}

func TestUpdateQuantity_FloorRemoves(t *testing.T) {
	for _, q := range []int{0, -1, -100} {
		state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookB})

		state = Reduce(state, UpdateQuantity{BookID: "a", Quantity: q})

		assert.Equal(t, -1, state.IndexOf("a"), "quantity %d", q)
		assert.Equal(t, []string{"b"}, ids(state))
	}
}

func TestUpdateQuantity_UnknownIsNoop(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA})

	next := Reduce(state, UpdateQuantity{BookID: "missing", Quantity: 3})

	assert.Equal(t, state, next)
}

func TestOrderPreservedAcrossUpdates(t *testing.T) {
	state := apply(domain.EmptyCart(),
		AddItem{Book: bookA},
		AddItem{Book: bookB},
		UpdateQuantity{BookID: "a", Quantity: 4},
		AddItem{Book: bookA},
	)

	assert.Equal(t, []string{"a", "b"}, ids(state))
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestClearCart_KeepsVisibility(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, OpenCart{}, ClearCart{})

	assert.Empty(t, state.Items)
	assert.NotNil(t, state.Items)
	assert.True(t, state.IsOpen)
}

func TestVisibilityTransitions(t *testing.T) {
	state := apply(domain.EmptyCart(), OpenCart{}, ToggleCart{})
	assert.False(t, state.IsOpen)

	state = apply(domain.EmptyCart(), CloseCart{})
	assert.False(t, state.IsOpen)

	state = apply(domain.EmptyCart(), ToggleCart{})
	assert.True(t, state.IsOpen)

	state = apply(state, OpenCart{})
	assert.True(t, state.IsOpen)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := apply(domain.EmptyCart(), AddItem{Book: bookA}, AddItem{Book: bookB})
	before := state.Clone()

	_ = Reduce(state, AddItem{Book: bookA})
	_ = Reduce(state, UpdateQuantity{BookID: "b", Quantity: 9})
	_ = Reduce(state, RemoveItem{BookID: "a"})
	_ = Reduce(state, ToggleCart{})
	_ = Reduce(state, ClearCart{})

	assert.Equal(t, before, state)
}

func TestActionKinds(t *testing.T) {
	kinds := map[string]Action{
		"cart/addItem":        AddItem{},
		"cart/removeItem":     RemoveItem{},
		"cart/updateQuantity": UpdateQuantity{},
		"cart/clearCart":      ClearCart{},
		"cart/openCart":       OpenCart{},
		"cart/closeCart":      CloseCart{},
		"cart/toggleCart":     ToggleCart{},
	}
	for want, action := range kinds {
		assert.Equal(t, want, action.Kind())
	}
}
