package cart

import "github.com/fjod/go_cart/storefront/internal/domain"

// Action is a cart transition. The set of actions is closed: only the types
// in this file implement it.
type Action interface {
	Kind() string
	isAction()
}

type AddItem struct {
	Book domain.Book
}

type RemoveItem struct {
	BookID string
}

// UpdateQuantity sets the absolute quantity of a line item. Quantity <= 0 removes it.
type UpdateQuantity struct {
	BookID   string
	Quantity int
}

type ClearCart struct{}

type OpenCart struct{}

type CloseCart struct{}

type ToggleCart struct{}

func (AddItem) Kind() string        { return "cart/addItem" }
func (RemoveItem) Kind() string     { return "cart/removeItem" }
func (UpdateQuantity) Kind() string { return "cart/updateQuantity" }
func (ClearCart) Kind() string      { return "cart/clearCart" }
func (OpenCart) Kind() string       { return "cart/openCart" }
func (CloseCart) Kind() string      { return "cart/closeCart" }
func (ToggleCart) Kind() string     { return "cart/toggleCart" }

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
func (OpenCart) isAction()       {}
func (CloseCart) isAction()      {}
func (ToggleCart) isAction()     {}
