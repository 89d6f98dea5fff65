package domain

type LineItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

type CartState struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

// EmptyCart is the state used when nothing usable was persisted
func EmptyCart() CartState {
	return CartState{
		Items:  []LineItem{},
		IsOpen: false,
	}
}

// Clone copies the item slice so the result shares no backing array with s
func (s CartState) Clone() CartState {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return CartState{Items: items, IsOpen: s.IsOpen}
}

// IndexOf returns the position of the line item for bookID, or -1
func (s CartState) IndexOf(bookID string) int {
	for i, item := range s.Items {
		if item.Book.ID == bookID {
			return i
		}
	}
	return -1
}
