package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/fjod/go_cart/storefront/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxAddQuantity bounds how many copies one add request may add at once.
// UpdateQuantity has no such bound.
const maxAddQuantity = 99

type CartService interface {
	AddToCart(book domain.Book, quantity int) domain.CartState
	RemoveItem(bookID string) domain.CartState
	UpdateQuantity(bookID string, quantity int) domain.CartState
	ClearCart() domain.CartState
	OpenCart() domain.CartState
	CloseCart() domain.CartState
	ToggleCart() domain.CartState
	GetCart() service.Summary
	Subscribe(listener store.Listener) store.Unsubscribe
}

type CartHandler struct {
	cart    CartService
	catalog Catalog
	logger  *zap.Logger
}

func NewCartHandler(cartService CartService, c Catalog, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{
		cart:    cartService,
		catalog: c,
		logger:  logger,
	}
}

type AddItemRequestDTO struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

type CartItemResponse struct {
	BookID     string `json:"book_id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	CoverImage string `json:"cover_image"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	DistinctItems int                `json:"distinct_items"`
	TotalQuantity int                `json:"total_quantity"`
	Subtotal      string             `json:"subtotal"`
	IsOpen        bool               `json:"is_open"`
}

type BadgeResponse struct {
	TotalQuantity int `json:"total_quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toCartResponse(h.cart.GetCart()))
}

func (h *CartHandler) GetBadge(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, BadgeResponse{TotalQuantity: h.cart.GetCart().TotalQuantity})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.BookID == "" {
		respondError(w, http.StatusBadRequest, "invalid_book_id", "book_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 || req.Quantity > maxAddQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", fmt.Sprintf("quantity must be between 1 and %d", maxAddQuantity))
		return
	}

	book, err := h.catalog.ByID(req.BookID)
	if errors.Is(err, catalog.ErrBookNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "book not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.logger.Info("adding to cart",
		zap.String("request_id", getRequestID(r.Context())),
		zap.String("book_id", book.ID),
		zap.Int("quantity", req.Quantity))

	state := h.cart.AddToCart(book, req.Quantity)
	respondJSON(w, http.StatusCreated, toCartResponse(service.Summarize(state)))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "book_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	state := h.cart.UpdateQuantity(bookID, *req.Quantity)
	respondJSON(w, http.StatusOK, toCartResponse(service.Summarize(state)))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	state := h.cart.RemoveItem(chi.URLParam(r, "book_id"))
	respondJSON(w, http.StatusOK, toCartResponse(service.Summarize(state)))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	state := h.cart.ClearCart()
	respondJSON(w, http.StatusOK, toCartResponse(service.Summarize(state)))
}

func (h *CartHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toCartResponse(service.Summarize(h.cart.OpenCart())))
}

func (h *CartHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toCartResponse(service.Summarize(h.cart.CloseCart())))
}

func (h *CartHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toCartResponse(service.Summarize(h.cart.ToggleCart())))
}

func toCartResponse(s service.Summary) CartResponse {
	items := make([]CartItemResponse, len(s.State.Items))
	for i, item := range s.State.Items {
		items[i] = CartItemResponse{
			BookID:     item.Book.ID,
			Slug:       catalog.Slugify(item.Book.Title),
			Title:      item.Book.Title,
			Author:     item.Book.Author,
			CoverImage: item.Book.CoverImage,
			UnitPrice:  cart.FormatPrice(decimal.NewFromFloat(item.Book.FinalPrice())),
			Quantity:   item.Quantity,
			LineTotal:  cart.FormatPrice(cart.LineTotal(item)),
		}
	}
	return CartResponse{
		Items:         items,
		DistinctItems: s.DistinctItems,
		TotalQuantity: s.TotalQuantity,
		Subtotal:      s.Subtotal,
		IsOpen:        s.State.IsOpen,
	}
}
