package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/vp-garments/storefront/internal/domain/model"
	apperrors "github.com/vp-garments/storefront/internal/errors"
)

// Cart renders the signed-in user's cart.
// GET /cart.
func (h *UIHandlers) Cart(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Your Cart", PageTitle: "Your Cart", CurrentPage: PageCart},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Items"] = model.Cart{}
			data["Summary"] = model.OrderSummary{}
			data["Empty"] = true
			cart, err := h.CartSvc.Fetch(ctx, TokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["Items"] = cart
			data["Summary"] = cart.Summary()
			data["Empty"] = len(cart) == 0
			return nil
		},
	})
}

// UpdateCartItem changes a line quantity. The upstream add endpoint upserts,
// so a quantity change is just another add.
// POST /cart/items/{id}.
func (h *UIHandlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	quantity, convErr := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity")))
	if convErr != nil {
		quantity = 0
	}

	err := h.CartSvc.Add(r.Context(), TokenFromContext(r.Context()), productID, quantity)
	switch {
	case err == nil:
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	case apperrors.IsValidation(err):
		h.cartWithError(w, r, validationMessage(err))
	default:
		h.logger().ErrorContext(r.Context(), "cart update failed", "product_id", productID, "error", err)
		h.cartWithError(w, r, "The cart could not be updated. Please try again.")
	}
}

// RemoveCartItem deletes a cart line.
// POST /cart/items/{id}/delete.
func (h *UIHandlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if err := h.CartSvc.Remove(r.Context(), TokenFromContext(r.Context()), productID); err != nil {
		h.logger().ErrorContext(r.Context(), "cart remove failed", "product_id", productID, "error", err)
		h.cartWithError(w, r, "The item could not be removed. Please try again.")
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// cartWithError re-renders the cart page with an error banner, keeping the
// current upstream cart contents visible.
func (h *UIHandlers) cartWithError(w http.ResponseWriter, r *http.Request, message string) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Your Cart",
		PageTitle:   "Your Cart",
		CurrentPage: PageCart,
	}).WithError(message).Build()

	cart, err := h.CartSvc.Fetch(r.Context(), TokenFromContext(r.Context()))
	if err != nil {
		h.logger().ErrorContext(r.Context(), "cart fetch failed", "error", err)
	}
	data["Items"] = cart
	data["Summary"] = cart.Summary()
	data["Empty"] = len(cart) == 0

	h.RenderPageStatus(w, r, http.StatusUnprocessableEntity, data)
}
