package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vp-garments/storefront/internal/adapters/shopapi"
	"github.com/vp-garments/storefront/internal/domain/model"
	apperrors "github.com/vp-garments/storefront/internal/errors"
)

// Products renders the catalog list with the active filters applied.
// GET /products?category=&size=&color=&min_price=&max_price=.
func (h *UIHandlers) Products(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	data := NewTemplateData(r, PageMeta{
		Title:       "Products",
		PageTitle:   "Products",
		CurrentPage: PageProducts,
	}).
		With("FilterCategory", filter.Category).
		With("FilterSizes", strings.Join(filter.Sizes, ",")).
		With("FilterColors", strings.Join(filter.Colors, ",")).
		With("FilterMinPrice", r.URL.Query().Get("min_price")).
		With("FilterMaxPrice", r.URL.Query().Get("max_price")).
		Build()

	products, err := h.Catalog.List(r.Context(), TokenFromContext(r.Context()), filter)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "product list failed", "error", err)
		markPageError(data)
	}
	data["Products"] = products
	data["Filtered"] = !filter.IsZero()

	h.RenderPage(w, r, data)
}

// ProductDetails renders a single product page.
// GET /products/{id}.
func (h *UIHandlers) ProductDetails(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	product, err := h.Catalog.Get(r.Context(), TokenFromContext(r.Context()), id)
	if err != nil {
		if isUpstreamNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.logger().ErrorContext(r.Context(), "product fetch failed", "id", id, "error", err)
		h.ErrorPage(w, r, http.StatusBadGateway, "The product could not be loaded. Please try again.")
		return
	}

	h.RenderPage(w, r, h.productPageData(r, product, ""))
}

// AddToCart adds a product to the signed-in user's cart.
// POST /cart/items.
func (h *UIHandlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	quantity, convErr := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity")))
	if convErr != nil {
		quantity = 0
	}

	err := h.CartSvc.Add(r.Context(), TokenFromContext(r.Context()), productID, quantity)
	if err == nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if apperrors.IsValidation(err) {
		// Re-render the product page with the field message inline.
		product, getErr := h.Catalog.Get(r.Context(), TokenFromContext(r.Context()), productID)
		if getErr != nil {
			h.NotFound(w, r)
			return
		}
		h.RenderPageStatus(w, r, http.StatusUnprocessableEntity,
			h.productPageData(r, product, validationMessage(err)))
		return
	}

	h.logger().ErrorContext(r.Context(), "add to cart failed", "product_id", productID, "error", err)
	h.ErrorPage(w, r, http.StatusBadGateway, "The item could not be added to your cart. Please try again.")
}

func (h *UIHandlers) productPageData(r *http.Request, product model.Product, errMsg string) map[string]any {
	b := NewTemplateData(r, PageMeta{
		Title:       product.Name,
		PageTitle:   product.Name,
		CurrentPage: PageProduct,
	}).With("Product", product)
	if errMsg != "" {
		b.WithError(errMsg)
	}
	return b.Build()
}

// filterFromQuery maps the list page query parameters onto the upstream
// filter shape. Sizes and colors accept comma-separated values.
func filterFromQuery(r *http.Request) model.ProductFilter {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Sizes:    splitList(q.Get("size")),
		Colors:   splitList(q.Get("color")),
	}
	if v := parsePrice(q.Get("min_price")); v != nil {
		filter.MinPrice = v
	}
	if v := parsePrice(q.Get("max_price")); v != nil {
		filter.MaxPrice = v
	}
	return filter
}

// parsePrice parses a non-negative price bound, ignoring junk input.
func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// validationMessage extracts the display message from a validation error.
func validationMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Please check your input and try again."
}

// isUpstreamNotFound reports whether the error is a 404 from the shop API.
func isUpstreamNotFound(err error) bool {
	var reqErr *shopapi.RequestError
	return errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound
}
