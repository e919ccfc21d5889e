package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vp-garments/storefront/internal/adapters/shopapi"
	"github.com/vp-garments/storefront/internal/domain/model"
	"github.com/vp-garments/storefront/internal/ports"
	"github.com/vp-garments/storefront/internal/service"
)

// CatalogService is a minimal interface for UI needs.
type CatalogService interface {
	List(ctx context.Context, token string, filter model.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, token, id string) (model.Product, error)
	Create(ctx context.Context, token string, in model.ProductInput) (model.Product, error)
	Update(ctx context.Context, token, id string, in model.ProductInput) (model.Product, error)
	Delete(ctx context.Context, token, id string) error
}

// CartUIService is a minimal interface for UI needs.
type CartUIService interface {
	Fetch(ctx context.Context, token string) (model.Cart, error)
	Add(ctx context.Context, token, productID string, quantity int) error
	Remove(ctx context.Context, token, productID string) error
}

// ProfileUIService is a minimal interface for UI needs.
type ProfileUIService interface {
	Overview(ctx context.Context, token string) (service.ProfileOverview, error)
	Update(ctx context.Context, token string, in ports.ProfileUpdate) error
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ CatalogService   = (*service.CatalogService)(nil)
	_ CartUIService    = (*service.CartService)(nil)
	_ ProfileUIService = (*service.ProfileService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T          *TemplateRenderer
	Catalog    CatalogService
	CartSvc    CartUIService
	ProfileSvc ProfileUIService
	IsDev      bool
	Logger     *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().ErrorContext(r.Context(), "page fetch failed",
				"page", spec.Meta.CurrentPage, "error", err)
			markPageError(data)
		}
	}
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.renderFailure(w, r, err)
	}
}

// RenderPage renders a prebuilt data map as a full page.
func (h *UIHandlers) RenderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.renderFailure(w, r, err)
	}
}

// RenderPageStatus renders a prebuilt data map with an explicit status code.
func (h *UIHandlers) RenderPageStatus(w http.ResponseWriter, r *http.Request, code int, data map[string]any) {
	if err := h.T.RenderFullStatus(w, r, code, data); err != nil {
		h.renderFailure(w, r, err)
	}
}

// NotFound renders the 404 page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.ErrorPage(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}

// ErrorPage renders the shared error template with the given status.
func (h *UIHandlers) ErrorPage(w http.ResponseWriter, r *http.Request, code int, message string) {
	data := basePageData(r, PageMeta{Title: http.StatusText(code), PageTitle: http.StatusText(code)})
	data["StatusCode"] = code
	data["ErrorMessage"] = message

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := h.T.RenderError(w, r, data); err != nil {
		// Headers already sent; nothing left but a plain body.
		_, _ = w.Write([]byte(message))
	}
}

// renderFailure reports template execution errors without leaking details
// outside dev mode.
func (h *UIHandlers) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().Error("template rendering failed",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
	)
	if h.IsDev {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func markPageError(data map[string]any) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = "An unexpected error occurred. Please try again."
}

// upstreamMessage extracts the display message carried by an upstream API
// error, falling back when the failure was local or opaque.
func upstreamMessage(err error, fallback string) string {
	var reqErr *shopapi.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
