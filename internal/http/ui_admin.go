package httpx

import (
	"net/http"

	"github.com/vp-garments/storefront/internal/domain/model"
)

// AdminDashboard renders the product management table.
// GET /admin.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, adminMeta("Admin Dashboard")).
		With("Created", r.URL.Query().Get("created") == "1").
		With("Updated", r.URL.Query().Get("updated") == "1").
		With("Deleted", r.URL.Query().Get("deleted") == "1").
		Build()

	products, err := h.Catalog.List(r.Context(), TokenFromContext(r.Context()), model.ProductFilter{})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "admin product list failed", "error", err)
		markPageError(data)
	}
	data["Products"] = products

	h.RenderPage(w, r, data)
}

// AdminProductNew renders the empty product form.
// GET /admin/products/new.
func (h *UIHandlers) AdminProductNew(w http.ResponseWriter, r *http.Request) {
	data := h.productFormData(r, productFormFrame{Mode: FormModeCreate})
	h.RenderPage(w, r, data)
}

// AdminProductCreate validates and creates a product upstream.
// POST /admin/products.
func (h *UIHandlers) AdminProductCreate(w http.ResponseWriter, r *http.Request) {
	in, errs := parseProductForm(r)
	if len(errs) > 0 {
		data := h.productFormData(r, productFormFrame{Mode: FormModeCreate, Input: in, Errs: errs})
		h.RenderPageStatus(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	if _, err := h.Catalog.Create(r.Context(), TokenFromContext(r.Context()), in); err != nil {
		h.logger().ErrorContext(r.Context(), "product create failed", "error", err)
		data := h.productFormData(r, productFormFrame{
			Mode:    FormModeCreate,
			Input:   in,
			Message: upstreamMessage(err, "The product could not be created. Please try again."),
		})
		h.RenderPageStatus(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	http.Redirect(w, r, "/admin?created=1", http.StatusSeeOther)
}

// AdminProductEdit renders the product form prefilled from the upstream record.
// GET /admin/products/{id}/edit.
func (h *UIHandlers) AdminProductEdit(w http.ResponseWriter, r *http.Request) {
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

	in := model.ProductInput{
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Size:        product.Size,
		Color:       product.Color,
		Description: product.Description,
		ImageURL:    product.ImageURL,
	}
	data := h.productFormData(r, productFormFrame{Mode: FormModeEdit, ID: id, Input: in})
	h.RenderPage(w, r, data)
}

// AdminProductUpdate validates and saves a product upstream.
// POST /admin/products/{id}.
func (h *UIHandlers) AdminProductUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	in, errs := parseProductForm(r)
	if len(errs) > 0 {
		data := h.productFormData(r, productFormFrame{Mode: FormModeEdit, ID: id, Input: in, Errs: errs})
		h.RenderPageStatus(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	if _, err := h.Catalog.Update(r.Context(), TokenFromContext(r.Context()), id, in); err != nil {
		h.logger().ErrorContext(r.Context(), "product update failed", "id", id, "error", err)
		data := h.productFormData(r, productFormFrame{
			Mode:    FormModeEdit,
			ID:      id,
			Input:   in,
			Message: upstreamMessage(err, "The product could not be saved. Please try again."),
		})
		h.RenderPageStatus(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	http.Redirect(w, r, "/admin?updated=1", http.StatusSeeOther)
}

// AdminProductDelete removes a product upstream.
// POST /admin/products/{id}/delete.
func (h *UIHandlers) AdminProductDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Catalog.Delete(r.Context(), TokenFromContext(r.Context()), id); err != nil {
		if isUpstreamNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.logger().ErrorContext(r.Context(), "product delete failed", "id", id, "error", err)
		h.ErrorPage(w, r, http.StatusBadGateway, "The product could not be deleted. Please try again.")
		return
	}
	http.Redirect(w, r, "/admin?deleted=1", http.StatusSeeOther)
}

// productFormFrame groups values for rendering the admin product form.
type productFormFrame struct {
	Mode    FormMode
	ID      string
	Input   model.ProductInput
	Errs    map[string]string
	Message string
}

func (h *UIHandlers) productFormData(r *http.Request, frame productFormFrame) map[string]any {
	title := "New Product"
	if frame.Mode == FormModeEdit {
		title = "Edit Product"
	}

	b := NewTemplateData(r, adminMeta(title)).
		With("Mode", string(frame.Mode)).
		With("ProductID", frame.ID).
		With("Input", frame.Input).
		WithFieldErrors(frame.Errs)
	if frame.Message != "" {
		b.WithError(frame.Message)
	}

	data := b.Build()
	data["CurrentPage"] = PageAdminProduct
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	return data
}

func adminMeta(title string) PageMeta {
	return PageMeta{Title: title, PageTitle: title, CurrentPage: PageAdmin}
}
