package httpx

import (
	"net/http"

	"github.com/vp-garments/storefront/internal/ports"
)

// Profile renders the profile page: editable fields, order history, and a
// cart summary, fetched concurrently.
// GET /profile.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, profileMeta()).
		With("Saved", r.URL.Query().Get("saved") == "1").
		With("CartCount", 0).
		Build()

	overview, err := h.ProfileSvc.Overview(r.Context(), TokenFromContext(r.Context()))
	if err != nil {
		h.logger().ErrorContext(r.Context(), "profile fetch failed", "error", err)
		markPageError(data)
	} else {
		data["Profile"] = overview.Profile
		data["Orders"] = overview.Profile.Orders
		data["CartCount"] = overview.CartCount
	}

	h.RenderPage(w, r, data)
}

// UpdateProfile saves the editable profile fields.
// POST /profile.
func (h *UIHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	form, errs := parseProfileForm(r)
	if len(errs) > 0 {
		h.rerenderProfile(w, r, form, errs, "")
		return
	}

	err := h.ProfileSvc.Update(r.Context(), TokenFromContext(r.Context()), ports.ProfileUpdate{
		Name:  form.Name,
		Email: form.Email,
	})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "profile update failed", "error", err)
		h.rerenderProfile(w, r, form, nil, upstreamMessage(err, "Your profile could not be saved. Please try again."))
		return
	}

	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}

func (h *UIHandlers) rerenderProfile(
	w http.ResponseWriter,
	r *http.Request,
	form profileForm,
	errs map[string]string,
	message string,
) {
	b := NewTemplateData(r, profileMeta()).
		WithFieldErrors(errs).
		With("FormName", form.Name).
		With("FormEmail", form.Email).
		With("CartCount", 0)
	if message != "" {
		b.WithError(message)
	}

	data := b.Build()
	overview, err := h.ProfileSvc.Overview(r.Context(), TokenFromContext(r.Context()))
	if err == nil {
		data["Profile"] = overview.Profile
		data["Orders"] = overview.Profile.Orders
		data["CartCount"] = overview.CartCount
	}

	h.RenderPageStatus(w, r, http.StatusUnprocessableEntity, data)
}

func profileMeta() PageMeta {
	return PageMeta{Title: "Your Profile", PageTitle: "Your Profile", CurrentPage: PageProfile}
}
