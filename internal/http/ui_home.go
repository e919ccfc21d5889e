package httpx

import (
	"context"
	"net/http"

	"github.com/vp-garments/storefront/internal/domain/model"
)

const featuredProductCount = 8

// Home renders the storefront landing page with a featured slice of the catalog.
// GET /.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "VP Garments", PageTitle: "Welcome", CurrentPage: PageHome},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Featured"] = []model.Product{}
			products, err := h.Catalog.List(ctx, TokenFromContext(ctx), model.ProductFilter{})
			if err != nil {
				return err
			}
			if len(products) > featuredProductCount {
				products = products[:featuredProductCount]
			}
			data["Featured"] = products
			return nil
		},
	})
}
