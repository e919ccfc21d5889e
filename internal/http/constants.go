package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageHome         = "home"
	PageProducts     = "products"
	PageProduct      = "product"
	PageCart         = "cart"
	PageLogin        = "login"
	PageSignup       = "signup"
	PageProfile      = "profile"
	PageAdmin        = "admin"
	PageAdminProduct = "admin-product-form"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:         "home-content",
	PageProducts:     "products-content",
	PageProduct:      "product-content",
	PageCart:         "cart-content",
	PageLogin:        "login-content",
	PageSignup:       "signup-content",
	PageProfile:      "profile-content",
	PageAdmin:        "admin-content",
	PageAdminProduct: "admin-product-form-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "home-content"
}
