package httpx

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/vp-garments/storefront"
	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
	"github.com/vp-garments/storefront/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Catalog      *service.CatalogService
	Cart         *service.CartService
	Profile      *service.ProfileService
	CookieDomain string
	IsDev        bool         // Development mode flag for template hot reloading
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
// A template set that fails to parse is a boot error, not a degraded site.
func NewRouter(services RouterServices) (http.Handler, error) {
	mux := http.NewServeMux()

	uiHandlers, err := setupUIHandlers(services)
	if err != nil {
		return nil, fmt.Errorf("build template renderer: %w", err)
	}
	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{
			Svc:          services.Auth,
			T:            uiHandlers.T,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	cfg := uiRouteConfig{Auth: services.Auth}
	registerPublicRoutes(mux, uiHandlers, cfg)
	registerCustomerRoutes(mux, uiHandlers, cfg)
	registerAdminRoutes(mux, uiHandlers, cfg)
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers, services.Auth)
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	return BrowserDetection()(handler), nil
}

// setupUIHandlers creates UI handlers with a template renderer.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) (*UIHandlers, error) {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS(TemplatePathFromRoot)
	} else {
		sub, err := fs.Sub(storefront.TemplateFS, "frontend/templates")
		if err != nil {
			return nil, fmt.Errorf("embedded template filesystem: %w", err)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &UIHandlers{
		T:          tr,
		Catalog:    services.Catalog,
		CartSvc:    services.Cart,
		ProfileSvc: services.Profile,
		IsDev:      services.IsDev,
		Logger:     services.Logger,
	}, nil
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth *service.AuthService
}

// optionalWrap attaches the session to public pages so the nav reflects the
// signed-in state. No-op wrapper when auth is nil (template-only tests).
func (cfg uiRouteConfig) optionalWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return OptionalAuth(cfg.Auth)
}

// authWrap returns a no-op wrapper when auth is nil, otherwise applies RequireAuthBrowser.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAuthBrowser(cfg.Auth)
}

// customerWrap admits customers; admins are bounced to their dashboard.
func (cfg uiRouteConfig) customerWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireRoleBrowser(cfg.Auth, domainauth.RoleCustomer)
}

// adminWrap guards the admin area; every browser failure lands on the site root.
func (cfg uiRouteConfig) adminWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAdminBrowser(cfg.Auth)
}

// registerPublicRoutes wires pages that render for everyone.
func registerPublicRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.optionalWrap()
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Home)))
	mux.Handle("GET /products", wrap(http.HandlerFunc(h.Products)))
	mux.Handle("GET /products/{id}", wrap(http.HandlerFunc(h.ProductDetails)))
}

// registerCustomerRoutes wires cart and profile pages.
func registerCustomerRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAuth := cfg.authWrap()
	wrapCustomer := cfg.customerWrap()

	// Cart is a customer surface; admins get redirected to /admin.
	mux.Handle("GET /cart", wrapCustomer(http.HandlerFunc(h.Cart)))
	mux.Handle("POST /cart/items", wrapCustomer(http.HandlerFunc(h.AddToCart)))
	mux.Handle("POST /cart/items/{id}", wrapCustomer(http.HandlerFunc(h.UpdateCartItem)))
	mux.Handle("POST /cart/items/{id}/delete", wrapCustomer(http.HandlerFunc(h.RemoveCartItem)))

	// Profile is available to any signed-in user.
	mux.Handle("GET /profile", wrapAuth(http.HandlerFunc(h.Profile)))
	mux.Handle("POST /profile", wrapAuth(http.HandlerFunc(h.UpdateProfile)))
}

// registerAdminRoutes wires the product management pages.
func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /admin", wrapAdmin(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET /admin/products/new", wrapAdmin(http.HandlerFunc(h.AdminProductNew)))
	mux.Handle("POST /admin/products", wrapAdmin(http.HandlerFunc(h.AdminProductCreate)))
	mux.Handle("GET /admin/products/{id}/edit", wrapAdmin(http.HandlerFunc(h.AdminProductEdit)))
	mux.Handle("POST /admin/products/{id}", wrapAdmin(http.HandlerFunc(h.AdminProductUpdate)))
	mux.Handle("POST /admin/products/{id}/delete", wrapAdmin(http.HandlerFunc(h.AdminProductDelete)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, auth *service.AuthService) {
	optional := func(hh http.Handler) http.Handler { return hh }
	if auth != nil {
		optional = func(hh http.Handler) http.Handler { return OptionalAuth(auth)(hh) }
	}

	mux.Handle("GET /login", optional(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST /login", http.HandlerFunc(h.LoginSubmit))
	mux.Handle("GET /signup", optional(http.HandlerFunc(h.SignupPage)))
	mux.Handle("POST /signup", http.HandlerFunc(h.SignupSubmit))
	mux.Handle("POST /logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /api/session", http.HandlerFunc(h.Status))
}

// staticHandler serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return noCacheStatic(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(storefront.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return noCacheStatic(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(staticSub)))
}

// noCacheStatic disables caching so disk edits show immediately in dev mode.
func noCacheStatic(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}
