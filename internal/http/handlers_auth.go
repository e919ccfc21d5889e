package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
	"github.com/vp-garments/storefront/internal/ports"
	"github.com/vp-garments/storefront/internal/service"
)

const sessionCookieName = "session_id"

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, creds ports.Credentials) (*service.LoginResult, error)
	Signup(ctx context.Context, in ports.SignupInput) error
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	RoleHint(ctx context.Context, userID string) domainauth.Role
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	T            *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the login form.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: skip the form.
	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, postLoginDestination(session, ""), http.StatusSeeOther)
		return
	}

	data := NewTemplateData(r, loginMeta()).
		With("Email", "").
		With("RedirectURI", safeRedirectPath(r.URL.Query().Get("redirect_uri"))).
		With("Registered", r.URL.Query().Get("registered") == "1").
		Build()
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// LoginSubmit exchanges the submitted credentials for a session.
// POST /login.
func (h *AuthHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	form, errs := parseLoginForm(r)
	redirectURI := safeRedirectPath(r.FormValue("redirect_uri"))

	if len(errs) > 0 {
		h.rerenderLogin(w, r, loginRerender{Form: form, Errs: errs, RedirectURI: redirectURI})
		return
	}

	result, err := h.Svc.Login(r.Context(), ports.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		h.logger().WarnContext(r.Context(), "login failed", "error", err)
		message := upstreamMessage(err, "")
		// An upstream message naming a credential field renders inline on
		// that field; anything else becomes a banner.
		if message == "" {
			message = "Invalid email or password."
		} else if field := credentialField(message); field != "" {
			h.rerenderLogin(w, r, loginRerender{
				Form:        form,
				Errs:        map[string]string{field: message},
				RedirectURI: redirectURI,
			})
			return
		}
		h.rerenderLogin(w, r, loginRerender{
			Form:        form,
			Message:     message,
			RedirectURI: redirectURI,
		})
		return
	}

	h.setSessionCookie(w, r, result.Session)
	http.Redirect(w, r, postLoginDestination(&result.Session, redirectURI), http.StatusSeeOther)
}

// loginRerender groups values for re-rendering the login form.
type loginRerender struct {
	Form        loginForm
	Errs        map[string]string
	Message     string
	RedirectURI string
}

func (h *AuthHandlers) rerenderLogin(w http.ResponseWriter, r *http.Request, p loginRerender) {
	b := NewTemplateData(r, loginMeta()).
		WithFieldErrors(p.Errs).
		With("Email", p.Form.Email).
		With("RedirectURI", p.RedirectURI)
	if p.Message != "" {
		b.WithError(p.Message)
	}
	if err := h.T.RenderFullStatus(w, r, http.StatusUnprocessableEntity, b.Build()); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// SignupPage renders the signup form.
// GET /signup.
func (h *AuthHandlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := NewTemplateData(r, signupMeta()).
		With("Name", "").
		With("Email", "").
		Build()
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// SignupSubmit registers a new account upstream and sends the visitor to the
// login page. No session is created here.
// POST /signup.
func (h *AuthHandlers) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	form, errs := parseSignupForm(r)
	if len(errs) > 0 {
		h.rerenderSignup(w, r, form, errs, "")
		return
	}

	err := h.Svc.Signup(r.Context(), ports.SignupInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "signup failed", "error", err)
		h.rerenderSignup(w, r, form, nil, upstreamMessage(err, "Signup failed. Please try again."))
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (h *AuthHandlers) rerenderSignup(
	w http.ResponseWriter,
	r *http.Request,
	form signupForm,
	errs map[string]string,
	message string,
) {
	b := NewTemplateData(r, signupMeta()).
		WithFieldErrors(errs).
		With("Name", form.Name).
		With("Email", form.Email)
	if message != "" {
		b.WithError(message)
	}
	if err := h.T.RenderFullStatus(w, r, http.StatusUnprocessableEntity, b.Build()); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Logout invalidates the server-side session and clears the cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearSessionCookie(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Status returns the current authentication status.
// GET /api/session.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Session is invalid or expired, clear the cookie
		h.clearSessionCookie(w, r)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	state := session.State()
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": state.IsAuthenticated,
		"is_admin":      state.IsAdmin,
		"user": map[string]any{
			"id":    session.UserID,
			"name":  session.Name,
			"email": session.Email,
			"role":  session.Role,
		},
		// Advisory display value from the role cache; gating reads the
		// session, so a stale or missing hint is harmless.
		"role_hint":  h.Svc.RoleHint(r.Context(), session.UserID),
		"expires_at": session.ExpiresAt,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearSessionCookie clears the session cookie by setting it to expire immediately.
// It mirrors the attributes used when setting the cookie to maximize
// compatibility across browsers during deletion.
func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// postLoginDestination picks where a fresh session lands: an explicitly
// requested safe path wins, then admins go to their dashboard, everyone
// else to the storefront.
func postLoginDestination(s *domainauth.Session, redirectURI string) string {
	if redirectURI != "" && redirectURI != "/" {
		if u, err := url.Parse(redirectURI); err == nil && !u.IsAbs() && u.Host == "" && strings.HasPrefix(u.Path, "/") {
			return redirectURI
		}
	}
	if s.Role.IsAdmin() {
		return "/admin"
	}
	return "/"
}

// credentialField maps an upstream error message to the login form field it
// talks about, or "" when the message is generic.
func credentialField(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "email"):
		return "email"
	case strings.Contains(lower, "password"):
		return "password"
	}
	return ""
}

func loginMeta() PageMeta {
	return PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin}
}

func signupMeta() PageMeta {
	return PageMeta{Title: "Create Account", PageTitle: "Create Account", CurrentPage: PageSignup}
}
