package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/explorekerinci/web/internal/adapters/http/dto"
	"github.com/explorekerinci/web/internal/adapters/http/middleware"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
	"github.com/explorekerinci/web/internal/ports"
)

// AuthHandler serves sign-in, sign-up and sign-out.
type AuthHandler struct {
	pages
	accounts ports.AccountService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(accounts ports.AccountService, rd Renderer, sessions SessionWriter) *AuthHandler {
	return &AuthHandler{pages: pages{rd: rd, sessions: sessions}, accounts: accounts}
}

// LoginPage handles GET /login. Signed-in visitors go straight to next.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	next := localPath(r.URL.Query().Get("next"), "")
	if sess := session.FromContext(r.Context()); sess.Authenticated() {
		seeOther(w, r, afterLogin(next, sess.User))
		return
	}
	h.rd.Render(w, r, http.StatusOK, "auth/login.html", "Masuk", dto.LoginView{Form: dto.LoginForm{Next: next}})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "login", err)
		return
	}
	form := dto.ParseLoginForm(r)
	form.Next = localPath(form.Next, "")

	auth, err := h.accounts.Login(ctx, form.ToCredentials())
	if err != nil {
		if ve := dto.AsValidation(err); ve != nil {
			form.Password = ""
			h.rd.Render(w, r, http.StatusUnprocessableEntity, "auth/login.html", "Masuk", dto.LoginView{Form: form, Errors: ve})
			return
		}
		h.fail(w, r, "login", err)
		return
	}

	if !h.startSession(w, r, auth) {
		return
	}
	h.done(w, r, afterLogin(form.Next, &auth.User), "Selamat datang, "+auth.User.Name+".")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).Authenticated() {
		seeOther(w, r, "/")
		return
	}
	h.rd.Render(w, r, http.StatusOK, "auth/register.html", "Daftar", dto.RegisterView{})
}

// Register handles POST /register. A new account is signed in at once.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "register", err)
		return
	}
	form := dto.ParseRegisterForm(r)

	auth, err := h.accounts.Register(ctx, form.ToRegistration())
	if err != nil {
		if ve := dto.AsValidation(err); ve != nil {
			form.Password, form.PasswordConfirmation = "", ""
			h.rd.Render(w, r, http.StatusUnprocessableEntity, "auth/register.html", "Daftar", dto.RegisterView{Form: form, Errors: ve})
			return
		}
		h.fail(w, r, "register", err)
		return
	}

	if !h.startSession(w, r, auth) {
		return
	}
	logging.FromContext(ctx).InfoContext(ctx, "account registered", slog.Int64("user_id", auth.User.ID))
	h.done(w, r, "/", "Akun berhasil dibuat. Selamat datang, "+auth.User.Name+".")
}

// Logout handles POST /logout. The local session is cleared even when the
// backend could not revoke the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).Authenticated() {
		h.accounts.Logout(r.Context())
	}
	h.sessions.Clear(w)
	h.done(w, r, "/", "Anda telah keluar.")
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, auth *user.Auth) bool {
	if err := h.sessions.Save(w, auth); err != nil {
		h.fail(w, r, "save_session", err)
		return false
	}
	logging.FromContext(r.Context()).InfoContext(r.Context(), "signed in",
		slog.Int64("user_id", auth.User.ID),
		slog.String("role", string(auth.User.Role)),
	)
	return true
}

// afterLogin is where a fresh session lands: next when given, the
// back-office for administrators, the home page otherwise. The auth pages
// themselves are never a target.
func afterLogin(next string, u *user.User) string {
	switch {
	case next != "" && !strings.HasPrefix(next, middleware.LoginPath) && !strings.HasPrefix(next, "/register"):
		return next
	case u.IsAdmin():
		return "/admin"
	default:
		return "/"
	}
}
