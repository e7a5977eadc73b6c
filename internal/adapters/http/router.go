// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/explorekerinci/web/internal/adapters/http/handlers"
	"github.com/explorekerinci/web/internal/adapters/http/middleware"
	"github.com/explorekerinci/web/internal/domain"
)

// Routes bundles the page handlers mounted by NewRouter.
type Routes struct {
	Catalog *handlers.CatalogHandler
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Admin   *handlers.AdminHandler
	Health  *handlers.HealthHandler

	// Static serves /static/*. Nil leaves the prefix unrouted.
	Static http.Handler
	// Errors renders the 404 and 403 pages. Nil falls back to plain text.
	Errors middleware.ErrorRenderer
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(rt Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if rt.Errors == nil {
			http.NotFound(w, req)
			return
		}
		rt.Errors.RenderError(w, req, domain.ErrNotFound)
	})

	// Health endpoints.
	r.Get("/health/live", rt.Health.Liveness)
	r.Get("/health/ready", rt.Health.Readiness)

	if rt.Static != nil {
		r.Handle("/static/*", rt.Static)
	}

	// Public catalog.
	r.Get("/", rt.Catalog.Home)
	r.Get("/wisata", rt.Catalog.List)
	r.Post("/wisata/filter", rt.Catalog.Filter)
	r.Get("/wisata/{slug}", rt.Catalog.Detail)

	// Accounts.
	r.Get("/login", rt.Auth.LoginPage)
	r.Post("/login", rt.Auth.Login)
	r.Get("/register", rt.Auth.RegisterPage)
	r.Post("/register", rt.Auth.Register)
	r.Post("/logout", rt.Auth.Logout)

	// Signed-in visitors.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())

		r.Get("/profil", rt.Profile.Show)
		r.Post("/profil", rt.Profile.Update)
		r.Post("/wisata/{slug}/ulasan", rt.Catalog.SubmitReview)
	})

	// Back-office.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(rt.Errors))

		r.Get("/", rt.Admin.Dashboard)

		r.Get("/wisata", rt.Admin.Destinations)
		r.Post("/wisata", rt.Admin.CreateDestination)
		r.Get("/wisata/baru", rt.Admin.NewDestination)
		r.Get("/wisata/{id}/edit", rt.Admin.EditDestination)
		r.Post("/wisata/{id}", rt.Admin.UpdateDestination)
		r.Post("/wisata/{id}/hapus", rt.Admin.DeleteDestination)
		r.Post("/wisata/{id}/foto", rt.Admin.UploadImage)
		r.Post("/wisata/{id}/foto/{imageId}/hapus", rt.Admin.DeleteImage)

		r.Get("/kategori", rt.Admin.Categories)
		r.Post("/kategori", rt.Admin.CreateCategory)
		r.Post("/kategori/{id}", rt.Admin.RenameCategory)
		r.Post("/kategori/{id}/hapus", rt.Admin.DeleteCategory)

		r.Get("/ulasan", rt.Admin.Reviews)
		r.Post("/ulasan/{id}/setujui", rt.Admin.ApproveReview)
		r.Post("/ulasan/{id}/tolak", rt.Admin.RejectReview)
		r.Post("/ulasan/{id}/hapus", rt.Admin.DeleteReview)
	})

	return r
}
