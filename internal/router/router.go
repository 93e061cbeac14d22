// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires middleware and handler groups into the HTTP mux.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mekongdoors/internal/auth"
	"mekongdoors/internal/handlers"
	"mekongdoors/internal/locale"
	"mekongdoors/internal/metrics"
	"mekongdoors/internal/middleware"
	"mekongdoors/internal/session"
	"mekongdoors/web"
)

// Deps carries everything the router needs to assemble routes.
type Deps struct {
	Public   *handlers.Public
	API      *handlers.API
	Admin    *handlers.Admin
	Auth     *handlers.Auth
	Sessions *session.Store
	Issuer   *auth.TokenIssuer
	Admins   auth.Whitelist
	Metrics  *metrics.Metrics
}

// New builds the chi router with the full middleware stack and all
// public, API, and admin routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))
	r.Use(locale.Middleware)

	// Public HTML pages. The locale middleware has already stripped any
	// locale prefix, so these match effective routes.
	r.Get("/", d.Public.Home)
	r.Get("/products", d.Public.Products)
	r.Get("/products/{id}", d.Public.Product)
	r.Get("/about", d.Public.About)
	r.Get("/installations", d.Public.Installations)
	r.Get("/installations/{id}", d.Public.Installation)
	r.Get("/contact", d.Public.Contact)

	r.Route("/api", func(r chi.Router) {
		// Quote requests are the one write open to the world; keep a
		// lid on per-IP volume.
		quoteLimit := middleware.NewRateLimiter(10, time.Minute)
		r.With(quoteLimit.Middleware).Post("/messages", d.API.CreateMessage)

		r.Get("/products/get", d.API.ProductsGet)
		r.With(middleware.RequireBearer(d.Issuer, d.Admins)).Post("/products/admin", d.API.ProductsAdmin)

		r.Route("/auth", func(r chi.Router) {
			loginLimit := middleware.NewRateLimiter(5, time.Minute)
			r.With(loginLimit.Middleware).Post("/login", d.Auth.Login)
			r.With(middleware.RequireSession).Get("/2fa/setup", d.Auth.TwoFASetup)
			r.With(middleware.RequireSession).Post("/2fa/verify", d.Auth.TwoFAVerify)
			r.Post("/logout", d.Auth.Logout)
		})

		r.Route("/admin", func(r chi.Router) {
			// The whitelist probe is intentionally unauthenticated; it
			// backs the login form.
			r.Post("/check", d.API.AdminCheck)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(d.Issuer, d.Admins))

				r.Get("/categories", d.Admin.ListCategories)
				r.Post("/categories", d.Admin.CreateCategory)
				r.Post("/categories/reorder", d.Admin.ReorderCategories)
				r.Put("/categories/{id}", d.Admin.UpdateCategory)
				r.Delete("/categories/{id}", d.Admin.DeleteCategory)

				r.Post("/products", d.Admin.CreateProduct)
				r.Put("/products/{id}", d.Admin.UpdateProduct)
				r.Delete("/products/{id}", d.Admin.DeleteProduct)

				r.Get("/installations", d.Admin.ListInstallations)
				r.Post("/installations", d.Admin.CreateInstallation)
				r.Put("/installations/{id}", d.Admin.UpdateInstallation)
				r.Delete("/installations/{id}", d.Admin.DeleteInstallation)

				r.Put("/about", d.Admin.PutAbout)
				r.Put("/footer", d.Admin.PutFooter)
				r.Put("/hero", d.Admin.PutHero)

				r.Get("/messages", d.Admin.ListMessages)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r
}
