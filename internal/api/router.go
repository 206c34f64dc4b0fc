package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hirelane/invoices/docs" //nolint:revive,nolintlint
	"github.com/hirelane/invoices/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Route("/v1/invoice", func(r chi.Router) {
			r.Use(mw.Auth)

			r.With(mw.RequireRoles(entity.RoleRecruiter)).Post("/", h.CreateInvoice)
			r.With(mw.RequireRoles(entity.RoleAdmin)).Get("/", h.Invoices)
			r.With(mw.RequireRoles(entity.RoleRecruiter, entity.RoleAdmin)).Get("/{id}", h.InvoiceByID)
			r.With(mw.RequireRoles(entity.RoleRecruiter, entity.RoleAdmin)).Get("/url/{id}", h.InvoiceURL)
			r.With(mw.RequireRoles(entity.RoleRecruiter, entity.RoleAdmin)).Delete("/{id}", h.DeleteInvoice)
		})
	})

	return router
}
