package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/ipsqr/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/v1", func(r chi.Router) {
			r.Post("/ips/payload", h.Payload)
			r.Post("/ips/qr", h.QRCode)
			r.Post("/batch", h.Batch)

			r.Route("/slips", func(r chi.Router) {
				r.Post("/", h.ShareSlip)
				r.Get("/", h.Slips)
				r.Get("/{id}", h.SharedSlip)
				r.Get("/{id}/qr", h.SharedSlipQRCode)
			})
		})

		r.Route("/private/v1", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/slips/purge", h.PurgeSlips)
		})
	})

	return mux
}
