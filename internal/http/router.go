package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
	"github.com/MrJamesThe3rd/biztime/internal/http/company"
	"github.com/MrJamesThe3rd/biztime/internal/http/health"
	"github.com/MrJamesThe3rd/biztime/internal/http/invoice"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
)

type Options struct {
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	AllowedOrigins []string
}

func New(
	opts Options,
	healthH *health.Handler,
	companies *company.Handler,
	invoices *invoice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(requestLogger)
	router.Use(recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	router.Use(timeout(opts.RequestTimeout))
	router.Use(limitBody(opts.MaxBodyBytes))

	notFound := respond.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return apperr.NotFound("")
	})
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/healthz", healthH.Routes)
	router.Route("/companies", companies.Routes)
	router.Route("/invoices", invoices.Routes)

	return router
}
