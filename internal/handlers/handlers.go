package handlers

//go:generate mockgen -destination=mock_handlers.go -package=handlers . EventsHandler,DiagnosticsHandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/wagering/docs"
	diagnosticshandlers "github.com/GlebRadaev/wagering/internal/handlers/diagnostics"
	eventshandlers "github.com/GlebRadaev/wagering/internal/handlers/events"
	"github.com/GlebRadaev/wagering/internal/service"
	"github.com/GlebRadaev/wagering/pkg/auth"
)

type EventsHandler interface {
	OrderCompleted(w http.ResponseWriter, r *http.Request)
	DepositCompleted(w http.ResponseWriter, r *http.Request)
	VipUpgraded(w http.ResponseWriter, r *http.Request)
}

type DiagnosticsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	ListRollovers(w http.ResponseWriter, r *http.Request)
	ClaimCashback(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	EventsHandler      EventsHandler
	DiagnosticsHandler DiagnosticsHandler
	jwt                auth.JWTServiceInterface
}

func New(s *service.Services, jwt auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		EventsHandler:      eventshandlers.New(s.Dispatcher),
		DiagnosticsHandler: diagnosticshandlers.New(s.Ledger, s.Rollovers, s.Cashback),
		jwt:                jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt))

		r.Route("/events", func(r chi.Router) {
			r.Post("/orders/completed", h.EventsHandler.OrderCompleted)
			r.Post("/deposits/completed", h.EventsHandler.DepositCompleted)
			r.Post("/vip/upgraded", h.EventsHandler.VipUpgraded)
		})
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/balances/{currency}", h.DiagnosticsHandler.GetBalance)
			r.Get("/transactions", h.DiagnosticsHandler.ListTransactions)
			r.Get("/rollovers", h.DiagnosticsHandler.ListRollovers)
			r.Post("/cashbacks/{cashbackID}/claim", h.DiagnosticsHandler.ClaimCashback)
		})
	})

	return r
}
