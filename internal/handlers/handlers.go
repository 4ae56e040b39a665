package handlers

import (
	"net/http"

	_ "github.com/edumarket/wallet/docs"
	adminhandlers "github.com/edumarket/wallet/internal/handlers/admin"
	payouthandlers "github.com/edumarket/wallet/internal/handlers/payout"
	wallethandlers "github.com/edumarket/wallet/internal/handlers/wallet"
	"github.com/edumarket/wallet/internal/service"
	"github.com/edumarket/wallet/pkg/auth"
	"github.com/edumarket/wallet/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type WalletHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	Debit(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	AddMethod(w http.ResponseWriter, r *http.Request)
	ListMethods(w http.ResponseWriter, r *http.Request)
	UpdateMethod(w http.ResponseWriter, r *http.Request)
	DeleteMethod(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
	ListMyPayouts(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListPayouts(w http.ResponseWriter, r *http.Request)
	ReviewPayout(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler WalletHandler
	PayoutHandler PayoutHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		WalletHandler: wallethandlers.New(s.WalletService),
		PayoutHandler: payouthandlers.New(s.PayoutService),
		AdminHandler:  adminhandlers.New(s.PayoutService),
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
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetSummary)
				r.Get("/transactions", h.WalletHandler.ListTransactions)
				r.Route("/methods", func(r chi.Router) {
					r.Post("/", h.PayoutHandler.AddMethod)
					r.Get("/", h.PayoutHandler.ListMethods)
					r.Put("/{id}", h.PayoutHandler.UpdateMethod)
					r.Delete("/{id}", h.PayoutHandler.DeleteMethod)
				})
				r.Route("/payouts", func(r chi.Router) {
					r.Post("/", h.PayoutHandler.RequestPayout)
					r.Get("/", h.PayoutHandler.ListMyPayouts)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Route("/admin", func(r chi.Router) {
					r.Get("/payouts", h.AdminHandler.ListPayouts)
					r.Post("/payouts/{id}/review", h.AdminHandler.ReviewPayout)
				})
				r.Route("/internal", func(r chi.Router) {
					r.Post("/credit", h.WalletHandler.Credit)
					r.Post("/debit", h.WalletHandler.Debit)
				})
			})
		})
	})

	return r
}
