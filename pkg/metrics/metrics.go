package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CreditsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_credits_total",
		Help: "Course-sale credits applied to wallets.",
	})
	DebitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_debits_total",
		Help: "Refund debits applied to wallets.",
	})
	PayoutRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_payout_requests_total",
		Help: "Payout requests accepted.",
	})
	PayoutReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_payout_reviews_total",
		Help: "Admin review actions applied to payout requests.",
	}, []string{"action"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
