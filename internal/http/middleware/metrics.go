package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)

	GamesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tictactoe_games_created_total",
			Help: "Total games created",
		},
	)
	GamesJoined = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tictactoe_games_joined_total",
			Help: "Total games joined by a second player",
		},
	)
	MarksPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tictactoe_marks_placed_total",
			Help: "Total accepted placements",
		},
	)
	GamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tictactoe_games_finished_total",
			Help: "Total games finished, by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(GamesCreated)
	prometheus.MustRegister(GamesJoined)
	prometheus.MustRegister(MarksPlaced)
	prometheus.MustRegister(GamesFinished)
}
