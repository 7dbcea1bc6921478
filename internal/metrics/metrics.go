package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginOutcomes counts login attempts by outcome (user, admin, invalid, banned)
	LoginOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "decideforme",
		Name:      "login_outcomes_total",
		Help:      "Login attempts by outcome",
	}, []string{"outcome"})

	// Signups counts account creations, including duplicate no-ops
	Signups = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "decideforme",
		Name:      "signups_total",
		Help:      "Signup requests",
	})

	// Broadcasts counts published notifications by topic
	Broadcasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "decideforme",
		Name:      "broadcasts_total",
		Help:      "Published notifications by topic",
	}, []string{"topic"})

	// Spins counts completed spin-wheel draws
	Spins = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "decideforme",
		Name:      "spins_total",
		Help:      "Completed spin-wheel draws",
	})

	// QuizSubmissions counts scored quizzes by resulting vibe
	QuizSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "decideforme",
		Name:      "quiz_submissions_total",
		Help:      "Scored quizzes by vibe",
	}, []string{"vibe"})

	// AIRequests counts generative model calls by feature and result
	AIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "decideforme",
		Name:      "ai_requests_total",
		Help:      "Generative model calls by feature and result",
	}, []string{"feature", "result"})

	// AIDuration observes generative model call latency by feature
	AIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "decideforme",
		Name:      "ai_request_duration_seconds",
		Help:      "Generative model call latency",
		Buckets:   []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"feature"})

	// SSEClients tracks open event streams
	SSEClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "decideforme",
		Name:      "sse_clients",
		Help:      "Open event stream connections",
	})
)
