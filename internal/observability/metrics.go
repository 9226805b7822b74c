package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchTransitions counts match lifecycle moves by resulting status.
	MatchTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yolearn_match_transitions_total",
		Help: "Total number of match status changes by resulting status",
	}, []string{"status"})

	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yolearn_registrations_total",
		Help: "Total number of registered accounts",
	})

	ForumPosts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yolearn_forum_posts_total",
		Help: "Total forum posts by kind",
	}, []string{"kind"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yolearn_notifications_total",
		Help: "Total notifications appended, by delivery path",
	}, []string{"delivery"})

	SkillSearchCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yolearn_skill_search_cache_total",
		Help: "Skill search cache lookups by result",
	}, []string{"result"})

	WebSocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yolearn_websocket_connections",
		Help: "Number of open notification WebSocket connections",
	})
)
