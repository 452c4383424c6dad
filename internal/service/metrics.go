package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the API
type Metrics struct {
	ReviewsCreated     prometheus.Counter
	ReactionsApplied   prometheus.Counter
	FollowUpdates      prometheus.Counter
	CommentsCreated    prometheus.Counter
	CatalogCacheHits   prometheus.Counter
	CatalogCacheMisses prometheus.Counter
	CatalogErrors      prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		ReviewsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_reviews_created_total",
			Help: "The total number of reviews created",
		}),
		ReactionsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_reactions_applied_total",
			Help: "The total number of like/dislike toggles applied",
		}),
		FollowUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_follow_updates_total",
			Help: "The total number of follow/unfollow updates",
		}),
		CommentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_comments_created_total",
			Help: "The total number of comments created",
		}),
		CatalogCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_catalog_cache_hits_total",
			Help: "The total number of catalog lookups served from the store",
		}),
		CatalogCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_catalog_cache_misses_total",
			Help: "The total number of catalog lookups that went to Spotify",
		}),
		CatalogErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jukeboxd_catalog_errors_total",
			Help: "The total number of Spotify API errors",
		}),
	}
}

var metrics = newMetrics()
