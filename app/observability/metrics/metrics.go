package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ChatRequestsTotal      metric.Int64Counter
	ChatDurationSeconds    metric.Float64Histogram
	UnresolvedQueriesTotal metric.Int64Counter
	ReplyCacheHitsTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments exactly once,
// using the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("travel-advisor")
		var err error
		m := &AppMetrics{}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Total number of chat queries processed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_requests_total: %v", err)
		}

		m.ChatDurationSeconds, err = meter.Float64Histogram(
			"chat_duration_seconds",
			metric.WithDescription("Duration of chat query processing in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_duration_seconds: %v", err)
		}

		m.UnresolvedQueriesTotal, err = meter.Int64Counter(
			"unresolved_queries_total",
			metric.WithDescription("Total number of queries with no recognized location"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create unresolved_queries_total: %v", err)
		}

		m.ReplyCacheHitsTotal, err = meter.Int64Counter(
			"reply_cache_hits_total",
			metric.WithDescription("Total number of chat replies served from cache"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create reply_cache_hits_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance. InitAppMetrics
// must have been called at startup.
func Get() *AppMetrics {
	if appMetrics == nil {
		log.Panic("Metrics: Get called before InitAppMetrics")
	}
	return appMetrics
}
