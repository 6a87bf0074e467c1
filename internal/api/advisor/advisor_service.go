package advisor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/indyatra/travel-advisor/app/observability/metrics"
	"github.com/indyatra/travel-advisor/internal/types"
)

// ErrEmptyMessage marks a request with no usable message text. The
// boundary surfaces it as a 400.
var ErrEmptyMessage = errors.New("empty message")

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for advisor queries.
type Service interface {
	ProcessQuery(ctx context.Context, message string) (string, error)
}

// ServiceImpl runs the resolve/classify/compose pipeline over the shared
// read-only store. Replies are memoized per normalized message.
type ServiceImpl struct {
	store    Store
	resolver *Resolver
	logger   *slog.Logger
	cache    *cache.Cache
}

func NewServiceImpl(store Store, resolver *Resolver, cacheTTL time.Duration, logger *slog.Logger) *ServiceImpl {
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &ServiceImpl{
		store:    store,
		resolver: resolver,
		logger:   logger,
		cache:    cache.New(cacheTTL, 1*time.Hour),
	}
}

// ProcessQuery answers a single chat message. Resolution and
// classification run independently on the raw text; composition always
// yields a complete reply, falling back to the clarification message when
// no known location was mentioned.
func (s *ServiceImpl) ProcessQuery(ctx context.Context, message string) (string, error) {
	ctx, span := otel.Tracer("AdvisorService").Start(ctx, "ProcessQuery")
	defer span.End()

	start := time.Now()
	l := s.logger.With(
		slog.String("method", "ProcessQuery"),
		slog.String("exchange_id", uuid.New().String()),
	)

	if strings.TrimSpace(message) == "" {
		l.WarnContext(ctx, "Empty message received")
		span.SetStatus(codes.Error, "empty message")
		return "", ErrEmptyMessage
	}

	m := metrics.Get()
	cacheKey := strings.ToLower(strings.TrimSpace(message))

	if cached, found := s.cache.Get(cacheKey); found {
		m.ReplyCacheHitsTotal.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		l.DebugContext(ctx, "Reply served from cache")
		return cached.(string), nil
	}

	resolved := s.resolver.Resolve(message)
	topic := ClassifyTopic(message)
	reply := Compose(resolved, topic, s.store)

	outcome := "fallback"
	switch {
	case resolved.HasCity():
		outcome = "city"
	case resolved.HasState():
		outcome = "state"
	default:
		m.UnresolvedQueriesTotal.Add(ctx, 1)
	}

	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("topic", string(topic)),
	)
	m.ChatRequestsTotal.Add(ctx, 1, attrs)
	m.ChatDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)

	span.SetAttributes(
		attribute.String("query.outcome", outcome),
		attribute.String("query.topic", string(topic)),
	)

	l.InfoContext(ctx, "Query processed",
		slog.String("outcome", outcome),
		slog.String("topic", string(topic)),
		slog.String("city", resolved.City),
		slog.String("state", resolved.State),
	)

	s.cache.Set(cacheKey, reply, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "query processed")
	return reply, nil
}

// RecognizerLexicon keeps the recognizer vocabulary in sync with the
// gazetteer: every key the store can answer about is a phrase the
// recognizer should propose.
func RecognizerLexicon(store Store) []string {
	names := append([]string{}, store.CityNames()...)
	return append(names, store.StateNames()...)
}

// Topics lists the category names shown to clients asking what the
// service can answer.
func Topics() []types.Topic {
	return []types.Topic{
		types.TopicWeather,
		types.TopicTravelRestrictions,
		types.TopicVaccinationRequirements,
		types.TopicCulture,
		types.TopicTransportation,
		types.TopicTouristAttractions,
	}
}
