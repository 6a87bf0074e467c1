package advisor

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/indyatra/travel-advisor/internal/api"
	"github.com/indyatra/travel-advisor/internal/types"
)

// Handler exposes the advisor service over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Chat handles POST /chat. The body carries a single free-text message;
// the reply is whatever the engine composed, stamped with the server time.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AdvisorHandler").Start(r.Context(), "Chat", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Chat"))

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid chat request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "No message provided")
		return
	}
	if req.Message == "" {
		l.WarnContext(ctx, "Chat request with empty message")
		span.SetStatus(codes.Error, "empty message")
		api.ErrorResponse(w, r, http.StatusBadRequest, "No message provided")
		return
	}

	l.InfoContext(ctx, "Received query", slog.String("message", req.Message))

	reply, err := h.service.ProcessQuery(ctx, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			span.SetStatus(codes.Error, "empty message")
			api.ErrorResponse(w, r, http.StatusBadRequest, "No message provided")
			return
		}
		l.ErrorContext(ctx, "Failed to process query", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query processing failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	span.SetStatus(codes.Ok, "reply composed")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ChatResponse{
		Reply:     reply,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Topics handles GET /topics, listing the information categories the
// engine can answer about.
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("AdvisorHandler").Start(r.Context(), "Topics")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]types.Topic{
		"topics": Topics(),
	})
	span.SetStatus(codes.Ok, "topics returned")
}
