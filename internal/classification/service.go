package classification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"smedecl/internal/classification/metrics"
	"smedecl/internal/industry"
	"smedecl/pkg/requestcontext"
)

var tracer = otel.Tracer("smedecl/internal/classification")

// Service exposes Classify to the transport layer with tracing, metrics and
// logging around it. The rule evaluation itself stays in Classify.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a Service. metrics may be nil.
func NewService(logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{logger: logger, metrics: m}
}

// Industries lists the registry in declaration order.
func (s *Service) Industries(ctx context.Context) []industry.Summary {
	return industry.ListAll()
}

// Standard returns the full threshold definition for id.
func (s *Service) Standard(ctx context.Context, id industry.ID) (industry.Standard, error) {
	std, err := industry.Lookup(id)
	if err != nil {
		s.metrics.IncrementUnknownIndustry()
		return industry.Standard{}, err
	}
	return std, nil
}

// Classify runs the classifier for one enterprise.
func (s *Service) Classify(ctx context.Context, id industry.ID, m Metrics) (*Result, error) {
	ctx, span := tracer.Start(ctx, "classification.Classify")
	defer span.End()
	span.SetAttributes(attribute.String("industry", id.String()))

	start := time.Now()
	result, err := Classify(id, m)
	s.metrics.ObserveClassifyLatency(time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "classification failed")

		var unknown *industry.UnknownIndustryError
		if errors.As(err, &unknown) {
			s.metrics.IncrementUnknownIndustry()
		}
		s.logger.WarnContext(ctx, "classification rejected",
			"request_id", requestcontext.RequestID(ctx),
			"industry", id,
			"error", err,
		)
		return nil, err
	}

	span.SetAttributes(attribute.String("tier", result.Tier.String()))
	s.metrics.IncrementOutcome(id.String(), result.Tier.String())
	s.logger.DebugContext(ctx, "enterprise classified",
		"request_id", requestcontext.RequestID(ctx),
		"industry", id,
		"tier", result.Tier,
	)
	return result, nil
}
