package declaration

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"smedecl/internal/industry"
	dErrors "smedecl/pkg/domain-errors"
	"smedecl/pkg/requestcontext"
)

// Builder classifies every target of a request and renders the letter.
type Builder struct {
	classifier  Classifier
	logger      *slog.Logger
	concurrency int
}

// NewBuilder constructs a Builder. concurrency bounds parallel classification
// calls per request; values below 1 mean 1.
func NewBuilder(classifier Classifier, logger *slog.Logger, concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Builder{
		classifier:  classifier,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Build classifies all targets concurrently and renders the letter. The first
// classification error cancels the rest and is returned unchanged.
func (b *Builder) Build(ctx context.Context, req Request) (*Declaration, error) {
	if len(req.Targets) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one target is required")
	}

	lines := make([]Line, len(req.Targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, target := range req.Targets {
		i, target := i, target
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := b.classifier.Classify(gctx, target.Industry, target.Enterprise.Metrics())
			if err != nil {
				return err
			}
			std, err := industry.Lookup(target.Industry)
			if err != nil {
				return err
			}
			// Each goroutine owns index i.
			lines[i] = Line{Target: target, IndustryName: std.Name, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.logger.WarnContext(ctx, "declaration classification failed",
			"request_id", requestcontext.RequestID(ctx),
			"targets", len(req.Targets),
			"error", err,
		)
		return nil, err
	}

	return &Declaration{
		Title:       Title(req.Type),
		Content:     Render(req, lines),
		Lines:       lines,
		GeneratedAt: requestcontext.Now(ctx),
	}, nil
}
