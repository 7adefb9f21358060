package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"smedecl/internal/declaration"
	dErrors "smedecl/pkg/domain-errors"
	"smedecl/pkg/platform/httputil"
	"smedecl/pkg/platform/sentinel"
	"smedecl/pkg/requestcontext"
)

// Service defines the interface for declaration operations.
type Service interface {
	Build(ctx context.Context, req declaration.Request) (*declaration.Declaration, error)
}

// Handler wires declaration endpoints to the declaration builder.
type Handler struct {
	service    Service
	logger     *slog.Logger
	maxTargets int
}

// New constructs a declaration handler. maxTargets is clamped to MaxTargets.
func New(service Service, logger *slog.Logger, maxTargets int) *Handler {
	if maxTargets <= 0 || maxTargets > MaxTargets {
		maxTargets = MaxTargets
	}
	return &Handler{
		service:    service,
		logger:     logger,
		maxTargets: maxTargets,
	}
}

// Register mounts declaration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/declarations", h.HandleCreate)
}

// HandleCreate handles POST /declarations requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CreateDeclarationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if len(req.Targets) > h.maxTargets {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("at most %d targets are allowed", h.maxTargets)))
		return
	}

	decl, err := h.service.Build(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "declaration build failed",
			"request_id", requestID,
			"error", err,
		)
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, err.Error()))
			return
		}
		if _, isDomain := dErrors.As(err); isDomain {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build declaration"))
		return
	}

	h.logger.InfoContext(ctx, "declaration generated",
		"request_id", requestID,
		"declaration_type", req.DeclarationType,
		"targets", len(decl.Lines),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromDeclaration(decl))
}
