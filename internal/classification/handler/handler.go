package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"smedecl/internal/classification"
	"smedecl/internal/industry"
	dErrors "smedecl/pkg/domain-errors"
	"smedecl/pkg/platform/httputil"
	"smedecl/pkg/requestcontext"
)

// Service defines the interface for classification operations.
type Service interface {
	Industries(ctx context.Context) []industry.Summary
	Standard(ctx context.Context, id industry.ID) (industry.Standard, error)
	Classify(ctx context.Context, id industry.ID, m classification.Metrics) (*classification.Result, error)
}

// Handler wires classification endpoints to the classification service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a classification handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts classification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/industries", h.HandleListIndustries)
	r.Get("/industries/{id}", h.HandleGetStandard)
	r.Post("/classify", h.HandleClassify)
}

// HandleListIndustries handles GET /industries requests.
func (h *Handler) HandleListIndustries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, IndustriesResponse{
		Industries: h.service.Industries(r.Context()),
	})
}

// HandleGetStandard handles GET /industries/{id} requests.
func (h *Handler) HandleGetStandard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := industry.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	std, err := h.service.Standard(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "industry standard lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"industry", id,
			"error", err,
		)
		httputil.WriteError(w, translate(err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, std)
}

// HandleClassify handles POST /classify requests.
func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ClassifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Classify(ctx, req.ParsedIndustry(), req.Metrics())
	if err != nil {
		httputil.WriteError(w, translate(err))
		return
	}

	h.logger.InfoContext(ctx, "enterprise classified",
		"request_id", requestID,
		"industry", req.ParsedIndustry(),
		"tier", result.Tier,
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// translate maps classifier errors onto domain error codes.
func translate(err error) error {
	var unknown *industry.UnknownIndustryError
	if errors.As(err, &unknown) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, "unknown industry: "+unknown.ID.String())
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "classification failed")
}
