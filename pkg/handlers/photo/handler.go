package photo

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/repair-atlas/pkg/adapters"
	"github.com/de-tools/repair-atlas/pkg/models/api"
	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/services/portfolio"
	"github.com/de-tools/repair-atlas/pkg/services/profile"
	"github.com/de-tools/repair-atlas/pkg/services/session"
)

// AnalysisResolver supplies authoritative analyses for damage items.
// It is expected to degrade to an empty result on failure rather than
// block photo processing.
type AnalysisResolver interface {
	Resolve(ctx context.Context, items []domain.DamageItem) []domain.Analysis
}

// CategoryLister exposes the catalog's category taxonomy.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]string, error)
}

type Handler struct {
	photos     *session.Registry
	resolver   AnalysisResolver
	categories CategoryLister
}

func NewHandler(photos *session.Registry, resolver AnalysisResolver, categories CategoryLister) *Handler {
	return &Handler{
		photos:     photos,
		resolver:   resolver,
		categories: categories,
	}
}

func (h *Handler) ProcessPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ProcessPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items := make([]domain.DamageItem, 0, len(req.Detections))
	for _, detection := range req.Detections {
		items = append(items, adapters.MapApiDetectionToDomainItem(detection))
	}
	items = profile.PadDetections(req.FileName, items)

	var analyses []domain.Analysis
	if len(req.Analyses) > 0 {
		for _, analysis := range req.Analyses {
			analyses = append(analyses, adapters.MapApiAnalysisToDomain(analysis))
		}
	} else if h.resolver != nil {
		analyses = h.resolver.Resolve(ctx, items)
	}

	profiles := profile.BuildAll(items, analyses)
	stored := h.photos.Add(req.FileName, profiles)

	logger.Info().
		Str("photo", stored.ID).
		Str("file_name", stored.FileName).
		Int("profiles", len(profiles)).
		Msg("photo processed")

	w.WriteHeader(http.StatusCreated)
	h.encode(ctx, w, adapters.MapDomainPhotoToApi(stored))
}

func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	response := make([]api.Photo, 0)
	for _, photo := range h.photos.List() {
		response = append(response, adapters.MapDomainPhotoToApi(photo))
	}
	h.encode(r.Context(), w, response)
}

func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "photo")

	photo, ok := h.photos.Get(id)
	if !ok {
		http.Error(w, "photo not found", http.StatusNotFound)
		return
	}
	h.encode(r.Context(), w, adapters.MapDomainPhotoToApi(photo))
}

func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "photo")

	if !h.photos.Remove(id) {
		http.Error(w, "photo not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	report := portfolio.Aggregate(h.photos.List())
	h.encode(r.Context(), w, adapters.MapDomainPortfolioToApi(report))
}

func (h *Handler) GetHorizonDrillDown(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !isHorizonYear(year) {
		http.Error(w, "horizon year must be one of 5, 10, 15", http.StatusBadRequest)
		return
	}

	dd := portfolio.HorizonDrillDown(h.photos.List(), year)
	h.encode(r.Context(), w, adapters.MapDomainHorizonDrillDownToApi(dd))
}

func (h *Handler) GetSystemDrillDown(w http.ResponseWriter, r *http.Request) {
	// chi delivers route params already decoded.
	label := chi.URLParam(r, "system")

	dd := portfolio.SystemDrillDown(h.photos.List(), label)
	if dd == nil {
		http.Error(w, "system not found", http.StatusNotFound)
		return
	}
	h.encode(r.Context(), w, adapters.MapDomainSystemDrillDownToApi(*dd))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.categories == nil {
		h.encode(ctx, w, []string{})
		return
	}

	categories, err := h.categories.ListCategories(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list categories")
		http.Error(w, "failed to list categories", http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	h.encode(ctx, w, categories)
}

func (h *Handler) encode(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func isHorizonYear(year int) bool {
	for _, h := range domain.HorizonYears {
		if year == h {
			return true
		}
	}
	return false
}
