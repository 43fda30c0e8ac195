package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/repair-atlas/pkg/models/api"
	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/services/session"
)

type stubResolver struct {
	analyses []domain.Analysis
	calls    int
}

func (s *stubResolver) Resolve(_ context.Context, _ []domain.DamageItem) []domain.Analysis {
	s.calls++
	return s.analyses
}

type stubCategories struct {
	categories []string
	err        error
}

func (s *stubCategories) ListCategories(_ context.Context) ([]string, error) {
	return s.categories, s.err
}

func newTestAPI(t *testing.T, deps Dependencies) *WebAPI {
	t.Helper()
	if deps.Photos == nil {
		deps.Photos = session.NewRegistry()
	}
	return NewWebAPI(zerolog.Nop(), Config{Dependencies: deps})
}

func processPhoto(t *testing.T, router http.Handler, req api.ProcessPhotoRequest) api.Photo {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/photos", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var photo api.Photo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&photo))
	return photo
}

func TestWebAPI_ProcessPhoto(t *testing.T) {
	t.Run("success - detections produce profiles", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{})

		photo := processPhoto(t, webapi.Router(), api.ProcessPhotoRequest{
			FileName: "basement.jpg",
			Detections: []api.Detection{
				{Label: "Boiler corrosion", Severity: api.NewSeverity(4)},
				{Label: "Cracked tiles", Severity: api.NewSeverity(2)},
			},
		})

		assert.NotEmpty(t, photo.ID)
		assert.Equal(t, "basement.jpg", photo.FileName)
		require.Len(t, photo.CostProfiles, 2)
		assert.Equal(t, "Boiler corrosion", photo.CostProfiles[0].Label)
		assert.Equal(t, 4, photo.CostProfiles[0].Severity)
		assert.Len(t, photo.CostProfiles[0].YearlySeries, domain.ProjectionYears)
		assert.Len(t, photo.CostProfiles[0].Horizons, len(domain.HorizonYears))
	})

	t.Run("success - no detections pads with fallback systems", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{})

		photo := processPhoto(t, webapi.Router(), api.ProcessPhotoRequest{
			FileName: "facade.jpg",
		})

		require.Len(t, photo.CostProfiles, 3)
		labels := make([]string, 0, 3)
		for _, profile := range photo.CostProfiles {
			labels = append(labels, profile.Label)
			assert.GreaterOrEqual(t, profile.Severity, domain.MinSeverity)
			assert.LessOrEqual(t, profile.Severity, domain.MaxSeverity)
		}
		assert.Equal(t, []string{"Building envelope", "Utilities & fixtures", "Interior surfaces"}, labels)
	})

	t.Run("success - mostly blank detections still process", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{})

		photo := processPhoto(t, webapi.Router(), api.ProcessPhotoRequest{
			FileName: "blurry.jpg",
			Detections: []api.Detection{
				{Label: ""},
				{Label: " "},
				{Label: ""},
				{Label: "Roof leak", Severity: api.NewSeverity(4)},
			},
		})

		require.Len(t, photo.CostProfiles, 4)
		assert.Equal(t, "Roof leak", photo.CostProfiles[3].Label)
	})

	t.Run("success - re-processing a file replaces the stored photo", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{})
		router := webapi.Router()

		req := api.ProcessPhotoRequest{
			FileName: "basement.jpg",
			Detections: []api.Detection{
				{Label: "Boiler corrosion", Severity: api.NewSeverity(4)},
				{Label: "Cracked tiles", Severity: api.NewSeverity(2)},
			},
		}
		processPhoto(t, router, req)
		processPhoto(t, router, req)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/photos", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var photos []api.Photo
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&photos))
		assert.Len(t, photos, 1)
	})

	t.Run("success - inline analyses skip the resolver", func(t *testing.T) {
		resolver := &stubResolver{}
		webapi := newTestAPI(t, Dependencies{Resolver: resolver})

		cost := 2500.0
		photo := processPhoto(t, webapi.Router(), api.ProcessPhotoRequest{
			FileName: "roof.jpg",
			Detections: []api.Detection{
				{Label: "Roof leak", Severity: api.NewSeverity(5)},
				{Label: "Gutter damage", Severity: api.NewSeverity(2)},
			},
			Analyses: []api.Analysis{
				{
					DamageItem:   "Roof leak",
					Severity:     api.NewSeverity(5),
					CompleteData: &api.CompleteData{Category: "Roofing"},
					TenYearProjection: &api.TenYearProjection{
						Summary: "Full roof replacement required.",
						YearlyCosts: []api.YearlyCost{
							{Year: 1, Cost: &cost, ScheduledWork: "Replace membrane"},
						},
					},
				},
			},
		})

		assert.Zero(t, resolver.calls)
		require.Len(t, photo.CostProfiles, 2)
		matched := photo.CostProfiles[0]
		assert.Equal(t, "Roofing", matched.Category)
		assert.Equal(t, "Full roof replacement required.", matched.Summary)
		require.NotEmpty(t, matched.YearlySeries)
		require.NotNil(t, matched.YearlySeries[0].Cost)
		assert.Equal(t, 2500.0, *matched.YearlySeries[0].Cost)
		assert.Equal(t, "Replace membrane", matched.YearlySeries[0].ScheduledWork)
	})

	t.Run("success - resolver consulted when no inline analyses", func(t *testing.T) {
		resolver := &stubResolver{}
		webapi := newTestAPI(t, Dependencies{Resolver: resolver})

		processPhoto(t, webapi.Router(), api.ProcessPhotoRequest{
			FileName: "kitchen.jpg",
			Detections: []api.Detection{
				{Label: "Leaking faucet", Severity: api.NewSeverity(1)},
				{Label: "Water stain", Severity: api.NewSeverity(2)},
			},
		})

		assert.Equal(t, 1, resolver.calls)
	})

	t.Run("error - malformed body", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{})

		rec := httptest.NewRecorder()
		webapi.Router().ServeHTTP(rec, httptest.NewRequest(
			http.MethodPost, "/api/v1/photos", bytes.NewReader([]byte("{not json"))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWebAPI_PhotoLifecycle(t *testing.T) {
	webapi := newTestAPI(t, Dependencies{})
	router := webapi.Router()

	created := processPhoto(t, router, api.ProcessPhotoRequest{
		FileName: "basement.jpg",
		Detections: []api.Detection{
			{Label: "Boiler corrosion", Severity: api.NewSeverity(4)},
			{Label: "Cracked tiles", Severity: api.NewSeverity(2)},
		},
	})

	t.Run("list returns the stored photo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/photos", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var photos []api.Photo
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&photos))
		require.Len(t, photos, 1)
		assert.Equal(t, created.ID, photos[0].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/photos/"+created.ID, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var photo api.Photo
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&photo))
		assert.Equal(t, "basement.jpg", photo.FileName)
	})

	t.Run("get unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/photos/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete removes the photo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/photos/"+created.ID, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/photos/"+created.ID, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWebAPI_Portfolio(t *testing.T) {
	webapi := newTestAPI(t, Dependencies{})
	router := webapi.Router()

	t.Run("empty portfolio", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var report api.PortfolioReport
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Empty(t, report.Totals)
		assert.Empty(t, report.TopSystems)
	})

	processPhoto(t, router, api.ProcessPhotoRequest{
		FileName: "basement.jpg",
		Detections: []api.Detection{
			{Label: "Boiler corrosion", Severity: api.NewSeverity(4)},
			{Label: "Cracked tiles", Severity: api.NewSeverity(2)},
		},
	})

	t.Run("aggregated portfolio", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var report api.PortfolioReport
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		require.Len(t, report.Totals, len(domain.HorizonYears))
		for i, year := range domain.HorizonYears {
			assert.Equal(t, year, report.Totals[i].Year)
			assert.Positive(t, report.Totals[i].Total)
		}
		require.Len(t, report.TopSystems, 2)
		assert.Positive(t, report.TopSystems[0].Value)
		assert.GreaterOrEqual(t, report.TopSystems[0].Value, report.TopSystems[1].Value)
	})

	t.Run("horizon drill-down", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/horizons/5", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var dd api.HorizonDrillDown
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dd))
		assert.Equal(t, 5, dd.Year)
		assert.Len(t, dd.Yearly, 5)
	})

	t.Run("invalid horizon year", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/portfolio/horizons/7",
			"/api/v1/portfolio/horizons/abc",
		} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
	})

	t.Run("system drill-down", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/systems/Boiler%20corrosion", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var dd api.SystemDrillDown
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dd))
		assert.Equal(t, "Boiler corrosion", dd.Label)
		assert.Equal(t, 1, dd.InstanceCount)
		assert.Positive(t, dd.TotalCost)
	})

	t.Run("system labels with percent sequences are not double-decoded", func(t *testing.T) {
		processPhoto(t, router, api.ProcessPhotoRequest{
			FileName: "wall.jpg",
			Detections: []api.Detection{
				{Label: "Mold coverage 20%25", Severity: api.NewSeverity(3)},
				{Label: "Peeling paint", Severity: api.NewSeverity(2)},
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/api/v1/portfolio/systems/Mold%20coverage%2020%2525", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var dd api.SystemDrillDown
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dd))
		assert.Equal(t, "Mold coverage 20%25", dd.Label)
	})

	t.Run("unknown system", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/systems/Elevator", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWebAPI_ListCategories(t *testing.T) {
	t.Run("success - categories from the catalog", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{
			Categories: &stubCategories{categories: []string{"Building Envelope", "Interior"}},
		})

		rec := httptest.NewRecorder()
		webapi.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
		assert.Equal(t, []string{"Building Envelope", "Interior"}, categories)
	})

	t.Run("success - no catalog configured", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{})

		rec := httptest.NewRecorder()
		webapi.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("error - catalog failure", func(t *testing.T) {
		webapi := newTestAPI(t, Dependencies{
			Categories: &stubCategories{err: fmt.Errorf("db closed")},
		})

		rec := httptest.NewRecorder()
		webapi.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
