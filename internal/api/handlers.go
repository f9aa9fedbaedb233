package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/holidaykit/holiday-api/internal/calendar"
	"github.com/holidaykit/holiday-api/internal/config"
	"github.com/holidaykit/holiday-api/internal/database"
	"github.com/holidaykit/holiday-api/internal/holiday"
	"github.com/holidaykit/holiday-api/internal/logger"
)

// Translator supplies display names for holiday keys. A missing
// translation is reported with ok=false, never an error; the handler
// falls back to the rule's embedded names and finally the key itself.
type Translator interface {
	Name(ctx context.Context, key, locale string) (string, bool)
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	registry *holiday.Registry
	names    Translator
	db       *database.DB
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance. The database doubles as
// the translation table.
func NewHandlers(db *database.DB, registry *holiday.Registry, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		names:    db,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// RegionResponse describes one jurisdiction in the catalog.
type RegionResponse struct {
	Code     string `json:"code"`
	Parent   string `json:"parent,omitempty"`
	Timezone string `json:"timezone"`
	Locale   string `json:"locale"`
}

// ListRegions handles GET /api/v1/regions
func (h *Handlers) ListRegions(w http.ResponseWriter, r *http.Request) {
	codes := h.registry.Codes()
	regions := make([]RegionResponse, 0, len(codes))
	for _, code := range codes {
		p, ok := h.registry.Lookup(code)
		if !ok {
			continue
		}
		regions = append(regions, RegionResponse{
			Code:     p.Code,
			Parent:   p.Parent,
			Timezone: p.Timezone,
			Locale:   p.Locale,
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"regions": regions,
	})
}

// HolidayResponse is one resolved holiday in API shape.
type HolidayResponse struct {
	Key  string       `json:"key"`
	Date string       `json:"date"`
	Name string       `json:"name"`
	Type holiday.Type `json:"type"`
}

// GetHolidays handles GET /api/v1/holidays/{code}/{year}?locale=en
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := chi.URLParam(r, "code")
	yearStr := chi.URLParam(r, "year")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}

	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.cfg.DefaultLocale
	}

	holidays, err := h.registry.Resolve(code, year)
	if err != nil {
		switch {
		case errors.Is(err, holiday.ErrUnknownJurisdiction):
			WriteNotFound(w, fmt.Sprintf("Unknown jurisdiction: %s", code))
		case errors.Is(err, calendar.ErrInvalidArgument):
			WriteBadRequest(w, err.Error())
		default:
			// Internal consistency failures abort this query only.
			logger.FromContext(ctx).Error("holiday resolution failed",
				slog.String("code", code),
				slog.Int("year", year),
				slog.Any("error", err))
			WriteInternalError(w, "Holiday calculation failed")
		}
		return
	}

	results := make([]HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		results = append(results, HolidayResponse{
			Key:  hol.Key,
			Date: hol.DateString(),
			Name: h.displayName(ctx, hol, locale),
			Type: hol.Type,
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"code":     code,
		"year":     year,
		"locale":   locale,
		"holidays": results,
	})
}

// UpsertTranslationRequest is the admin payload for storing a display
// name, the API-side counterpart of the seed command.
type UpsertTranslationRequest struct {
	Key    string `json:"key"`
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

// UpsertTranslation handles POST /api/v1/admin/names
func (h *Handlers) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpsertTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Key == "" || req.Locale == "" || req.Name == "" {
		WriteBadRequest(w, "key, locale, and name are required")
		return
	}

	if err := h.db.UpsertName(ctx, req.Key, req.Locale, req.Name); err != nil {
		logger.FromContext(ctx).Error("translation upsert failed",
			slog.String("key", req.Key),
			slog.String("locale", req.Locale),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to store translation")
		return
	}

	logger.FromContext(ctx).Info("translation stored",
		slog.String("key", req.Key),
		slog.String("locale", req.Locale))

	WriteSuccess(w, req)
}

// displayName resolves a holiday's display name: stored translation
// first, then the rule's embedded names, then the key. Never fails.
func (h *Handlers) displayName(ctx context.Context, hol holiday.Holiday, locale string) string {
	if h.names != nil {
		if name, ok := h.names.Name(ctx, hol.Key, locale); ok {
			return name
		}
	}
	return hol.Name(locale)
}
