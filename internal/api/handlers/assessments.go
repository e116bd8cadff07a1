package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/internal/domain/services"
	"siteguard-engine/internal/infrastructure/cache"
	"siteguard-engine/internal/infrastructure/database/repository"
	"siteguard-engine/pkg/logger"
)

// AssessmentsHandler handles assessment CRUD and scoring endpoints
type AssessmentsHandler struct {
	repos    *repository.Repositories
	cache    *cache.RedisCache
	catalogs *catalog.Provider
	engine   config.EngineConfig
	logger   *logger.Logger
}

// NewAssessmentsHandler creates a new AssessmentsHandler
func NewAssessmentsHandler(repos *repository.Repositories, c *cache.RedisCache, catalogs *catalog.Provider, engine config.EngineConfig, log *logger.Logger) *AssessmentsHandler {
	return &AssessmentsHandler{
		repos:    repos,
		cache:    c,
		catalogs: catalogs,
		engine:   engine,
		logger:   log.WithComponent("assessments"),
	}
}

// ready guards repository access; the server can boot without a database
// and this keeps those deployments answering 503 instead of panicking.
func (h *AssessmentsHandler) ready(w http.ResponseWriter) bool {
	if h.repos == nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return false
	}
	return true
}

// CreateAssessmentRequest is the payload for POST /api/v1/assessments
type CreateAssessmentRequest struct {
	SiteName  string                 `json:"site_name"`
	Profile   models.FacilityProfile `json:"profile"`
	Responses models.ResponseSet     `json:"responses"`
}

// Create handles POST /api/v1/assessments
func (h *AssessmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var req CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SiteName == "" {
		respondError(w, http.StatusBadRequest, "site_name is required")
		return
	}
	if !req.Profile.FacilityType.Valid() {
		respondError(w, http.StatusBadRequest, "unknown facility_type: "+string(req.Profile.FacilityType))
		return
	}
	if !req.Profile.SizeBucket.Valid() {
		respondError(w, http.StatusBadRequest, "unknown size_bucket: "+string(req.Profile.SizeBucket))
		return
	}
	if req.Responses == nil {
		req.Responses = models.ResponseSet{}
	}

	assessment, err := h.repos.Assessments.Create(r.Context(), &models.Assessment{
		SiteName:  req.SiteName,
		Profile:   req.Profile,
		Responses: req.Responses,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create assessment")
		respondError(w, http.StatusInternalServerError, "failed to create assessment")
		return
	}

	respondJSON(w, http.StatusCreated, assessment)
}

// List handles GET /api/v1/assessments
func (h *AssessmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	facilityType := models.FacilityType(r.URL.Query().Get("facility_type"))
	if facilityType != "" && !facilityType.Valid() {
		respondError(w, http.StatusBadRequest, "unknown facility_type: "+string(facilityType))
		return
	}
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	assessments, err := h.repos.Assessments.List(r.Context(), facilityType, limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list assessments")
		respondError(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data":   assessments,
		"limit":  limit,
		"offset": offset,
	})
}

// Get handles GET /api/v1/assessments/{id}
func (h *AssessmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	assessment, err := h.repos.Assessments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "assessment not found")
			return
		}
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to get assessment")
		respondError(w, http.StatusInternalServerError, "failed to get assessment")
		return
	}

	respondJSON(w, http.StatusOK, assessment)
}

// UpdateResponses handles PUT /api/v1/assessments/{id}/responses. A response
// edit invalidates the cached latest run; the stored runs stay untouched until
// the next scoring call supersedes them.
func (h *AssessmentsHandler) UpdateResponses(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var responses models.ResponseSet
	if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.repos.Assessments.UpdateResponses(r.Context(), id, responses); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "assessment not found")
			return
		}
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to update responses")
		respondError(w, http.StatusInternalServerError, "failed to update responses")
		return
	}

	if h.cache != nil {
		if err := h.cache.InvalidateRun(r.Context(), id); err != nil {
			h.logger.Warn().Err(err).Str("assessment_id", id.String()).Msg("failed to invalidate cached run")
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /api/v1/assessments/{id}
func (h *AssessmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.repos.Assessments.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "assessment not found")
			return
		}
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to delete assessment")
		respondError(w, http.StatusInternalServerError, "failed to delete assessment")
		return
	}

	if h.cache != nil {
		if err := h.cache.InvalidateRun(r.Context(), id); err != nil {
			h.logger.Warn().Err(err).Str("assessment_id", id.String()).Msg("failed to invalidate cached run")
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// Score handles POST /api/v1/assessments/{id}/score. It executes the full
// pipeline against the current catalogs, persists the run and refreshes the
// latest-run cache.
func (h *AssessmentsHandler) Score(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	assessment, err := h.repos.Assessments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "assessment not found")
			return
		}
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to get assessment")
		respondError(w, http.StatusInternalServerError, "failed to get assessment")
		return
	}

	engine := services.NewEngine(h.catalogs.Current(), h.engine, h.logger)
	run, err := engine.Run(*assessment)
	if err != nil {
		var unknownFacility *services.UnknownFacilityError
		if errors.As(err, &unknownFacility) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("scoring run failed")
		respondError(w, http.StatusInternalServerError, "scoring run failed")
		return
	}

	stored, err := h.repos.Runs.Create(r.Context(), run)
	if err != nil {
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to persist scoring run")
		respondError(w, http.StatusInternalServerError, "failed to persist scoring run")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetLatestRun(r.Context(), stored, h.engine.CacheTTL); err != nil {
			h.logger.Warn().Err(err).Str("assessment_id", id.String()).Msg("failed to cache scoring run")
		}
	}

	respondJSON(w, http.StatusCreated, stored)
}

// LatestRun handles GET /api/v1/assessments/{id}/runs/latest
func (h *AssessmentsHandler) LatestRun(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if h.cache != nil {
		run, err := h.cache.GetLatestRun(r.Context(), id)
		if err == nil {
			respondJSON(w, http.StatusOK, run)
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.logger.Warn().Err(err).Str("assessment_id", id.String()).Msg("run cache lookup failed")
		}
	}

	run, err := h.repos.Runs.GetLatest(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "no scoring run for assessment")
			return
		}
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to get latest run")
		respondError(w, http.StatusInternalServerError, "failed to get latest run")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetLatestRun(r.Context(), run, h.engine.CacheTTL); err != nil {
			h.logger.Warn().Err(err).Str("assessment_id", id.String()).Msg("failed to cache scoring run")
		}
	}

	respondJSON(w, http.StatusOK, run)
}

// ListRuns handles GET /api/v1/assessments/{id}/runs
func (h *AssessmentsHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit := queryInt(r, "limit", 20)

	runs, err := h.repos.Runs.ListByAssessment(r.Context(), id, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("assessment_id", id.String()).Msg("failed to list runs")
		respondError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data":  runs,
		"limit": limit,
	})
}

// GetRun handles GET /api/v1/assessments/{id}/runs/{runID}
func (h *AssessmentsHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.repos.Runs.GetByID(r.Context(), runID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "scoring run not found")
			return
		}
		h.logger.Error().Err(err).Str("run_id", runID.String()).Msg("failed to get run")
		respondError(w, http.StatusInternalServerError, "failed to get run")
		return
	}

	respondJSON(w, http.StatusOK, run)
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid assessment id")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, param string, def int) int {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
