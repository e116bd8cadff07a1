package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/internal/domain/services"
	"siteguard-engine/pkg/logger"
)

// ScoreHandler exposes stateless scoring: nothing is persisted, the caller
// brings the responses and gets component scores back.
type ScoreHandler struct {
	catalogs *catalog.Provider
	engine   config.EngineConfig
	logger   *logger.Logger
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(catalogs *catalog.Provider, engine config.EngineConfig, log *logger.Logger) *ScoreHandler {
	return &ScoreHandler{
		catalogs: catalogs,
		engine:   engine,
		logger:   log.WithComponent("score"),
	}
}

// ScoreRequest is the payload for POST /api/v1/score
type ScoreRequest struct {
	FacilityType models.FacilityType     `json:"facility_type"`
	ThreatID     string                  `json:"threat_id"`
	Responses    models.ResponseSet      `json:"responses"`
	Profile      *models.FacilityProfile `json:"profile,omitempty"`
}

// ScoreResponse is the result of a stateless single-threat score
type ScoreResponse struct {
	FacilityType        models.FacilityType    `json:"facility_type"`
	ThreatID            string                 `json:"threat_id"`
	Scores              models.ComponentScores `json:"scores"`
	InherentRisk        int                    `json:"inherent_risk"`
	ContributingFactors []string               `json:"contributing_factors"`
}

// Score handles POST /api/v1/score
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.FacilityType.Valid() {
		respondError(w, http.StatusBadRequest, "unknown facility_type: "+string(req.FacilityType))
		return
	}
	if req.ThreatID == "" {
		respondError(w, http.StatusBadRequest, "threat_id is required")
		return
	}
	if req.Responses == nil {
		req.Responses = models.ResponseSet{}
	}

	responses := req.Responses
	if req.Profile != nil {
		responses = responses.Clone()
		for k, v := range req.Profile.ResponseOverlay() {
			responses[k] = v
		}
	}

	norm := services.NewNormalizer(h.logger)
	scorer := services.NewScorer(h.catalogs.Current(), norm, h.engine, h.logger)

	scores, err := scorer.Score(req.FacilityType, req.ThreatID, responses)
	if err != nil {
		var unknownThreat *services.UnknownThreatError
		var unknownFacility *services.UnknownFacilityError
		if errors.As(err, &unknownThreat) || errors.As(err, &unknownFacility) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("threat_id", req.ThreatID).Msg("stateless score failed")
		respondError(w, http.StatusInternalServerError, "scoring failed")
		return
	}

	factors, err := scorer.ContributingFactors(req.FacilityType, req.ThreatID, responses)
	if err != nil {
		h.logger.Error().Err(err).Str("threat_id", req.ThreatID).Msg("contributing factors failed")
		respondError(w, http.StatusInternalServerError, "scoring failed")
		return
	}

	respondJSON(w, http.StatusOK, ScoreResponse{
		FacilityType:        req.FacilityType,
		ThreatID:            req.ThreatID,
		Scores:              scores,
		InherentRisk:        scores.InherentRisk(),
		ContributingFactors: factors,
	})
}
