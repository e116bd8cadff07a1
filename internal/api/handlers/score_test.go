package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

func newTestScoreHandler(t *testing.T) *ScoreHandler {
	t.Helper()
	registry, err := catalog.Default()
	require.NoError(t, err)
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewScoreHandler(catalog.NewProvider(registry), config.DefaultEngineConfig(), log)
}

func postScore(t *testing.T, h *ScoreHandler, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Score(rec, req)
	return rec
}

func TestScoreEndpointReturnsComponentScores(t *testing.T) {
	h := newTestScoreHandler(t)

	rec := postScore(t, h, ScoreRequest{
		FacilityType: models.FacilityOffice,
		ThreatID:     "burglary",
		Responses:    models.ResponseSet{},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "burglary", resp.ThreatID)
	for _, c := range []int{resp.Scores.Threat, resp.Scores.Vulnerability, resp.Scores.Impact} {
		assert.GreaterOrEqual(t, c, models.ComponentMin)
		assert.LessOrEqual(t, c, models.ComponentMax)
	}
	assert.Equal(t, resp.Scores.InherentRisk(), resp.InherentRisk)
}

func TestScoreEndpointRejectsUnknownFacilityType(t *testing.T) {
	h := newTestScoreHandler(t)

	rec := postScore(t, h, ScoreRequest{
		FacilityType: "warehouse",
		ThreatID:     "burglary",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreEndpointRejectsUnknownThreat(t *testing.T) {
	h := newTestScoreHandler(t)

	rec := postScore(t, h, ScoreRequest{
		FacilityType: models.FacilityOffice,
		ThreatID:     "meteor-strike",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScoreEndpointRejectsMalformedBody(t *testing.T) {
	h := newTestScoreHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Score(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreEndpointAppliesProfileOverlay(t *testing.T) {
	h := newTestScoreHandler(t)

	base := ScoreRequest{
		FacilityType: models.FacilityRetail,
		ThreatID:     "organized-retail-crime",
		Responses:    models.ResponseSet{"incidents.shoplifting": "no"},
	}
	plain := postScore(t, h, base)
	require.Equal(t, http.StatusOK, plain.Code)

	base.Profile = &models.FacilityProfile{
		FacilityType:         models.FacilityRetail,
		SizeBucket:           models.SizeMedium,
		HighValueMerchandise: true,
	}
	flagged := postScore(t, h, base)
	require.Equal(t, http.StatusOK, flagged.Code)

	var plainResp, flaggedResp ScoreResponse
	require.NoError(t, json.Unmarshal(plain.Body.Bytes(), &plainResp))
	require.NoError(t, json.Unmarshal(flagged.Body.Bytes(), &flaggedResp))

	assert.Greater(t, flaggedResp.Scores.Threat, plainResp.Scores.Threat,
		"high-value merchandise exposure should raise likelihood for organized retail crime")
}
