package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// CatalogHandler exposes the read-only catalog data the engine scores against
type CatalogHandler struct {
	catalogs *catalog.Provider
	logger   *logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogs *catalog.Provider, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogs: catalogs,
		logger:   log.WithComponent("catalog"),
	}
}

// ListFacilities handles GET /api/v1/catalog/facilities
func (h *CatalogHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	reg := h.catalogs.Current()

	type facilitySummary struct {
		FacilityType models.FacilityType `json:"facility_type"`
		ThreatCount  int                 `json:"threat_count"`
		RuleCount    int                 `json:"rule_count"`
	}

	var out []facilitySummary
	for _, t := range reg.FacilityTypes() {
		fc, ok := reg.Facility(t)
		if !ok {
			continue
		}
		out = append(out, facilitySummary{
			FacilityType: t,
			ThreatCount:  len(fc.Threats),
			RuleCount:    len(fc.Rules),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": out})
}

// ListThreats handles GET /api/v1/catalog/facilities/{type}/threats
func (h *CatalogHandler) ListThreats(w http.ResponseWriter, r *http.Request) {
	facilityType := models.FacilityType(chi.URLParam(r, "type"))

	fc, ok := h.catalogs.Current().Facility(facilityType)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown facility type: "+string(facilityType))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"facility_type": facilityType,
		"data":          fc.Threats,
	})
}

// ListControls handles GET /api/v1/catalog/controls. An optional facility_type
// query narrows the list to controls applicable to that format.
func (h *CatalogHandler) ListControls(w http.ResponseWriter, r *http.Request) {
	controls := h.catalogs.Current().Controls()

	facilityType := models.FacilityType(r.URL.Query().Get("facility_type"))
	if facilityType != "" {
		if !facilityType.Valid() {
			respondError(w, http.StatusBadRequest, "unknown facility_type: "+string(facilityType))
			return
		}
		// Format gating only; flag conditions need a concrete profile.
		probe := models.FacilityProfile{FacilityType: facilityType}
		filtered := controls[:0:0]
		for _, c := range controls {
			gates := c.Applicability
			gates.RequiresFlag = ""
			if gates.Matches(probe) {
				filtered = append(filtered, c)
			}
		}
		controls = filtered
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": controls})
}

// Checklist handles GET /api/v1/catalog/checklist
func (h *CatalogHandler) Checklist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"data": h.catalogs.Current().Checklist(),
	})
}

// Reload handles POST /api/v1/catalog/reload. The shipped tables are
// revalidated and the whole registry swapped atomically; in-flight scoring
// runs keep the registry they started with.
func (h *CatalogHandler) Reload(w http.ResponseWriter, r *http.Request) {
	registry, err := catalog.Default()
	if err != nil {
		h.logger.Error().Err(err).Msg("catalog reload failed validation")
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.catalogs.Swap(registry)
	h.logger.Info().
		Int("facility_types", len(registry.FacilityTypes())).
		Int("controls", len(registry.Controls())).
		Msg("catalog registry swapped")

	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "reloaded",
		"facility_types": registry.FacilityTypes(),
		"controls":       len(registry.Controls()),
	})
}
