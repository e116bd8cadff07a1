package handlers

import (
	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/infrastructure/cache"
	"siteguard-engine/internal/infrastructure/database"
	"siteguard-engine/internal/infrastructure/database/repository"
	"siteguard-engine/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health      *HealthHandler
	Assessments *AssessmentsHandler
	Catalog     *CatalogHandler
	Score       *ScoreHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Catalogs *catalog.Provider
	Engine   config.EngineConfig
	DB       *database.PostgresDB
	Repos    *repository.Repositories
	Cache    *cache.RedisCache
	Logger   *logger.Logger
	Version  string
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(deps.DB, deps.Cache, deps.Version, deps.Logger),
		Assessments: NewAssessmentsHandler(deps.Repos, deps.Cache, deps.Catalogs, deps.Engine, deps.Logger),
		Catalog:     NewCatalogHandler(deps.Catalogs, deps.Logger),
		Score:       NewScoreHandler(deps.Catalogs, deps.Engine, deps.Logger),
	}
}
