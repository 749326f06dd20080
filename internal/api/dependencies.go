package api

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/db/repositories"
	"fuji-trip/tripmap/internal/itinerary"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/metrics"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/providers"
	"fuji-trip/tripmap/internal/services"
	"fuji-trip/tripmap/internal/store"
)

type Repositories struct {
	Notes         *repositories.NoteRepository
	Locations     *repositories.LocationRepository
	PackingStates *repositories.PackingStateRepository
	CustomItems   *repositories.CustomItemRepository
}

type Services struct {
	// Cache holds sessions and the weather result; Local is the durable
	// fallback behind every persistent store.
	Cache     common.CacheInterface
	Local     common.CacheInterface
	Sessions  *common.SessionService
	Signer    *common.SessionTokenSigner
	Itinerary *services.ItineraryService
	Checklist *services.ChecklistService
	Weather   *services.WeatherService
	Export    *services.ExportService
	View      *services.ViewService
	Auth      *services.AuthService
}

type Dependencies struct {
	Config   *config.Config
	DB       *sqlx.DB
	Metrics  *metrics.MetricsRegistry
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services. database and orm share
// one connection pool and may point at a database that is not up yet.
func InitDependencies(
	cfg *config.Config,
	database *sqlx.DB,
	orm *gorm.DB,
	cache common.CacheInterface,
	local common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) (*Dependencies, error) {
	secret, err := sessionSecret(cfg)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		Notes:         repositories.NewNoteRepository(database),
		Locations:     repositories.NewLocationRepository(database),
		PackingStates: repositories.NewPackingStateRepository(orm),
		CustomItems:   repositories.NewCustomItemRepository(orm),
	}

	catalog := itinerary.Default()

	notes := store.NewOverrideStore(store.NewPersistentStore[string](constants.StoreNotes,
		repos.Notes,
		store.NewCacheAdapter[string](local, constants.StorageKeyEventDetails),
	).WithObserver(metricsReg))
	locations := store.NewOverrideStore(store.NewPersistentStore[entities.LatLng](constants.StoreLocations,
		repos.Locations,
		store.NewCacheAdapter[entities.LatLng](local, constants.StorageKeyLocationOverrides),
	).WithObserver(metricsReg))

	itinerarySvc := services.NewItineraryService(catalog, notes, locations)
	weatherSvc := services.NewWeatherService(
		providers.NewOpenMeteoProvider(cfg.Weather),
		catalog,
		cache,
		cfg.Weather.HorizonDays,
		time.Duration(cfg.Weather.CacheMinutes)*time.Minute,
		metricsReg,
	)
	sessionSvc := common.NewSessionService(cache)

	svcs := &Services{
		Cache:     cache,
		Local:     local,
		Sessions:  sessionSvc,
		Signer:    common.NewSessionTokenSigner(secret),
		Itinerary: itinerarySvc,
		Checklist: services.NewChecklistService(
			services.NewRepositoryChecklistStores(repos.PackingStates, repos.CustomItems, local, metricsReg),
		),
		Weather: weatherSvc,
		Export:  services.NewExportService(itinerarySvc, weatherSvc),
		View:    services.NewViewService(itinerarySvc),
		Auth:    services.NewAuthService(sessionSvc, metricsReg),
	}

	return &Dependencies{
		Config:   cfg,
		DB:       database,
		Metrics:  metricsReg,
		Repo:     repos,
		Services: svcs,
	}, nil
}

// sessionSecret falls back to a random key, which logs everyone out on
// restart.
func sessionSecret(cfg *config.Config) ([]byte, error) {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret), nil
	}

	logging.Warn("SESSION_SECRET not set, using a random key")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	return key, nil
}
