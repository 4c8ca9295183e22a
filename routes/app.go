package routes

import (
	"time"

	"restaurant-cart/config"
	"restaurant-cart/libs"
	"restaurant-cart/middleware"
	"restaurant-cart/repositories"
	"restaurant-cart/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const catalogTimeout = 5 * time.Second

// NewRouter wires repositories, services and controllers into a gin engine.
// rdb may be nil, in which case caching is off and carts fall back to the
// configured non-redis slot.
func NewRouter(cfg *config.Config, log *logrus.Logger, db *pgxpool.Pool, rdb *redis.Client) *gin.Engine {
	catalog := services.NewCatalogService(repositories.NewProductRepository(db), rdb, cfg.CatalogCacheTTL, log)

	carts := services.NewCartRegistry(cfg.CartStorageKey, cfg.CartIdleTTL, services.CartStoreOptions{
		Slot:    cartSlot(cfg.CartSlotBackend, db, rdb, log),
		Catalog: catalogSource(cfg.CatalogURL, catalog),
		Logger:  log.WithField("component", "cart"),
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	router.Use(middleware.RequestLogger(log))

	SetupRoutes(router, Dependencies{
		Catalog:   catalog,
		Carts:     carts,
		JWTSecret: cfg.JWTSecret,
	})
	return router
}

func cartSlot(backend string, db *pgxpool.Pool, rdb *redis.Client, log *logrus.Logger) services.CartSlot {
	switch backend {
	case "redis":
		if rdb != nil {
			return repositories.NewRedisCartSlot(rdb, 0)
		}
		log.Warn("redis unavailable, carts kept in memory")
	case "postgres":
		if db != nil {
			return repositories.NewPostgresCartSlot(db)
		}
		log.Warn("database unavailable, carts kept in memory")
	case "memory":
	default:
		log.WithField("backend", backend).Warn("unknown cart slot backend, carts kept in memory")
	}
	return repositories.NewMemoryCartSlot()
}

func catalogSource(url string, local *services.CatalogService) services.CatalogSource {
	if url != "" {
		return libs.NewCatalogClient(url, catalogTimeout)
	}
	return local
}
