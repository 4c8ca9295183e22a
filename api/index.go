package api

import (
	"net/http"
	"sync"

	"restaurant-cart/config"
	"restaurant-cart/libs"
	"restaurant-cart/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		log := libs.NewLogger(cfg.AppEnv, cfg.LogLevel)
		// Instances share the cart slot, so every request rereads it.
		cfg.CartIdleTTL = 0

		db, err := config.ConnectDB(log)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to database")
		}
		rdb := config.ConnectRedis(log)

		router = routes.NewRouter(cfg, log, db, rdb)
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
