package main

import (
	"restaurant-cart/config"
	_ "restaurant-cart/docs"
	"restaurant-cart/libs"
	"restaurant-cart/routes"

	"github.com/gin-gonic/gin"
)

// @title Restaurant Cart API
// @version 1.0
// @description Storefront catalog and shopping cart service
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()
	log := libs.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if !cfg.EnvFileLoaded {
		log.Warn(".env file not found, using system environment variables")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer config.CloseDB()

	rdb := config.ConnectRedis(log)
	defer config.CloseRedis()

	router := routes.NewRouter(cfg, log, db, rdb)

	port := ":" + cfg.Port
	log.Infof("Server starting on port %s", port)
	log.Infof("Environment: %s", cfg.AppEnv)
	log.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
