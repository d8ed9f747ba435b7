package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/config"
	dbpkg "github.com/Cappu123/GorgieSalon-Booking-API/internal/db"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/logger"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, slogger)

	slogger.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
