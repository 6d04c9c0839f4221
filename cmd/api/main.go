package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chimeco/agenda-api/internal/config"
	dbpkg "github.com/chimeco/agenda-api/internal/db"
	"github.com/chimeco/agenda-api/internal/middleware"
	"github.com/chimeco/agenda-api/internal/routes"
	"github.com/chimeco/agenda-api/internal/timezone"
)

func main() {

	// .env ausente não é erro em produção
	_ = godotenv.Load()

	cfg := config.Load()
	timezone.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
