package http

import (
	"fmt"
	"net/http"
	"time"

	"tictactoe_webapp/internal/config"
	"tictactoe_webapp/internal/http/handlers"
	"tictactoe_webapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second

	// Game protocol: four player-facing transitions plus the open-games list
	api := r.Group("/tictactoe")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	{
		api.POST("/create", h.CreateGame)
		api.GET("/games", h.ListGames)
		api.PUT("/join", h.JoinGame)
		api.GET("/state/:id", h.GameState)
		api.PUT("/place", h.PlaceMark)
	}

	// Browser client (static files only; all game logic is server-side)
	r.Static("/public", "./public")

	// Final handler in the chain: anything unmatched gets a structured
	// not-found failure rather than a bare 404 page.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"state":   "FAIL",
			"message": fmt.Sprintf("Resource not found: %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})
}
