package handlers

import (
	"net/http"

	"tictactoe_webapp/internal/logger"
	"tictactoe_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	stateSuccess = "SUCCESS"
	stateFail    = "FAIL"
)

type Handler struct {
	DB          *pgxpool.Pool
	GameService *service.GameService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:          db,
		GameService: service.NewGameService(db),
	}
}

// fail writes a structured FAIL envelope. State conflicts are expected
// outcomes of concurrent play and go out as 200, not transport errors.
func fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"state": stateFail, "message": message})
}

// serverError writes the generic storage-failure response. The transaction
// behind the request has already been rolled back.
func serverError(c *gin.Context, err error) {
	logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"state": stateFail, "message": "internal server error"})
}
