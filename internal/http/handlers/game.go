package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"tictactoe_webapp/internal/board"
	"tictactoe_webapp/internal/http/middleware"
	"tictactoe_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateRequest is the create-game request body.
type CreateRequest struct {
	SessionName string `json:"sessionName" binding:"required"`
}

// CreateGame creates a new game and its first player (always x).
func (h *Handler) CreateGame(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"state": stateFail, "message": "sessionName is required"})
		return
	}

	ctx := c.Request.Context()
	playerID, err := h.GameService.CreateGame(ctx, req.SessionName)
	if err != nil {
		var f *service.Failure
		if errors.As(err, &f) {
			fail(c, f.Message)
			return
		}
		serverError(c, err)
		return
	}

	middleware.GamesCreated.Inc()
	c.JSON(http.StatusOK, gin.H{
		"state":    stateSuccess,
		"playerId": playerID,
		"symbol":   "x",
		"message":  "New game created: " + req.SessionName,
	})
}

// ListGames returns every game with its state, turn and board.
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.GameService.ListGames(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	list := make([]gin.H, 0, len(games))
	for _, g := range games {
		list = append(list, gin.H{
			"name":  g.Name,
			"state": g.Status,
			"turn":  g.Turn,
			"board": g.Board,
		})
	}

	c.JSON(http.StatusOK, gin.H{"state": stateSuccess, "games": list})
}

// JoinRequest is the join-game request body.
type JoinRequest struct {
	SessionName string `json:"sessionName" binding:"required"`
}

// JoinGame adds the second player (always o) to an unstarted game.
func (h *Handler) JoinGame(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"state": stateFail, "message": "sessionName is required"})
		return
	}

	ctx := c.Request.Context()
	playerID, err := h.GameService.JoinGame(ctx, req.SessionName)
	if err != nil {
		var f *service.Failure
		if errors.As(err, &f) {
			fail(c, f.Message)
			return
		}
		serverError(c, err)
		return
	}

	middleware.GamesJoined.Inc()
	c.JSON(http.StatusOK, gin.H{
		"state":    stateSuccess,
		"playerId": playerID,
		"symbol":   "o",
	})
}

// GameState reports the polling player's view: WAIT, TURN, WIN, LOSE or TIE.
// Side-effect-free and idempotent; safe to call arbitrarily often.
func (h *Handler) GameState(c *gin.Context) {
	idParam := c.Param("id")
	playerID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		fail(c, fmt.Sprintf("Game or player with id=%s not found", idParam))
		return
	}

	view, err := h.GameService.PlayerView(c.Request.Context(), playerID)
	if err != nil {
		var f *service.Failure
		if errors.As(err, &f) {
			fail(c, f.Message)
			return
		}
		serverError(c, err)
		return
	}

	resp := gin.H{"state": view.State, "board": view.Board}
	if view.WinningSeq != board.None {
		resp["winningSeq"] = view.WinningSeq
	}
	if view.Message != "" {
		resp["message"] = view.Message
	}
	c.JSON(http.StatusOK, resp)
}

// PlaceRequest is the place-mark request body. Position is decoded loosely
// so that a non-numeric value is rejected as a protocol error before the
// store is ever touched.
type PlaceRequest struct {
	PlayerID int64 `json:"playerId"`
	Position any   `json:"position"`
}

// PlaceMark writes the player's mark on the board.
func (h *Handler) PlaceMark(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"state": stateFail, "message": "invalid request body"})
		return
	}

	pos, ok := req.Position.(float64)
	if !ok || pos != math.Trunc(pos) {
		fail(c, fmt.Sprintf("Position %v is not a number", req.Position))
		return
	}

	res, err := h.GameService.PlaceMark(c.Request.Context(), req.PlayerID, int(pos))
	if err != nil {
		var f *service.Failure
		if errors.As(err, &f) {
			fail(c, f.Message)
			return
		}
		serverError(c, err)
		return
	}

	middleware.MarksPlaced.Inc()
	if res.Finished {
		if res.Won {
			middleware.GamesFinished.WithLabelValues("win").Inc()
		} else {
			middleware.GamesFinished.WithLabelValues("tie").Inc()
		}
	}

	c.JSON(http.StatusOK, gin.H{"state": stateSuccess, "board": res.Board})
}
