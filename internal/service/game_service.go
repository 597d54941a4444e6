package service

import (
	"context"
	"errors"
	"fmt"

	"tictactoe_webapp/internal/board"
	"tictactoe_webapp/internal/domain"
	"tictactoe_webapp/internal/logger"
	"tictactoe_webapp/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// State-conflict classes. These are expected outcomes of concurrent play,
// not server defects; handlers translate them into FAIL envelopes.
var (
	ErrDuplicateGame      = errors.New("duplicate game")
	ErrGameNotFound       = errors.New("game not found")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrPlayerNotFound     = errors.New("player or game not found")
	ErrGameNotStarted     = errors.New("game not in progress")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrBadPosition        = errors.New("invalid position")
	ErrCellOccupied       = errors.New("cell occupied")
)

// Failure pairs a state-conflict class with the message the client sees.
// Anything that is not a Failure is a storage error and becomes a generic
// server-error response.
type Failure struct {
	Class   error
	Message string
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Class }

func failf(class error, format string, args ...any) *Failure {
	return &Failure{Class: class, Message: fmt.Sprintf(format, args...)}
}

// GameService is the session lifecycle state machine. Every method maps one
// protocol operation to one transaction against the store; either all of a
// transition's reads and writes apply, or none do.
type GameService struct {
	store   *repository.Store
	games   *repository.GameRepository
	players *repository.PlayerRepository
}

func NewGameService(db *pgxpool.Pool) *GameService {
	return &GameService{
		store:   repository.NewStore(db),
		games:   repository.NewGameRepository(db),
		players: repository.NewPlayerRepository(db),
	}
}

// CreateGame inserts a new UNSTARTED game with an empty board and its first
// player, who always holds x. Returns the new player's id.
func (s *GameService) CreateGame(ctx context.Context, name string) (int64, error) {
	var playerID int64

	err := s.store.RunTransaction(ctx, func(tx pgx.Tx) error {
		g := &domain.Game{
			Name:   name,
			Status: domain.StatusUnstarted,
			Turn:   domain.SymbolX,
			Board:  board.EmptyBoard,
		}
		if err := s.games.InsertTx(ctx, tx, g); err != nil {
			if repository.IsUniqueViolation(err) {
				return failf(ErrDuplicateGame, "Can't create duplicated game: %s", name)
			}
			return err
		}

		p := &domain.Player{GameName: name, Symbol: domain.SymbolX}
		if err := s.players.InsertTx(ctx, tx, p); err != nil {
			return err
		}
		playerID = p.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("game created", "game", name, "player_id", playerID)
	return playerID, nil
}

// JoinGame binds a second player (always o) to an UNSTARTED game and starts
// it with x to move. The game row is locked before the state and capacity
// checks, so two concurrent joins cannot both succeed.
func (s *GameService) JoinGame(ctx context.Context, name string) (int64, error) {
	var playerID int64

	err := s.store.RunTransaction(ctx, func(tx pgx.Tx) error {
		g, err := s.games.GetForUpdateTx(ctx, tx, name)
		if errors.Is(err, pgx.ErrNoRows) {
			return failf(ErrGameNotFound, "Game not found: %s.", name)
		}
		if err != nil {
			return err
		}

		if g.Status != domain.StatusUnstarted {
			return failf(ErrGameAlreadyStarted, "Game has already %s: %s.", g.Status, name)
		}

		n, err := s.players.CountByGameTx(ctx, tx, name)
		if err != nil {
			return err
		}
		if n >= 2 {
			return failf(ErrGameAlreadyStarted, "Game has already STARTED: %s.", name)
		}

		p := &domain.Player{GameName: name, Symbol: domain.SymbolO}
		if err := s.players.InsertTx(ctx, tx, p); err != nil {
			return err
		}

		g.Status = domain.StatusStarted
		g.Turn = domain.SymbolX
		if err := s.games.UpdateTx(ctx, tx, g); err != nil {
			return err
		}

		playerID = p.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("game joined", "game", name, "player_id", playerID)
	return playerID, nil
}

// PlayerView computes a player's view of their game. Reads both rows in one
// transaction for a consistent snapshot; mutates nothing, so repeated polls
// without an intervening placement return identical views.
func (s *GameService) PlayerView(ctx context.Context, playerID int64) (domain.View, error) {
	var view domain.View

	err := s.store.RunTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.players.GetTx(ctx, tx, playerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return failf(ErrPlayerNotFound, "Game or player with id=%d not found", playerID)
		}
		if err != nil {
			return err
		}

		g, err := s.games.GetTx(ctx, tx, p.GameName)
		if errors.Is(err, pgx.ErrNoRows) {
			return failf(ErrPlayerNotFound, "Game or player with id=%d not found", playerID)
		}
		if err != nil {
			return err
		}

		view = domain.ComputeView(g, p)
		return nil
	})
	return view, err
}

// PlaceResult is the outcome of an accepted placement.
type PlaceResult struct {
	Board    string
	Finished bool
	Won      bool // the mover's own line completed
}

// PlaceMark writes the player's mark at position. Validation order: game
// STARTED, player's turn, position on the board, cell empty. Only the
// mover's own lines are checked afterwards; the adversary cannot have a
// line that did not exist before this move. On a win or a full board the
// game becomes FINISHED, otherwise the turn flips to the adversary.
func (s *GameService) PlaceMark(ctx context.Context, playerID int64, position int) (PlaceResult, error) {
	var res PlaceResult

	err := s.store.RunTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.players.GetTx(ctx, tx, playerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return failf(ErrPlayerNotFound, "Game or player with id=%d not found", playerID)
		}
		if err != nil {
			return err
		}

		g, err := s.games.GetForUpdateTx(ctx, tx, p.GameName)
		if errors.Is(err, pgx.ErrNoRows) {
			return failf(ErrPlayerNotFound, "Game or player with id=%d not found", playerID)
		}
		if err != nil {
			return err
		}

		if g.Status != domain.StatusStarted {
			return failf(ErrGameNotStarted, "Game is %s: %s", g.Status, g.Name)
		}
		if g.Turn != p.Symbol {
			return failf(ErrNotYourTurn, "Current turn not for '%s'", p.Symbol)
		}
		if position < 0 || position >= board.Size {
			return failf(ErrBadPosition, "Position %d is off the board", position)
		}
		if !board.IsLegalPlacement(g.Board, position) {
			return failf(ErrCellOccupied, "Position %d not available on %s", position, g.Board)
		}

		g.Board = board.Place(g.Board, position, p.Symbol.Mark())

		won := board.EvaluateLine(p.Symbol.Mark(), g.Board) != board.None
		if won || board.IsFull(g.Board) {
			g.Status = domain.StatusFinished
		} else {
			g.Turn = p.Symbol.Adversary()
		}

		if err := s.games.UpdateTx(ctx, tx, g); err != nil {
			return err
		}

		res = PlaceResult{
			Board:    g.Board,
			Finished: g.Status == domain.StatusFinished,
			Won:      won,
		}
		return nil
	})
	return res, err
}

// ListGames returns every game ordered by name.
func (s *GameService) ListGames(ctx context.Context) ([]*domain.Game, error) {
	return s.games.List(ctx)
}

// ResetAll deletes every player and game row in one transaction.
// Administrative only; nothing in the player-facing protocol reaches it.
func (s *GameService) ResetAll(ctx context.Context) error {
	err := s.store.RunTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.players.DeleteAllTx(ctx, tx); err != nil {
			return err
		}
		return s.games.DeleteAllTx(ctx, tx)
	})
	if err != nil {
		return err
	}

	logger.Info("database tables reset")
	return nil
}
