package repository

import (
	"context"

	"tictactoe_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// InsertTx inserts a new game row. A duplicate name surfaces as a unique
// violation (see IsUniqueViolation).
func (r *GameRepository) InsertTx(ctx context.Context, tx pgx.Tx, g *domain.Game) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO games (name, status, turn, board) VALUES ($1, $2, $3, $4)`,
		g.Name, g.Status, g.Turn, g.Board,
	)
	return err
}

// GetTx reads one game row inside tx. Returns pgx.ErrNoRows when absent.
func (r *GameRepository) GetTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Game, error) {
	g := &domain.Game{Name: name}
	err := tx.QueryRow(ctx,
		`SELECT status, turn, board FROM games WHERE name=$1`,
		name,
	).Scan(&g.Status, &g.Turn, &g.Board)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GetForUpdateTx reads one game row and locks it for the rest of the
// transaction. Concurrent joins and placements against the same game
// serialize on this lock.
func (r *GameRepository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Game, error) {
	g := &domain.Game{Name: name}
	err := tx.QueryRow(ctx,
		`SELECT status, turn, board FROM games WHERE name=$1 FOR UPDATE`,
		name,
	).Scan(&g.Status, &g.Turn, &g.Board)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateTx writes back a game's status, turn and board.
func (r *GameRepository) UpdateTx(ctx context.Context, tx pgx.Tx, g *domain.Game) error {
	_, err := tx.Exec(ctx,
		`UPDATE games SET status=$1, turn=$2, board=$3 WHERE name=$4`,
		g.Status, g.Turn, g.Board, g.Name,
	)
	return err
}

// List returns all games ordered by name. Read-only, no lock.
func (r *GameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, status, turn, board FROM games ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Game
	for rows.Next() {
		g := &domain.Game{}
		if err := rows.Scan(&g.Name, &g.Status, &g.Turn, &g.Board); err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, rows.Err()
}

// DeleteAllTx wipes the games table. Player rows must go first (FK).
func (r *GameRepository) DeleteAllTx(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DELETE FROM games`)
	return err
}
