package repository

import (
	"context"

	"tictactoe_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerRepository struct {
	db *pgxpool.Pool
}

func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// InsertTx inserts a player row and fills in the server-issued id.
func (r *PlayerRepository) InsertTx(ctx context.Context, tx pgx.Tx, p *domain.Player) error {
	return tx.QueryRow(ctx,
		`INSERT INTO players (game_name, symbol) VALUES ($1, $2) RETURNING id`,
		p.GameName, p.Symbol,
	).Scan(&p.ID)
}

// GetTx reads one player row inside tx. Returns pgx.ErrNoRows when absent.
func (r *PlayerRepository) GetTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.Player, error) {
	p := &domain.Player{ID: id}
	err := tx.QueryRow(ctx,
		`SELECT game_name, symbol FROM players WHERE id=$1`,
		id,
	).Scan(&p.GameName, &p.Symbol)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CountByGameTx counts players bound to a game. Called with the game row
// locked, so the capacity check cannot race a concurrent join.
func (r *PlayerRepository) CountByGameTx(ctx context.Context, tx pgx.Tx, gameName string) (int, error) {
	var n int
	err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM players WHERE game_name=$1`,
		gameName,
	).Scan(&n)
	return n, err
}

// DeleteAllTx wipes the players table.
func (r *PlayerRepository) DeleteAllTx(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DELETE FROM players`)
	return err
}
