package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCartSlot struct {
	db *pgxpool.Pool
}

func NewPostgresCartSlot(db *pgxpool.Pool) *PostgresCartSlot {
	return &PostgresCartSlot{db: db}
}

func (s *PostgresCartSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, `SELECT payload FROM cart_slots WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load cart slot %s: %w", key, err)
	}
	return payload, nil
}

func (s *PostgresCartSlot) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO cart_slots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("save cart slot %s: %w", key, err)
	}
	return nil
}

func (s *PostgresCartSlot) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM cart_slots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete cart slot %s: %w", key, err)
	}
	return nil
}
