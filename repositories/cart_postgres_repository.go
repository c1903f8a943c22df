package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/config"
	"storefront/models"
)

// PostgresCartRepository keeps the snapshot in a single-row table keyed by
// the configured cart key. Still a key-value slot, just a durable one.
type PostgresCartRepository struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgresCartRepository(cfg *config.Config) (*PostgresCartRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	_, err = pool.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS cart_snapshots (
			key TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create cart_snapshots table: %w", err)
	}

	return &PostgresCartRepository{pool: pool, key: cfg.CartKey}, nil
}

func (r *PostgresCartRepository) Save(lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cart_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	_, err = r.pool.Exec(context.Background(), query, r.key, data)
	return err
}

func (r *PostgresCartRepository) Load() ([]models.CartLine, error) {
	var data []byte
	query := `SELECT data FROM cart_snapshots WHERE key = $1`
	if err := r.pool.QueryRow(context.Background(), query, r.key).Scan(&data); err != nil {
		return nil, ErrNoSnapshot
	}

	lines := []models.CartLine{}
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, ErrNoSnapshot
	}
	return lines, nil
}

func (r *PostgresCartRepository) Close() {
	r.pool.Close()
}
