package database

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateScratchDatabase creates an empty database and returns a pool connected to it.
// The database name is accessible via pool.Config().ConnConfig.Database.
func CreateScratchDatabase(ctx context.Context, adminPool *Pool) (*pgxpool.Pool, error) {
	timestamp := time.Now().Format("20060102_150405")
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, fmt.Errorf("failed to generate random suffix: %w", err)
	}
	dbName := fmt.Sprintf("clex_scratch_%s_%s", timestamp, hex.EncodeToString(randomBytes))

	_, err := adminPool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch database: %w", err)
	}

	// Keep every option of the admin connection (sslmode, etc.)
	config := adminPool.Pool.Config()
	config.ConnConfig.Database = dbName

	scratch, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		_, _ = adminPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName))
		return nil, fmt.Errorf("failed to connect to scratch database: %w", err)
	}

	return scratch, nil
}

// DropScratchDatabase closes the scratch pool and drops its underlying database.
func DropScratchDatabase(ctx context.Context, adminPool *Pool, scratch *pgxpool.Pool) error {
	if scratch == nil {
		return nil
	}
	scratch.Close()
	_, err := adminPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", scratch.Config().ConnConfig.Database))
	return err
}
