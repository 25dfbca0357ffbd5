// Package output holds event sinks that live outside the simulator,
// currently the Postgres archive.
package output

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stovetop-games/brigade/internal/models"
)

// PostgresOutput archives every event as a jsonb row, one table per topic
// category resolved through topicToTable.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(ctx context.Context, config models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	p := &PostgresOutput{pool: pool}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresOutput) ensureSchema(ctx context.Context) error {
	tables := []string{
		"fact_service",
		"fact_inspection",
		"fact_leaderboard",
		"fact_scouting",
	}
	for _, table := range tables {
		query := fmt.Sprintf(`
            CREATE TABLE IF NOT EXISTS %s (
                id BIGSERIAL PRIMARY KEY,
                topic TEXT NOT NULL,
                recorded_at TIMESTAMPTZ NOT NULL,
                payload JSONB NOT NULL
            )
        `, table)
		if _, err := p.pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := fmt.Sprintf(
		"INSERT INTO %s (topic, recorded_at, payload) VALUES ($1, $2, $3)",
		topicToTable(topic),
	)
	if _, err := p.pool.Exec(ctx, query, topic, time.Now(), msg); err != nil {
		return fmt.Errorf("failed to insert %s event: %w", topic, err)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}

func topicToTable(topic string) string {
	tableMap := map[string]string{
		"service_results": "fact_service",
		"inspections":     "fact_inspection",
		"leaderboards":    "fact_leaderboard",
		"scouting":        "fact_scouting",
	}
	if table, ok := tableMap[topic]; ok {
		return table
	}
	return "fact_" + topic
}
