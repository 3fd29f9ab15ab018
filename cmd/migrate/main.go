// cmd/migrate/main.go
// Imports competitions and results from a legacy MySQL results database
// (the cubing_results export) into the local PostgreSQL database.
//
// Multi-blindfolded values are re-encoded on the way in, so values packed
// with the old generation layout are stored in the current one.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/cubing_results?parseTime=true" \
//	DB_PASS="pgpass" JWT_SECRET=unused \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/wcaresults/config"
	bundb "github.com/padraicbc/wcaresults/db"
	applog "github.com/padraicbc/wcaresults/logger"
	"github.com/padraicbc/wcaresults/models"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logger, err := applog.New("migrate", cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		logger.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/cubing_results?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("open mysql", zap.Error(err))
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		logger.Fatal("ping mysql", zap.Error(err))
	}
	logger.Info("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	logger.Info("connected to PostgreSQL")

	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		logger.Fatal("create tables", zap.Error(err))
	}
	if err := bundb.SeedEvents(ctx, pgDB); err != nil {
		logger.Fatal("seed events", zap.Error(err))
	}

	m := &migrator{my: myDB, pg: pgDB, batchSize: cfg.MigrateBatchSize, log: logger}
	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{"competitions", m.competitions},
		{"results", m.results},
	}

	for _, s := range steps {
		n, err := s.fn(ctx)
		if err != nil {
			logger.Fatal("migrate failed", zap.String("step", s.name), zap.Error(err))
		}
		logger.Info("migrated", zap.String("step", s.name), zap.Int("rows", n))
	}

	resetSequences(ctx, pgDB, logger)
	logger.Info("migration complete",
		zap.Int("multi_values_normalised", m.normalised),
		zap.Int("unknown_events", m.unknownEvents),
	)
}

type migrator struct {
	my        *sql.DB
	pg        *bun.DB
	batchSize int
	log       *zap.Logger

	normalised    int
	unknownEvents int
}

// bulkInsert inserts a batch, skipping rows that already exist (idempotent re-runs).
func bulkInsert[T any](ctx context.Context, pgDB *bun.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pgDB.NewInsert().Model(&rows).On("CONFLICT DO NOTHING").Exec(ctx)
	return err
}

func (m *migrator) competitions(ctx context.Context) (int, error) {
	rows, err := m.my.QueryContext(ctx,
		`SELECT id, name,
		        CONCAT(year, '-', LPAD(month, 2, '0'), '-', LPAD(day, 2, '0')),
		        CONCAT(year, '-', LPAD(endMonth, 2, '0'), '-', LPAD(endDay, 2, '0'))
		 FROM Competitions`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Competition
	total := 0
	for rows.Next() {
		var r models.Competition
		if err := rows.Scan(&r.ID, &r.Name, &r.StartDate, &r.EndDate); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= m.batchSize {
			if err := bulkInsert(ctx, m.pg, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, m.pg, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func (m *migrator) results(ctx context.Context) (int, error) {
	rows, err := m.my.QueryContext(ctx,
		`SELECT id, competitionId, eventId, roundTypeId, formatId, pos,
		        personId, personName, best, average,
		        value1, value2, value3, value4, value5
		 FROM Results ORDER BY id`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Result
	total := 0
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(&r.ID, &r.CompetitionID, &r.EventID, &r.RoundTypeID, &r.FormatID, &r.Pos,
			&r.PersonID, &r.PersonName, &r.Best, &r.Average,
			&r.Value1, &r.Value2, &r.Value3, &r.Value4, &r.Value5); err != nil {
			return total, err
		}

		ev, err := models.FindEvent(r.EventID)
		if err != nil {
			m.unknownEvents++
			m.log.Warn("skipping result", zap.Int("id", r.ID), zap.Error(err))
			continue
		}
		m.normalised += normaliseResult(&r, ev)

		batch = append(batch, r)
		if len(batch) >= m.batchSize {
			if err := bulkInsert(ctx, m.pg, batch); err != nil {
				return total, fmt.Errorf("results batch ending at id %d: %w", r.ID, err)
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, m.pg, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

// resetSequences advances each PG sequence to MAX(id) so new inserts don't conflict.
func resetSequences(ctx context.Context, pgDB *bun.DB, logger *zap.Logger) {
	seqs := []struct{ seq, table, col string }{
		{"users_id_seq", "users", "id"},
		{"results_id_seq", "results", "id"},
	}
	for _, s := range seqs {
		q := fmt.Sprintf(
			"SELECT setval('%s', COALESCE((SELECT MAX(%s) FROM %s), 1))",
			s.seq, s.col, s.table,
		)
		if _, err := pgDB.ExecContext(ctx, q); err != nil {
			logger.Warn("reset sequence", zap.String("seq", s.seq), zap.Error(err))
		}
	}
	logger.Info("sequences reset")
}
