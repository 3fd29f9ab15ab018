package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/wcaresults/config"
	"github.com/padraicbc/wcaresults/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Event)(nil),
		(*models.Competition)(nil),
		(*models.Result)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS results_round ON results (competition_id, event_id, round_type_id)`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'results_no_dupes') THEN ALTER TABLE results ADD CONSTRAINT results_no_dupes UNIQUE (competition_id, event_id, round_type_id, person_id); END IF; END $$`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("index: %v", err)
		}
	}

	return nil
}

// SeedEvents upserts the event catalogue.
func SeedEvents(ctx context.Context, db bun.IDB) error {
	events := make([]models.Event, len(models.OfficialEvents))
	copy(events, models.OfficialEvents)

	_, err := db.NewInsert().Model(&events).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("format = EXCLUDED.format").
		Set("rank = EXCLUDED.rank").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("seeding events: %w", err)
	}
	return nil
}
