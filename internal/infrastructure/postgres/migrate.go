package postgres

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql драйвер "pgx" для goose
	"github.com/pressly/goose/v3"

	"github.com/restsystem/restaurant-api/pkg/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate прогоняет goose-миграции до актуальной версии. Вызывается один раз
// при старте процесса, до открытия HTTP-порта; сами миграции идемпотентны.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	db, err := goose.OpenDBWithDriver("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("открытие соединения для миграций: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("применение миграций: %w", err)
	}
	return nil
}
