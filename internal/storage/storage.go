// Package storage открывает подключение к базе данных и создает схему.
package storage

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"

	"github.com/Tibebua/NationalPark/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"    // PostgreSQL драйвер
	_ "modernc.org/sqlite" // SQLite драйвер (локальная разработка и тесты)
)

//go:embed migrations/*/*.sql
var migrations embed.FS

// Open подключается к базе данных, указанной в cfg, и проверяет соединение.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных (%s): %w", cfg.Driver, err)
	}
	if cfg.Driver == config.DriverSQLite {
		// SQLite не допускает параллельной записи; единственное соединение
		// также сохраняет действие прагмы ниже
		db.SetMaxOpenConns(1)
		// внешние ключи включаются и для DSN, заданного вручную через DB_DSN
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("не удалось включить внешние ключи SQLite: %w", err)
		}
	}
	return db, nil
}

// Migrate применяет SQL-файлы схемы для драйвера db по порядку имен.
// Каждый файл выполняется в отдельной транзакции; файлы идемпотентны.
func Migrate(ctx context.Context, db *sqlx.DB, log *slog.Logger) error {
	dir := path.Join("migrations", db.DriverName())
	files, err := fs.Glob(migrations, path.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("ошибка поиска файлов миграций: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("нет миграций для драйвера %q", db.DriverName())
	}
	sort.Strings(files)

	for _, file := range files {
		if err := applyFile(ctx, db, file); err != nil {
			return err
		}
		log.Info("миграция применена", "file", path.Base(file))
	}
	return nil
}

func applyFile(ctx context.Context, db *sqlx.DB, file string) error {
	content, err := migrations.ReadFile(file)
	if err != nil {
		return fmt.Errorf("не удалось прочитать миграцию %s: %w", file, err)
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при инициации транзакции миграции: %w", err)
	}
	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("миграция %s завершилась ошибкой: %w", path.Base(file), err)
	}
	return tx.Commit()
}
