// Package testdb поднимает базу SQLite в памяти со схемой приложения для тестов.
package testdb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Tibebua/NationalPark/internal/config"
	"github.com/Tibebua/NationalPark/internal/storage"

	"github.com/jmoiron/sqlx"
)

// New возвращает чистую базу с примененной схемой и включенными внешними ключами.
// База закрывается по окончании теста.
func New(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	// строка подключения та же, что у рабочей конфигурации SQLite
	db, err := storage.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Name: ":memory:"})
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("testdb: %v", err)
	}
	return db
}
