package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Tibebua/NationalPark/internal/config"
	"github.com/Tibebua/NationalPark/internal/handler"
	"github.com/Tibebua/NationalPark/internal/logger"
	"github.com/Tibebua/NationalPark/internal/metrics"
	"github.com/Tibebua/NationalPark/internal/repository"
	"github.com/Tibebua/NationalPark/internal/service"
	"github.com/Tibebua/NationalPark/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "parky-api",
		Short:        "HTTP API национальных парков и троп",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "путь к YAML-файлу конфигурации")
	cmd.AddCommand(newMigrateCmd(&configPath))
	return cmd
}

// setup загружает конфигурацию, подключается к базе и применяет схему.
func setup(ctx context.Context, configPath string) (*config.Config, *slog.Logger, *sqlx.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(cfg.Log)

	db, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Error("не удалось подключиться к базе данных", "err", err)
		return nil, nil, nil, err
	}
	if err := storage.Migrate(ctx, db, log); err != nil {
		db.Close()
		log.Error("ошибка применения схемы", "err", err)
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func serve(ctx context.Context, configPath string) error {
	cfg, log, db, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Инициализируем репозитории и сервисы
	parkService := service.NewNationalParkService(repository.NewNationalParkRepository(db))
	trailService := service.NewTrailService(repository.NewTrailRepository(db))

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.NewHandler(parkService, trailService, log), metrics.New())

	srv := &http.Server{
		Addr:              ":" + cfg.API.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("API запущен", "addr", srv.Addr, "driver", cfg.DB.Driver)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("остановка API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
