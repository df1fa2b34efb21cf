package main

import (
	"context"
	"errors"

	"github.com/Tibebua/NationalPark/internal/bot"
	"github.com/Tibebua/NationalPark/internal/config"
	"github.com/Tibebua/NationalPark/internal/logger"
	"github.com/Tibebua/NationalPark/internal/repository"
	"github.com/Tibebua/NationalPark/internal/service"
	"github.com/Tibebua/NationalPark/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
)

var errNoToken = errors.New("не указан токен бота (BOT_TOKEN)")

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "parky-bot",
		Short:        "Telegram-бот для просмотра национальных парков и троп",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "путь к YAML-файлу конфигурации")
	return cmd
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	if cfg.Bot.Token == "" {
		log.Error("Не указан токен бота (BOT_TOKEN)")
		return errNoToken
	}

	// Подключение к базе данных
	db, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Error("DB connection failed", "err", err)
		return err
	}
	defer db.Close()
	if err := storage.Migrate(ctx, db, log); err != nil {
		log.Error("ошибка применения схемы", "err", err)
		return err
	}

	// Инициализация репозиториев и сервисов
	parkService := service.NewNationalParkService(repository.NewNationalParkRepository(db))
	trailService := service.NewTrailService(repository.NewTrailRepository(db))
	dispatcher := bot.NewDispatcher(parkService, trailService, log)

	// Инициализация Telegram Bot API
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		log.Error("Ошибка инициализации бота", "err", err)
		return err
	}
	log.Info("Запущен бот", "username", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			log.Info("бот остановлен")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			for _, reply := range dispatcher.Handle(ctx, update) {
				if _, err := api.Request(reply); err != nil {
					log.Error("не удалось отправить ответ", "update_id", update.UpdateID, "err", err)
				}
			}
		}
	}
}
