package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Создает таблицы парков и троп и завершает работу",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, db, err := setup(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer db.Close()
			log.Info("схема базы данных актуальна")
			return nil
		},
	}
}
