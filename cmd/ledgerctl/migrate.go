package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Temizlik-api/internal/infrastructure/postgres"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplicar o revertir el esquema embebido",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplicar migraciones pendientes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error { return m.Up() })
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revertir todas las migraciones (borra los datos)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error { return m.Down() })
	},
}

func withMigrator(fn func(*postgres.Migrator) error) (err error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(m)
}
