package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // driver pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator aplica el esquema embebido en el binario.
type Migrator struct {
	m   *migrate.Migrate
	log *logger.Logger
}

// NewMigrator construye el migrador para la URL de conexión (postgres:// o postgresql://).
func NewMigrator(databaseURL string, log *logger.Logger) (*Migrator, error) {
	if log == nil {
		log = logger.NewNop()
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migraciones: abrir fuente: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("migraciones: conectar: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

// Up aplica las migraciones pendientes.
func (m *Migrator) Up() error {
	err := m.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info().Msg("migraciones: sin cambios")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migraciones up: %w", err)
	}
	version, dirty, err := m.m.Version()
	if err != nil {
		return fmt.Errorf("migraciones: versión: %w", err)
	}
	m.log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
	return nil
}

// Down revierte todas las migraciones.
func (m *Migrator) Down() error {
	err := m.m.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info().Msg("migraciones: nada que revertir")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migraciones down: %w", err)
	}
	m.log.Info().Msg("migraciones revertidas")
	return nil
}

// Close libera la fuente y la conexión.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

// pgx5URL cambia el esquema al del driver pgx/v5 de golang-migrate.
func pgx5URL(databaseURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
