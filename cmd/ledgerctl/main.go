// Command ledgerctl tareas de operación sobre el libro: migraciones, reparación
// de saldos de nómina y exportación de resúmenes diarios.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Temizlik-api/pkg/config"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "ledgerctl",
	Short:         "Operaciones del libro de personal, caja y cobranzas",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log detallado en consola")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env recursos compartidos por los subcomandos que tocan la base.
type env struct {
	cfg   *config.Config
	log   *logger.Logger
	pool  *pgxpool.Pool
	clock ledger.SystemClock
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level})
	return cfg, log, nil
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &env{cfg: cfg, log: log, pool: pool, clock: ledger.SystemClock{Loc: loc}}, nil
}

func (e *env) Close() { e.pool.Close() }

// dayFlag interpreta --date; vacío es hoy en la zona del libro.
func (e *env) dayFlag(s string) (time.Time, error) {
	if s == "" {
		return e.clock.Today(), nil
	}
	day, err := entity.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date %q: formato esperado YYYY-MM-DD", s)
	}
	return day, nil
}
