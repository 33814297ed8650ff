package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/xlsx"
)

func init() {
	rootCmd.AddCommand(exportLedgerCmd)
	exportLedgerCmd.Flags().String("date", "", "Fecha de corte YYYY-MM-DD (por defecto hoy)")
	exportLedgerCmd.Flags().String("out", "", "Ruta del XLSX (por defecto el nombre sugerido)")
	exportLedgerCmd.Flags().Bool("outstanding", false, "Solo personal con saldo pendiente")
}

var exportLedgerCmd = &cobra.Command{
	Use:   "export-ledger",
	Short: "Exportar el libro de personal a XLSX",
	Args:  cobra.NoArgs,
	RunE:  runExportLedger,
}

func runExportLedger(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString("date")
	out, _ := cmd.Flags().GetString("out")
	outstanding, _ := cmd.Flags().GetBool("outstanding")

	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	day, err := e.dayFlag(dateFlag)
	if err != nil {
		return err
	}

	uc := ledger.NewPersonnelLedgerUseCase(
		postgres.NewPersonnelRepository(e.pool),
		postgres.NewPayrollRepository(e.pool),
		postgres.NewWorkOrderRepository(e.pool),
		xlsx.NewExcelizeGenerator(),
		e.clock, nil, e.log,
	)
	content, filename, err := uc.Export(ctx, ledger.LedgerQuery{Date: day, OnlyOutstanding: outstanding})
	if err != nil {
		return err
	}
	if out == "" {
		out = filename
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Libro exportado en %s\n", out)
	return nil
}
