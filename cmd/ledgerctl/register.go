package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/postgres"
)

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().String("date", "", "Día de caja YYYY-MM-DD (por defecto hoy)")
	registerCmd.Flags().String("pdf", "", "Escribir el resumen en PDF en esta ruta")
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Resumen de caja diaria",
	Args:  cobra.NoArgs,
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString("date")
	pdfPath, _ := cmd.Flags().GetString("pdf")

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

	uc := ledger.NewCashRegisterUseCase(
		postgres.NewCollectionRepository(e.pool),
		postgres.NewExpenseRepository(e.pool),
		postgres.NewPayrollRepository(e.pool),
		pdf.NewMarotoRegisterGenerator(e.cfg.App.Name),
		e.clock, nil, e.log,
	)

	if pdfPath != "" {
		content, _, err := uc.DailyPDF(ctx, day)
		if err != nil {
			return err
		}
		if err := os.WriteFile(pdfPath, content, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", pdfPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PDF escrito en %s\n", pdfPath)
		return nil
	}

	out, err := uc.Get(ctx, day.Format("2006-01-02"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
