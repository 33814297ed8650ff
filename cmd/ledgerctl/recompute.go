package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/postgres"
)

func init() {
	rootCmd.AddCommand(recomputeCmd)
	recomputeCmd.Flags().String("personnel", "", "UUID del personal; vacío recalcula todos")
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recalcular el saldo cacheado de nómina",
	Long: `Recalcula current_balance como suma(daily_wage − paid_amount) de todos los
registros de nómina hasta hoy. Con --personnel repara un solo personal; sin él
recorre todo el personal y continúa ante fallos individuales.`,
	Args: cobra.NoArgs,
	RunE: runRecompute,
}

func runRecompute(cmd *cobra.Command, args []string) error {
	personnelID, _ := cmd.Flags().GetString("personnel")

	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	uc := ledger.NewPayrollUseCase(
		postgres.NewTxRunner(e.pool),
		postgres.NewPersonnelRepository(e.pool),
		postgres.NewPayrollRepository(e.pool),
		nil, e.log,
	)

	var results []dto.RecomputeResultDTO
	if personnelID != "" {
		res, err := uc.Recompute(ctx, personnelID)
		if err != nil {
			return err
		}
		results = append(results, *res)
	} else {
		results, err = uc.RecomputeAll(ctx)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERSONAL\tNOMBRE\tANTERIOR\tACTUAL")
	for _, r := range results {
		mark := ""
		if !r.Previous.Equal(r.Current) {
			mark = " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\n", r.PersonnelID, r.Name, r.Previous.StringFixed(2), r.Current.StringFixed(2), mark)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}
