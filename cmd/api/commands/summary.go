package commands

import (
	"encoding/json"
	"fmt"

	"gestao_reparos/internal/app"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the financial summary of the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			s, err := application.Finance.FinancialSummary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			fmt.Fprintf(out, "Receita total:   R$ %.2f (%d serviços)\n", s.TotalRevenue, s.FinishedCount)
			fmt.Fprintf(out, "Despesas totais: R$ %.2f (%d despesas)\n", s.TotalExpenses, s.ExpenseCount)
			fmt.Fprintf(out, "Lucro líquido:   R$ %.2f\n", s.NetProfit)
			fmt.Fprintf(out, "Ticket médio:    R$ %.2f\n", s.AverageTicket)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
