package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caixa/internal/service"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			RenderList(svc)
			return nil
		},
	}
}

// RenderList prints every account with its holder and balance. Also used by
// the menu.
func RenderList(svc *service.Service) {
	accounts := svc.Account.List()
	if len(accounts) == 0 {
		pterm.Info.Println("No accounts opened yet")
		return
	}

	tableData := pterm.TableData{{"Account", "Agency", "Holder", "Balance"}}
	for _, a := range accounts {
		holder := a.ClientCPF
		if c, err := svc.Client.Get(a.ClientCPF); err == nil {
			holder = c.Name
		}
		tableData = append(tableData, []string{
			a.Number, a.Agency, holder, svc.Account.BalanceFormatted(a),
		})
	}

	pterm.DefaultSection.Printf("Accounts")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}
