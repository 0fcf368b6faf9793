package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caixa/internal/constants"
	"caixa/internal/ledger"
	"caixa/internal/money"
	"caixa/internal/service"
	"caixa/internal/ui"
	"caixa/internal/ui/prompts"
	"caixa/internal/validation"
)

var (
	statementCPF     string
	statementAccount string
)

func NewStatementCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Show an account's transaction history and balance",
		Long: `Show every recorded transaction of an account, oldest first, followed
by the current balance.

Example: caixa account statement --cpf 12345678901 --account 1`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("cpf") {
				return runStatementFlags(svc)
			}
			return RunStatementInteractive(svc)
		},
	}

	cmd.Flags().StringVar(&statementCPF, "cpf", "", "Owner's CPF")
	cmd.Flags().StringVarP(&statementAccount, "account", "a", "", "Account number")

	return cmd
}

func runStatementFlags(svc *service.Service) error {
	if err := validation.ValidateCPF(statementCPF); err != nil {
		return err
	}

	number, err := svc.Account.Resolve(statementCPF, statementAccount)
	if err != nil {
		return err
	}

	a, entries, err := svc.Account.Statement(statementCPF, number)
	if err != nil {
		return err
	}

	renderStatement(a, entries)
	return nil
}

// RunStatementInteractive asks for the owner and account before rendering
// the statement. Also used by the menu.
func RunStatementInteractive(svc *service.Service) error {
	cpf, err := prompts.PromptCPF()
	if err != nil {
		return err
	}
	accounts, err := svc.Account.ForClient(cpf)
	if err != nil {
		return err
	}
	picked, err := prompts.PromptAccount(accounts)
	if err != nil {
		return err
	}

	a, entries, err := svc.Account.Statement(cpf, picked.Number)
	if err != nil {
		return err
	}

	renderStatement(a, entries)
	return nil
}

func renderStatement(a *ledger.Account, entries []ledger.Entry) {
	ui.PrintTitle("Statement - Account %s", a.Number)

	if len(entries) == 0 {
		pterm.Info.Println("No transactions recorded")
	} else {
		tableData := pterm.TableData{{"Date", "Transaction", "Amount"}}
		for _, e := range entries {
			tableData = append(tableData, []string{
				e.Time.Format(constants.TimeFormat),
				entryLabel(e.Kind),
				money.FormatBRL(e.Amount),
			})
		}
		pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	}

	ui.Separator()
	pterm.Info.Printf("Balance: %s\n", money.FormatBRL(a.Balance()))
}

func entryLabel(k ledger.Kind) string {
	switch k {
	case ledger.KindDeposit:
		return "Deposit"
	case ledger.KindWithdrawal:
		return "Withdrawal"
	default:
		return string(k)
	}
}
