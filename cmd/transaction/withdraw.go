package transaction

import (
	"github.com/spf13/cobra"

	"caixa/internal/service"
	"caixa/internal/ui/prompts"
)

// Command-line flags
var (
	withdrawCPF     string
	withdrawAccount string
	withdrawAmount  string
)

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw money from an account.",
		Long: `Withdraw money from one of a client's accounts, subject to the
per-withdrawal ceiling, the withdrawal count limit and the available
balance.

Example: caixa transaction withdraw --cpf 12345678901 --account 1 -m 50.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("cpf") {
				return runWithdrawFlags(svc)
			}
			return RunWithdrawInteractive(svc)
		},
	}

	cmd.Flags().StringVar(&withdrawCPF, "cpf", "", "Owner's CPF")
	cmd.Flags().StringVarP(&withdrawAccount, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&withdrawAmount, "amount", "m", "", "Amount (e.g. 50.00)")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func runWithdrawFlags(svc *service.Service) error {
	cpf, number, amount, err := parseFlags(svc, withdrawCPF, withdrawAccount, withdrawAmount)
	if err != nil {
		return err
	}

	a, err := svc.Transaction.Withdraw(cpf, number, amount)
	if err != nil {
		return err
	}
	return report(svc, "Withdrew %s from account %s. Balance: %s",
		amount, a.Number, a.Balance())
}

// RunWithdrawInteractive walks the user through a withdrawal. Also used by
// the menu.
func RunWithdrawInteractive(svc *service.Service) error {
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
	amount, err := prompts.PromptAmount("Amount to withdraw:")
	if err != nil {
		return err
	}

	a, err := svc.Transaction.Withdraw(cpf, picked.Number, amount)
	if err != nil {
		return err
	}
	return report(svc, "Withdrew %s from account %s. Balance: %s",
		amount, a.Number, a.Balance())
}
