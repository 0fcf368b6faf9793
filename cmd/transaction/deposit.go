package transaction

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caixa/internal/money"
	"caixa/internal/service"
	"caixa/internal/ui/prompts"
	"caixa/internal/validation"
)

// Command-line flags
var (
	depositCPF     string
	depositAccount string
	depositAmount  string
)

func NewDepositCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit money into an account.",
		Long: `Deposit money into one of a client's accounts. The amount must be
positive; the transaction is appended to the account's history.

Example: caixa transaction deposit --cpf 12345678901 --account 1 -m 150.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("cpf") {
				return runDepositFlags(svc)
			}
			return RunDepositInteractive(svc)
		},
	}

	cmd.Flags().StringVar(&depositCPF, "cpf", "", "Owner's CPF")
	cmd.Flags().StringVarP(&depositAccount, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&depositAmount, "amount", "m", "", "Amount (e.g. 150.00)")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func runDepositFlags(svc *service.Service) error {
	cpf, number, amount, err := parseFlags(svc, depositCPF, depositAccount, depositAmount)
	if err != nil {
		return err
	}

	a, err := svc.Transaction.Deposit(cpf, number, amount)
	if err != nil {
		return err
	}
	return report(svc, "Deposited %s into account %s. Balance: %s",
		amount, a.Number, a.Balance())
}

// RunDepositInteractive walks the user through a deposit. Also used by
// the menu.
func RunDepositInteractive(svc *service.Service) error {
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
	amount, err := prompts.PromptAmount("Amount to deposit:")
	if err != nil {
		return err
	}

	a, err := svc.Transaction.Deposit(cpf, picked.Number, amount)
	if err != nil {
		return err
	}
	return report(svc, "Deposited %s into account %s. Balance: %s",
		amount, a.Number, a.Balance())
}

// parseFlags validates the shared --cpf/--account/--amount trio. A missing
// account number resolves only when the client has exactly one account; flags
// mode never falls back to a prompt.
func parseFlags(svc *service.Service, cpfFlag, accountFlag, amountFlag string) (cpf, number string, amount int64, err error) {
	if err = validation.ValidateCPF(cpfFlag); err != nil {
		return "", "", 0, err
	}
	if err = validation.ValidateAmount(amountFlag); err != nil {
		return "", "", 0, err
	}
	amount, err = money.Parse(amountFlag)
	if err != nil {
		return "", "", 0, err
	}

	number, err = svc.Account.Resolve(cpfFlag, accountFlag)
	if err != nil {
		return "", "", 0, err
	}

	return cpfFlag, number, amount, nil
}

// report saves the ledger and prints the success line. The transaction is
// already applied; a failed save names that explicitly.
func report(svc *service.Service, format string, amount int64, number string, balance int64) error {
	if err := svc.Save(); err != nil {
		return fmt.Errorf("transaction recorded but saving failed: %w", err)
	}
	pterm.Success.Printf(format+"\n", money.FormatBRL(amount), number, money.FormatBRL(balance))
	return nil
}
