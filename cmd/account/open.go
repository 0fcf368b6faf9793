package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caixa/internal/ledger"
	"caixa/internal/money"
	"caixa/internal/service"
	"caixa/internal/ui"
	"caixa/internal/ui/prompts"
	"caixa/internal/validation"
)

// Command-line flags
var (
	openCPF     string
	openBalance string
)

func NewOpenCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a checking account for a registered client.",
		Long: `Open a checking account for a registered client. The account gets
the next sequential number; an opening balance, when given, is recorded
as a regular deposit.

Example: caixa account open --cpf 12345678901 -b 150.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("cpf") {
				return runOpenFlags(svc)
			}
			return RunOpenInteractive(svc)
		},
	}

	cmd.Flags().StringVar(&openCPF, "cpf", "", "Owner's CPF")
	cmd.Flags().StringVarP(&openBalance, "balance", "b", "0", "Opening balance (e.g. 150.00)")

	return cmd
}

func runOpenFlags(svc *service.Service) error {
	if err := validation.ValidateCPF(openCPF); err != nil {
		return err
	}
	if err := validation.ValidateOpeningBalance(openBalance); err != nil {
		return err
	}
	opening, err := money.Parse(openBalance)
	if err != nil {
		return err
	}

	return openAndReport(svc, openCPF, opening)
}

// RunOpenInteractive asks for the owner and opening balance. Also used by
// the menu.
func RunOpenInteractive(svc *service.Service) error {
	cpf, err := prompts.PromptCPF()
	if err != nil {
		return err
	}
	if _, err := svc.Client.Get(cpf); err != nil {
		return err
	}

	raw, err := prompts.PromptInput("Opening balance (press Enter for 0):", "0", validation.ValidateOpeningBalance)
	if err != nil {
		return err
	}
	opening, err := money.Parse(raw)
	if err != nil {
		return err
	}

	return openAndReport(svc, cpf, opening)
}

func openAndReport(svc *service.Service, cpf string, opening int64) error {
	a, err := svc.Account.Open(cpf, opening)
	if err != nil {
		return err
	}
	if err := svc.Save(); err != nil {
		return fmt.Errorf("account opened but saving failed: %w", err)
	}

	displayOpenSummary(svc, a)
	pterm.Success.Println("Account opened successfully!")
	return nil
}

func displayOpenSummary(svc *service.Service, a *ledger.Account) {
	holder := a.ClientCPF
	if c, err := svc.Client.Get(a.ClientCPF); err == nil {
		holder = fmt.Sprintf("%s (%s)", c.Name, c.CPF)
	}

	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account"), a.Number},
		{pterm.Blue("Agency"), a.Agency},
		{pterm.Blue("Holder"), holder},
		{pterm.Blue("Balance"), money.FormatBRL(a.Balance())},
	}
	pterm.DefaultTable.WithData(tableData).Render()
}
