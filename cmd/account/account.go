package account

import (
	"github.com/spf13/cobra"

	"caixa/internal/service"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open accounts, list them and show statements.",
		Long:  `Open accounts, list them and show statements.`,
	}

	accountCmd.AddCommand(NewOpenCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewStatementCmd(svc))

	return accountCmd
}
