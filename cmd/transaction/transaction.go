// Package transaction holds the deposit and withdraw commands.
package transaction

import (
	"github.com/spf13/cobra"

	"caixa/internal/service"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Move money in and out of accounts",
	}

	cmd.AddCommand(NewDepositCmd(svc))
	cmd.AddCommand(NewWithdrawCmd(svc))

	return cmd
}
