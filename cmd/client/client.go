package client

import (
	"github.com/spf13/cobra"

	"caixa/internal/cep"
	"caixa/internal/service"
)

func NewClientCmd(svc *service.Service, cepClient *cep.Client) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Register clients and list the ones on file.",
		Long:  `Register clients and list the ones on file.`,
	}

	clientCmd.AddCommand(NewCreateCmd(svc, cepClient))
	clientCmd.AddCommand(NewListCmd(svc))

	return clientCmd
}
