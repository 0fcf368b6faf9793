package client

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caixa/internal/service"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			RenderList(svc)
			return nil
		},
	}
}

// RenderList prints all clients on file. Also used by the menu.
func RenderList(svc *service.Service) {
	clients := svc.Client.List()
	if len(clients) == 0 {
		pterm.Info.Println("No clients registered yet")
		return
	}

	tableData := pterm.TableData{{"CPF", "Name", "Birth date", "Address", "Accounts"}}
	for _, c := range clients {
		tableData = append(tableData, []string{
			c.CPF, c.Name, c.BirthDate, c.Address,
			fmt.Sprintf("%d", len(c.Accounts())),
		})
	}

	pterm.DefaultSection.Printf("Clients")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d clients\n", len(clients))
}
