package cmd

import (
	"github.com/pterm/pterm"

	"caixa/cmd/account"
	"caixa/cmd/client"
	"caixa/cmd/transaction"
	"caixa/internal/cep"
	"caixa/internal/errhandler"
	"caixa/internal/service"
	"caixa/internal/ui"
	"caixa/internal/ui/prompts"
)

const (
	menuDeposit      = "Deposit"
	menuWithdraw     = "Withdraw"
	menuStatement    = "Statement"
	menuNewClient    = "New client"
	menuNewAccount   = "New account"
	menuListAccounts = "List accounts"
	menuListClients  = "List clients"
	menuSave         = "Save"
	menuQuit         = "Quit"
)

// runMenu is the interactive session: one action at a time until the user
// quits. Quitting saves the ledger, like the explicit save action does.
func runMenu(svc *service.Service, cepClient *cep.Client) error {
	ui.PrintTitle("caixa")

	options := []string{
		menuDeposit, menuWithdraw, menuStatement,
		menuNewClient, menuNewAccount,
		menuListAccounts, menuListClients,
		menuSave, menuQuit,
	}

	for {
		choice, err := prompts.PromptSelect("What would you like to do?", options)
		if err != nil {
			// Backing out of the menu means quitting.
			choice = menuQuit
		}

		switch choice {
		case menuDeposit:
			err = transaction.RunDepositInteractive(svc)
		case menuWithdraw:
			err = transaction.RunWithdrawInteractive(svc)
		case menuStatement:
			err = account.RunStatementInteractive(svc)
		case menuNewClient:
			err = client.RunCreateInteractive(svc, cepClient)
		case menuNewAccount:
			err = account.RunOpenInteractive(svc)
		case menuListAccounts:
			account.RenderList(svc)
		case menuListClients:
			client.RenderList(svc)
		case menuSave:
			if err = svc.Save(); err == nil {
				pterm.Success.Println("Ledger saved")
			}
		case menuQuit:
			if err := svc.Save(); err != nil {
				pterm.Error.Println(capitalize(err.Error()))
			}
			return nil
		}

		if err != nil {
			if errhandler.IsAbort(err) {
				pterm.Warning.Println("Operation Cancelled")
				continue
			}
			pterm.Error.Println(capitalize(err.Error()))
		}

		pterm.Println()
	}
}
