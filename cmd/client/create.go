package client

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caixa/internal/cep"
	"caixa/internal/ledger"
	"caixa/internal/service"
	"caixa/internal/ui"
	"caixa/internal/ui/prompts"
	"caixa/internal/validation"
)

// Command-line flags
var (
	clientCPF     string
	clientName    string
	clientBirth   string
	clientAddress string
	clientCEP     string
)

func NewCreateCmd(svc *service.Service, cepClient *cep.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new client.",
		Long: `Register a new client by CPF. The postal address can be typed
directly with --address, or resolved from a CEP with --cep.

Example: caixa client create --cpf 12345678901 -n "Ana Lima" -b 01-01-1990 --cep 01001000`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("cpf") {
				return runCreateFlags(svc, cepClient)
			}
			return RunCreateInteractive(svc, cepClient)
		},
	}

	cmd.Flags().StringVar(&clientCPF, "cpf", "", "Client CPF (exactly 11 digits)")
	cmd.Flags().StringVarP(&clientName, "name", "n", "", "Full name")
	cmd.Flags().StringVarP(&clientBirth, "birth", "b", "", "Birth date (dd-mm-yyyy)")
	cmd.Flags().StringVarP(&clientAddress, "address", "a", "", "Postal address")
	cmd.Flags().StringVar(&clientCEP, "cep", "", "CEP to resolve the address from (8 digits)")

	return cmd
}

func runCreateFlags(svc *service.Service, cepClient *cep.Client) error {
	if err := validation.ValidateCPF(clientCPF); err != nil {
		return err
	}
	if err := validation.ValidateName(clientName); err != nil {
		return err
	}
	if err := validation.ValidateBirthDate(clientBirth); err != nil {
		return err
	}

	address := clientAddress
	if address == "" && clientCEP != "" {
		if err := validation.ValidateCEP(clientCEP); err != nil {
			return err
		}
		found, err := cepClient.Lookup(clientCEP)
		if err != nil {
			return fmt.Errorf("could not resolve cep %s: %w", clientCEP, err)
		}
		address = found
	}
	if address == "" {
		return fmt.Errorf("an address is required: pass --address or --cep")
	}

	c, err := svc.Client.Register(clientCPF, clientName, clientBirth, address)
	if err != nil {
		return err
	}
	if err := svc.Save(); err != nil {
		return fmt.Errorf("client registered but saving failed: %w", err)
	}

	displayClientSummary(c)
	pterm.Success.Println("Client registered successfully!")
	return nil
}

// RunCreateInteractive walks through the registration questions. Also used
// by the menu.
func RunCreateInteractive(svc *service.Service, cepClient *cep.Client) error {
	cpf, err := prompts.PromptCPF()
	if err != nil {
		return err
	}
	if _, err := svc.Client.Get(cpf); err == nil {
		return ledger.ErrClientExists
	}

	name, err := prompts.PromptInput("Full name:", "", validation.ValidateName)
	if err != nil {
		return err
	}
	birth, err := prompts.PromptInput("Birth date (dd-mm-yyyy):", "", validation.ValidateBirthDate)
	if err != nil {
		return err
	}
	address, err := promptAddress(cepClient)
	if err != nil {
		return err
	}

	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("CPF"), cpf},
		{pterm.Blue("Name"), name},
		{pterm.Blue("Birth date"), birth},
		{pterm.Blue("Address"), address},
	}
	pterm.DefaultTable.WithData(tableData).Render()

	var confirmed bool
	confirmPrompt := &survey.Confirm{
		Message: "Register this client?",
		Default: true,
	}
	if err := survey.AskOne(confirmPrompt, &confirmed, ui.IconOption()); err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("client registration cancelled")
	}

	c, err := svc.Client.Register(cpf, name, birth, address)
	if err != nil {
		return err
	}
	if err := svc.Save(); err != nil {
		return fmt.Errorf("client registered but saving failed: %w", err)
	}

	displayClientSummary(c)
	pterm.Success.Println("Client registered successfully!")
	return nil
}

// promptAddress resolves the address from a CEP when possible. Any lookup
// problem degrades to typing the address by hand; registration never blocks
// on the directory service.
func promptAddress(cepClient *cep.Client) (string, error) {
	for {
		code, err := prompts.PromptInput("CEP (8 digits, leave empty to type the address):", "", optionalCEP)
		if err != nil {
			return "", err
		}
		if code == "" {
			return prompts.PromptInput("Postal address:", "", validation.ValidateName)
		}

		spinner, _ := pterm.DefaultSpinner.Start("Looking up CEP...")
		found, err := cepClient.Lookup(code)
		if err != nil {
			spinner.Fail("No address available for this CEP")
			if !errors.Is(err, cep.ErrNotFound) {
				pterm.Warning.Printf("CEP lookup failed: %v\n", err)
			}
			continue
		}
		spinner.Success(fmt.Sprintf("Address found: %s", found))

		number, err := prompts.PromptInput("House number:", "", nil)
		if err != nil {
			return "", err
		}
		if number == "" {
			return found, nil
		}
		return fmt.Sprintf("%s, %s", found, number), nil
	}
}

func optionalCEP(s string) error {
	if s == "" {
		return nil
	}
	return validation.ValidateCEP(s)
}

func displayClientSummary(c *ledger.Client) {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("CPF"), c.CPF},
		{pterm.Blue("Name"), c.Name},
		{pterm.Blue("Birth date"), c.BirthDate},
		{pterm.Blue("Address"), c.Address},
	}
	pterm.DefaultTable.WithData(tableData).Render()
}
