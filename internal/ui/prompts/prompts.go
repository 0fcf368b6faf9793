// Package prompts wraps the interactive questions shared by the menu and the
// individual commands.
package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"caixa/internal/ledger"
	"caixa/internal/money"
	"caixa/internal/validation"
)

// PromptInput prompts for a generic text input with optional default and validator.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}
	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return strings.TrimSpace(inputVal), nil
}

// PromptSelect prompts for a selection from a list of options.
func PromptSelect(message string, options []string) (string, error) {
	var selected string

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// PromptConfirm prompts for yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()
	return confirm, err
}

func PromptCPF() (string, error) {
	return PromptInput("Client CPF (11 digits):", "", validation.ValidateCPF)
}

// PromptAmount asks for a decimal amount and returns it in cents.
func PromptAmount(message string) (int64, error) {
	raw, err := PromptInput(message, "", validation.ValidateAmount)
	if err != nil {
		return 0, err
	}
	return money.Parse(raw)
}

// PromptAccount lets the user pick one of the client's accounts. With a
// single account it is chosen without asking.
func PromptAccount(accounts []*ledger.Account) (*ledger.Account, error) {
	if len(accounts) == 0 {
		return nil, ledger.ErrAccountNotFound
	}
	if len(accounts) == 1 {
		return accounts[0], nil
	}

	byLabel := make(map[string]*ledger.Account, len(accounts))
	labels := make([]string, 0, len(accounts))
	for _, a := range accounts {
		label := fmt.Sprintf("Account %s (agency %s) - %s", a.Number, a.Agency, money.FormatBRL(a.Balance()))
		byLabel[label] = a
		labels = append(labels, label)
	}

	selected, err := PromptSelect("Which account?", labels)
	if err != nil {
		return nil, err
	}
	return byLabel[selected], nil
}
