// Package validation holds the input validators shared by the flag and
// interactive paths of the commands. The string-in, error-out shape matches
// what huh expects for its Validate option.
package validation

import (
	"fmt"
	"strings"
	"time"

	"caixa/internal/constants"
	"caixa/internal/money"
)

func ValidateCPF(cpf string) error {
	cpf = strings.TrimSpace(cpf)
	if len(cpf) != constants.CPFLength || !allDigits(cpf) {
		return fmt.Errorf("cpf must be exactly %d digits", constants.CPFLength)
	}
	return nil
}

func ValidateCEP(cep string) error {
	cep = strings.TrimSpace(cep)
	if len(cep) != constants.CEPLength || !allDigits(cep) {
		return fmt.Errorf("cep must be exactly %d digits", constants.CEPLength)
	}
	return nil
}

// ValidateBirthDate accepts dd-mm-yyyy.
func ValidateBirthDate(date string) error {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date, use dd-mm-yyyy")
	}
	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name can't be empty")
	}
	return nil
}

// ValidateAmount checks a positive decimal amount with at most two decimal
// digits. The domain rejects non-positive amounts anyway; validating here
// gives the prompt a chance to re-ask instead of aborting the flow.
func ValidateAmount(s string) error {
	cents, err := money.Parse(s)
	if err != nil {
		return err
	}
	if cents <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateOpeningBalance allows zero (no opening deposit) but not negatives.
func ValidateOpeningBalance(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return nil
	}
	cents, err := money.Parse(s)
	if err != nil {
		return err
	}
	if cents < 0 {
		return fmt.Errorf("opening balance can't be negative")
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
