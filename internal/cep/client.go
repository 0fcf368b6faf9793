// Package cep looks up a postal address from a CEP code through the public
// ViaCEP service. Lookup failures are never fatal: the caller falls back to
// typing the address by hand.
package cep

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"caixa/internal/config"
)

// ErrNotFound means the service answered but knows no address for the CEP.
var ErrNotFound = errors.New("cep not found")

type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

func New(cfg config.ViacepConfig, log zerolog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
	}
}

type lookupResponse struct {
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	// ViaCEP signals an unknown CEP with an "erro" field whose type has
	// changed between API revisions; its mere presence is the signal.
	Erro json.RawMessage `json:"erro"`
}

// Lookup resolves an 8-digit CEP to a formatted address line. The request is
// bounded by the configured timeout, so client registration never hangs on a
// slow directory.
func (c *Client) Lookup(cepCode string) (string, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cepCode)

	resp, err := c.http.Get(url)
	if err != nil {
		return "", fmt.Errorf("viacep request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("viacep decode: %w", err)
	}
	if len(body.Erro) > 0 {
		return "", ErrNotFound
	}

	addr := fmt.Sprintf("%s, %s - %s/%s", body.Street, body.Neighborhood, body.City, body.State)
	c.log.Debug().Str("cep", cepCode).Str("address", addr).Msg("cep resolved")
	return addr, nil
}
