package service

import (
	"caixa/internal/ledger"
)

type ClientService struct {
	ledger *ledger.Ledger
}

func NewClientService(led *ledger.Ledger) *ClientService {
	return &ClientService{ledger: led}
}

func (cs *ClientService) Register(cpf, name, birthDate, address string) (*ledger.Client, error) {
	return cs.ledger.RegisterClient(cpf, name, birthDate, address)
}

func (cs *ClientService) Get(cpf string) (*ledger.Client, error) {
	return cs.ledger.Client(cpf)
}

func (cs *ClientService) List() []*ledger.Client {
	return cs.ledger.Clients()
}
