package application

import "github.com/bnema/chainscript-cli/internal/domain"

type AddAddressCommand struct {
	ID      domain.AddressID
	Name    string
	Address string
	Note    string
}

type RegisterContractCommand struct {
	ID        domain.ContractID
	Namespace string
	Name      string
	Kind      string
	Address   string
}
