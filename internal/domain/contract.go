package domain

import (
	"fmt"
	"strings"
	"time"
)

type ContractID string

const DefaultContractNamespace = "local"

type Contract struct {
	ID           ContractID
	Namespace    string
	Name         string
	Kind         string
	Address      string
	RegisteredAt time.Time
}

func (c Contract) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(c.Kind) == "" {
		return fmt.Errorf("kind is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("address is required")
	}

	return nil
}

func (c *Contract) ApplyDefaults() {
	if c == nil {
		return
	}

	if strings.TrimSpace(c.Namespace) == "" {
		c.Namespace = DefaultContractNamespace
	}
}
