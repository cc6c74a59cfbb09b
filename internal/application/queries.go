package application

import "github.com/bnema/chainscript-cli/internal/domain"

type IdentifierView struct {
	ProviderID string
	Identifier domain.Identifier
}

type ActionSummary struct {
	Index        int
	Target       string
	ValidAddress bool
	Checksummed  string
	PayloadBytes int
	Selector     string
}
