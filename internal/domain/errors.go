package domain

import "errors"

var (
	ErrUnknownUnit        = errors.New("unknown time unit")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrIdentifierNotFound = errors.New("identifier not found")
	ErrAddressNotFound    = errors.New("address book entry not found")
	ErrContractNotFound   = errors.New("contract not found")
	ErrProviderNotFound   = errors.New("data provider not found")
	ErrDuplicateProvider  = errors.New("data provider already registered")
	ErrInvalidPayload     = errors.New("invalid call payload")
)
