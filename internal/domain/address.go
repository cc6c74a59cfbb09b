package domain

import "time"

type AddressID string

type AddressEntry struct {
	ID        AddressID
	Name      string
	Address   string
	Note      string
	UpdatedAt time.Time
}
