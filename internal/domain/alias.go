package domain

type Alias struct {
	ID   string
	Name string
}
