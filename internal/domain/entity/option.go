package entity

// Option par id/nombre para listas simples (selects del frontend).
type Option struct {
	ID   string
	Name string
}
