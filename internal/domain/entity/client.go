package entity

import "time"

// Client representa un cliente de la empresa.
type Client struct {
	ID                 string
	Name               string // único
	RegistrationNumber string
	Website            string
	Notes              string
	PrimaryAddressID   *string
	PrimaryContactID   *string
	CreatedBy          string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Supplier representa un proveedor. Field es el rubro o especialidad del proveedor.
type Supplier struct {
	ID                 string
	Name               string // único
	Field              string
	RegistrationNumber string
	Website            string
	Notes              string
	PrimaryAddressID   *string
	PrimaryContactID   *string
	CreatedBy          string
	UpdatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
