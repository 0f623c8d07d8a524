package dto

import "time"

// AddressInput datos de una dirección.
type AddressInput struct {
	AddressLine string `json:"address_line" validate:"required,min=1,max=512"`
	Country     string `json:"country" validate:"omitempty,max=128"`
	City        string `json:"city" validate:"omitempty,max=128"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
}

// ContactInput datos de un contacto.
type ContactInput struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=64"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
}

// CreateClientRequest alta de cliente, con dirección y contacto iniciales opcionales (quedan como principales).
type CreateClientRequest struct {
	Name               string        `json:"name" validate:"required,min=1,max=255"`
	RegistrationNumber string        `json:"registration_number" validate:"omitempty,max=64"`
	Website            string        `json:"website" validate:"omitempty,url,max=255"`
	Notes              string        `json:"notes" validate:"omitempty,max=2000"`
	Address            *AddressInput `json:"address" validate:"omitempty"`
	Contact            *ContactInput `json:"contact" validate:"omitempty"`
}

// UpdateClientRequest cambios parciales de cliente.
type UpdateClientRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=255"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=64"`
	Website            *string `json:"website" validate:"omitempty,url,max=255"`
	Notes              *string `json:"notes" validate:"omitempty,max=2000"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name               string        `json:"name" validate:"required,min=1,max=255"`
	Field              string        `json:"field" validate:"omitempty,max=255"`
	RegistrationNumber string        `json:"registration_number" validate:"omitempty,max=64"`
	Website            string        `json:"website" validate:"omitempty,url,max=255"`
	Notes              string        `json:"notes" validate:"omitempty,max=2000"`
	Address            *AddressInput `json:"address" validate:"omitempty"`
	Contact            *ContactInput `json:"contact" validate:"omitempty"`
}

// UpdateSupplierRequest cambios parciales de proveedor.
type UpdateSupplierRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=255"`
	Field              *string `json:"field" validate:"omitempty,max=255"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=64"`
	Website            *string `json:"website" validate:"omitempty,url,max=255"`
	Notes              *string `json:"notes" validate:"omitempty,max=2000"`
}

// SetPrimaryRequest fija la dirección o contacto principal; null la limpia.
type SetPrimaryRequest struct {
	ID *string `json:"id" validate:"omitempty,uuid"`
}

// AddressResponse salida de dirección.
type AddressResponse struct {
	ID          string    `json:"id"`
	AddressLine string    `json:"address_line"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Notes       string    `json:"notes"`
	ClientID    *string   `json:"client_id,omitempty"`
	SupplierID  *string   `json:"supplier_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactResponse salida de contacto.
type ContactResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Initials    string    `json:"initials"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Notes       string    `json:"notes"`
	ClientID    *string   `json:"client_id,omitempty"`
	SupplierID  *string   `json:"supplier_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClientResponse salida de cliente. PrimaryAddress/PrimaryContact solo en el detalle.
type ClientResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	RegistrationNumber string           `json:"registration_number"`
	Website            string           `json:"website"`
	Notes              string           `json:"notes"`
	PrimaryAddressID   *string          `json:"primary_address_id"`
	PrimaryContactID   *string          `json:"primary_contact_id"`
	PrimaryAddress     *AddressResponse `json:"primary_address,omitempty"`
	PrimaryContact     *ContactResponse `json:"primary_contact,omitempty"`
	CreatedBy          string           `json:"created_by"`
	UpdatedBy          *string          `json:"updated_by"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// SupplierResponse salida de proveedor.
type SupplierResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Field              string           `json:"field"`
	RegistrationNumber string           `json:"registration_number"`
	Website            string           `json:"website"`
	Notes              string           `json:"notes"`
	PrimaryAddressID   *string          `json:"primary_address_id"`
	PrimaryContactID   *string          `json:"primary_contact_id"`
	PrimaryAddress     *AddressResponse `json:"primary_address,omitempty"`
	PrimaryContact     *ContactResponse `json:"primary_contact,omitempty"`
	CreatedBy          string           `json:"created_by"`
	UpdatedBy          *string          `json:"updated_by"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
