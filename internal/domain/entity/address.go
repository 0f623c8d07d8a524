package entity

import "time"

// Owner identifica al dueño de una dirección o contacto: exactamente uno de ClientID o SupplierID.
type Owner struct {
	ClientID   *string
	SupplierID *string
}

// Valid indica si exactamente uno de los dos IDs está presente.
func (o Owner) Valid() bool {
	return (o.ClientID != nil) != (o.SupplierID != nil)
}

// Same indica si o y other apuntan al mismo dueño.
func (o Owner) Same(other Owner) bool {
	return eqPtr(o.ClientID, other.ClientID) && eqPtr(o.SupplierID, other.SupplierID)
}

// ForClient construye un Owner de cliente.
func ForClient(id string) Owner { return Owner{ClientID: &id} }

// ForSupplier construye un Owner de proveedor.
func ForSupplier(id string) Owner { return Owner{SupplierID: &id} }

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Address dirección de un cliente o proveedor.
type Address struct {
	ID          string
	AddressLine string
	Country     string
	City        string
	Notes       string
	Owner
	CreatedBy string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact persona de contacto de un cliente o proveedor.
type Contact struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Notes       string
	Owner
	CreatedBy string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
