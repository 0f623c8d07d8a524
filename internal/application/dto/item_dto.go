package dto

import "time"

// CreateItemRequest alta de ítem.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Type        string `json:"type" validate:"omitempty,max=64"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	MPN         string `json:"mpn" validate:"omitempty,max=128"`
	Make        string `json:"make" validate:"omitempty,max=128"`
	Notes       string `json:"notes" validate:"omitempty,max=5000"`
}

// UpdateItemRequest cambios parciales de ítem.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Type        *string `json:"type" validate:"omitempty,max=64"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	MPN         *string `json:"mpn" validate:"omitempty,max=128"`
	Make        *string `json:"make" validate:"omitempty,max=128"`
	Notes       *string `json:"notes" validate:"omitempty,max=5000"`
}

// ItemResponse salida de ítem.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	MPN         string    `json:"mpn"`
	Make        string    `json:"make"`
	Notes       string    `json:"notes"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   *string   `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
