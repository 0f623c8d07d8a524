package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de proyecto. Fechas en formato YYYY-MM-DD.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Status      *int   `json:"status" validate:"omitempty,min=0,max=4"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	ClientID    string `json:"client_id" validate:"required,uuid"`
	OwnerID     string `json:"owner_id" validate:"omitempty,uuid"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" validate:"omitempty,max=5000"`
}

// UpdateProjectRequest cambios parciales. EndDate "" limpia la fecha de fin.
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Status      *int    `json:"status" validate:"omitempty,min=0,max=4"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	ClientID    *string `json:"client_id" validate:"omitempty,uuid"`
	OwnerID     *string `json:"owner_id" validate:"omitempty,uuid"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes" validate:"omitempty,max=5000"`
}

// ProjectFilterRequest filtros del listado de proyectos.
type ProjectFilterRequest struct {
	PageRequest
	ClientID string `query:"client_id" validate:"omitempty,uuid"`
	OwnerID  string `query:"owner_id" validate:"omitempty,uuid"`
	Status   *int   `query:"status" validate:"omitempty,min=0,max=4"`
}

// ProjectResponse salida de proyecto.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      int       `json:"status"`
	StatusName  string    `json:"status_name"`
	Description string    `json:"description"`
	ClientID    string    `json:"client_id"`
	OwnerID     string    `json:"owner_id"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Notes       string    `json:"notes"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   *string   `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectListResponse lista paginada de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCommentRequest comentario nuevo.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// CommentResponse salida de comentario.
type CommentResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Text      string    `json:"text"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// LineItemRequest alta o reemplazo de un ítem de proyecto.
type LineItemRequest struct {
	ItemID     string          `json:"item_id" validate:"required,uuid"`
	SupplierID *string         `json:"supplier_id" validate:"omitempty,uuid"`
	Quantity   int             `json:"quantity" validate:"required,gt=0,lte=2147483647"`
	Price      decimal.Decimal `json:"price" validate:"money"`
	Currency   string          `json:"currency" validate:"required,currency"`
}

// LineItemResponse salida de ítem de proyecto con nombres resueltos y total.
type LineItemResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	ProjectID    string          `json:"project_id"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	SupplierID   *string         `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Total        decimal.Decimal `json:"total"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LineItemListResponse ítems de un tipo con totales por moneda.
type LineItemListResponse struct {
	Items  []LineItemResponse         `json:"items"`
	Totals map[string]decimal.Decimal `json:"totals"`
}
