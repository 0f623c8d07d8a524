package dto

import "time"

// RelationTargetRequest destino de una relación: exactamente uno de los cuatro IDs.
type RelationTargetRequest struct {
	ProjectID  string `json:"project_id" form:"project_id" validate:"omitempty,uuid"`
	ItemID     string `json:"item_id" form:"item_id" validate:"omitempty,uuid"`
	SupplierID string `json:"supplier_id" form:"supplier_id" validate:"omitempty,uuid"`
	ClientID   string `json:"client_id" form:"client_id" validate:"omitempty,uuid"`
}

// UploadDocumentRequest campos del formulario multipart que acompañan al archivo.
type UploadDocumentRequest struct {
	Name    string `form:"name" validate:"omitempty,max=255"`
	Notes   string `form:"notes" validate:"omitempty,max=2000"`
	Private bool   `form:"private"`
	RelationTargetRequest
}

// UploadedFile archivo recibido, ya abierto por el handler.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
}

// UpdateDocumentRequest cambios de metadatos.
type UpdateDocumentRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Notes   *string `json:"notes" validate:"omitempty,max=2000"`
	Private *bool   `json:"private"`
}

// DocumentResponse salida de metadatos de documento.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Extension   string    `json:"extension"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Notes       string    `json:"notes"`
	Private     bool      `json:"private"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   *string   `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentListResponse lista paginada de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DocumentRelationResponse salida de relación.
type DocumentRelationResponse struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	ProjectID  *string   `json:"project_id,omitempty"`
	ItemID     *string   `json:"item_id,omitempty"`
	SupplierID *string   `json:"supplier_id,omitempty"`
	ClientID   *string   `json:"client_id,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentDownload resultado de la descarga: URL firmada o contenido a transmitir.
type DocumentDownload struct {
	Document DocumentResponse
	URL      string // no vacío: redirigir
}
