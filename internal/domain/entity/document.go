package entity

import "time"

// Document metadatos de un archivo subido. El contenido vive en el almacenamiento de objetos bajo Path.
type Document struct {
	ID          string
	Name        string
	Path        string // clave en el almacenamiento
	Extension   string
	ContentType string
	Size        int64
	Notes       string
	Private     bool // visible solo para admins y quien lo subió
	CreatedBy   string
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleTo indica si el usuario puede ver el documento.
func (d *Document) VisibleTo(userID string, isAdmin bool) bool {
	return !d.Private || isAdmin || d.CreatedBy == userID
}

// RelationTarget identifica la entidad a la que se relaciona un documento.
// Exactamente uno de los campos debe estar presente.
type RelationTarget struct {
	ProjectID  *string
	ItemID     *string
	SupplierID *string
	ClientID   *string
}

// Valid indica si exactamente un destino está presente.
func (t RelationTarget) Valid() bool {
	n := 0
	for _, p := range []*string{t.ProjectID, t.ItemID, t.SupplierID, t.ClientID} {
		if p != nil && *p != "" {
			n++
		}
	}
	return n == 1
}

// DocumentRelation vincula un documento con un proyecto, ítem, proveedor o cliente.
type DocumentRelation struct {
	ID         string
	DocumentID string
	RelationTarget
	CreatedBy string
	CreatedAt time.Time
}
