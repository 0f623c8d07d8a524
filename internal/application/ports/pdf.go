package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OfferLine línea de la oferta comercial ya resuelta para el PDF.
type OfferLine struct {
	ItemName  string
	Make      string
	MPN       string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Currency  string
}

// OfferDocument datos completos de la oferta comercial de un proyecto.
type OfferDocument struct {
	Lang               string
	ProjectName        string
	ClientName         string
	ClientRegistration string
	ClientAddress      string
	Date               time.Time
	Lines              []OfferLine
	Totals             map[string]decimal.Decimal // total por moneda
}

// OfferPDFGenerator genera el PDF de una oferta comercial.
type OfferPDFGenerator interface {
	GenerateOfferPDF(ctx context.Context, doc *OfferDocument) ([]byte, error)
}
