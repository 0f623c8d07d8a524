package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// LineItemKind distingue las cuatro tablas de ítems de un proyecto.
type LineItemKind string

// Tipos de ítems de proyecto.
const (
	KindProject  LineItemKind = "project"  // lista de materiales del proyecto
	KindPurchase LineItemKind = "purchase" // compras a proveedores
	KindSale     LineItemKind = "sale"     // ventas al cliente
	KindOffer    LineItemKind = "offer"    // oferta comercial
)

// Valid indica si el tipo es conocido.
func (k LineItemKind) Valid() bool {
	switch k {
	case KindProject, KindPurchase, KindSale, KindOffer:
		return true
	}
	return false
}

// RequiresSupplier indica si el tipo exige proveedor.
func (k LineItemKind) RequiresSupplier() bool {
	return k == KindPurchase
}

// Currencies monedas aceptadas en precios.
var Currencies = []string{"EGP", "USD", "EUR", "GBP", "SAR", "AED", "CNY"}

// ValidCurrency indica si code está en Currencies.
func ValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// Límites de las columnas quantity INTEGER y price NUMERIC(14,2).
const (
	MaxQuantity   = math.MaxInt32
	PriceDecimals = 2
)

var maxPrice = decimal.New(1, 12)

// ValidQuantity indica si q es positiva y cabe en la columna.
func ValidQuantity(q int) bool {
	return q > 0 && q <= MaxQuantity
}

// ValidPrice exige precio no negativo, con dos decimales como máximo y menor que 10^12.
func ValidPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Equal(p.Truncate(PriceDecimals)) && p.LessThan(maxPrice)
}

// LineItem un ítem con cantidad y precio dentro de un proyecto.
type LineItem struct {
	ID         string
	Kind       LineItemKind
	ProjectID  string
	ItemID     string
	SupplierID *string
	Quantity   int
	Price      decimal.Decimal // precio unitario
	Currency   string
	CreatedBy  string
	UpdatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Solo lectura: se completan en los listados con JOIN.
	ItemName     string
	SupplierName string
}

// Total devuelve Quantity * Price.
func (l *LineItem) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
