package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/ports"
)

func TestGenerateOfferPDF(t *testing.T) {
	doc := &ports.OfferDocument{
		Lang:               "es",
		ProjectName:        "Planta Norte",
		ClientName:         "Acme S.A.",
		ClientRegistration: "REG-001",
		ClientAddress:      "Calle 1, El Cairo",
		Date:               time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Lines: []ports.OfferLine{
			{ItemName: "Bomba", Make: "Grundfos", MPN: "CR-10", Quantity: 2,
				UnitPrice: decimal.NewFromInt(1500), Total: decimal.NewFromInt(3000), Currency: "USD"},
		},
		Totals: map[string]decimal.Decimal{"USD": decimal.NewFromInt(3000)},
	}

	out, err := NewMarotoPDFGenerator().GenerateOfferPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"999":       "999.00",
		"1000":      "1,000.00",
		"1234567.5": "1,234,567.50",
		"-25000.1":  "-25,000.10",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestPdfLang(t *testing.T) {
	assert.Equal(t, "en", pdfLang("ar"))
	assert.Equal(t, "es", pdfLang("es"))
	assert.Equal(t, "en", pdfLang(""))
}
