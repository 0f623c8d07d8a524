// Package pdf genera la oferta comercial de un proyecto en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + proyecto   │  fecha                        │
//	│  CLIENTE: nombre, registro, dirección                        │
//	│  TABLA: # | Ítem (marca/MPN) | Cant | P.Unit | Total         │
//	│  TOTALES: uno por moneda                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/pkg/i18n"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.OfferPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.OfferPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOfferPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOfferPDF(_ context.Context, doc *ports.OfferDocument) ([]byte, error) {
	lang := pdfLang(doc.Lang)
	tr := func(code string) string { return i18n.T(lang, code) }

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(tr("offer_title")+" - "+doc.ProjectName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, tr))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc, tr))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(tr))
	m.AddRows(tableLineRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(doc.Totals, tr)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar oferta: %w", err)
	}
	return out.GetBytes(), nil
}

// pdfLang las fuentes embebidas no tienen glifos árabes; el PDF en árabe sale en inglés.
func pdfLang(lang string) string {
	if i18n.IsRTL(lang) {
		return i18n.English
	}
	return i18n.Normalize(lang)
}

func headerRow(doc *ports.OfferDocument, tr func(string) string) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(tr("offer_title"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(tr("offer_project")+": "+doc.ProjectName, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(tr("offer_date")+": "+doc.Date.Format("2006-01-02"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func clientRow(doc *ports.OfferDocument, tr func(string) string) core.Row {
	details := []string{}
	if doc.ClientRegistration != "" {
		details = append(details, tr("offer_reg_number")+": "+doc.ClientRegistration)
	}
	if doc.ClientAddress != "" {
		details = append(details, doc.ClientAddress)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New(strings.ToUpper(tr("offer_client")), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(strings.Join(details, "   |   "), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow(tr func(string) string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h(tr("offer_item"), 5, align.Left),
		h(tr("offer_quantity"), 1, align.Center),
		h(tr("offer_unit_price"), 2, align.Right),
		h(tr("offer_total"), 3, align.Right),
	)
}

func tableLineRows(lines []ports.OfferLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		desc := l.ItemName
		if extra := strings.TrimSpace(strings.Join(nonEmptyParts(l.Make, l.MPN), " / ")); extra != "" {
			desc += " (" + extra + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(desc, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice)+" "+l.Currency,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatMoney(l.Total)+" "+l.Currency,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows una fila por moneda, en orden alfabético.
func totalsRows(totals map[string]decimal.Decimal, tr func(string) string) []core.Row {
	currencies := make([]string, 0, len(totals))
	for c := range totals {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(tr("offer_totals"), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1,
		}))),
	}
	for _, c := range currencies {
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(6).Add(text.New(formatMoney(totals[c])+" "+c, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1,
			})),
		))
	}
	return rows
}

func nonEmptyParts(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formatMoney dos decimales con separador de miles.
// Ej: 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	out := string(buf) + frac
	if neg {
		out = "-" + out
	}
	return out
}
