// Package pdf genera el resumen diario de caja (kasa) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Günlük Kasa          │  Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Devir / Nakit tahsilat / Nakit gider / Ödenen     │
//	│           KASA TOPLAMI + deuda salarial total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR MÉTODO: Método | Tahsilat | Gider                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TAHSİLATLAR: Cliente | Método | Descripción | Monto        │
//	│  GİDERLER:    Categoría | Método | Descripción | Monto      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appledger.RegisterPDFGenerator = (*MarotoRegisterGenerator)(nil)

// MarotoRegisterGenerator implementa ledger.RegisterPDFGenerator usando Maroto v2.
type MarotoRegisterGenerator struct {
	company string
}

// NewMarotoRegisterGenerator construye el generador; company se imprime en el encabezado.
func NewMarotoRegisterGenerator(company string) *MarotoRegisterGenerator {
	return &MarotoRegisterGenerator{company: company}
}

// GenerateRegister genera el PDF del día y devuelve sus bytes.
func (g *MarotoRegisterGenerator) GenerateRegister(reg *ledger.Register) ([]byte, error) {
	if reg == nil {
		return nil, fmt.Errorf("pdf: kasa vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Günlük Kasa "+reg.Date.Format("2006-01-02"), true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, reg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(reg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("ÖDEME YÖNTEMLERİ"))
	m.AddRows(tableHeaderRow("Yöntem", "", "Tahsilat", "Gider"))
	for _, mt := range reg.ByMethod {
		m.AddRows(tableRow(mt.Label, "", formatMoney(mt.Collected), formatMoney(mt.Expense)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("TAHSİLATLAR"))
	m.AddRows(lineRows(reg.Collections, reg.TodayCollected)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("GİDERLER"))
	m.AddRows(lineRows(reg.Expenses, reg.TodayExpense)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, reg *ledger.Register) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("GÜNLÜK KASA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(company, "-"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Tarih: "+reg.Date.Format("02.01.2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

// summaryRow: fórmula de la caja en efectivo, una línea por término.
func summaryRow(reg *ledger.Register) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(d decimal.Decimal) core.Component {
		return text.New(formatMoney(d), props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	totalColor := colorPrimary
	if reg.Total.IsNegative() {
		totalColor = colorRed
	}
	return row.New(34).Add(
		col.New(2),
		col.New(5).Add(
			label("Devir (önceki bakiye):"),
			label("+ Nakit tahsilat:"),
			label("- Nakit gider:"),
			label("- Ödenen maaş:"),
			text.New("KASA TOPLAMI:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: totalColor, Right: 2,
			}),
			label("Toplam personel borcu:"),
		),
		col.New(3).Add(
			value(reg.PreviousBalance),
			value(reg.TodayCashCollected),
			value(reg.TodayCashExpense),
			value(reg.TodayPaidWages),
			text.New(formatMoney(reg.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: totalColor, Right: 1,
			}),
			value(reg.TotalWageDebt),
		),
		col.New(2),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func tableHeaderRow(a, b, c, d string) core.Row {
	h := func(label string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h(a, 4, align.Left),
		h(b, 4, align.Left),
		h(c, 2, align.Right),
		h(d, 2, align.Right),
	)
}

func tableRow(a, b, c, d string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(a, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(b, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New(c, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(d, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// lineRows movimientos del día con marca de efectivo y total.
func lineRows(lines []ledger.RegisterLine, total decimal.Decimal) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Kayıt yok", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	rows := []core.Row{tableHeaderRow("Taraf", "Açıklama", "Yöntem", "Tutar")}
	for _, l := range lines {
		method := l.MethodLabel
		if l.Cash {
			method += " *"
		}
		rows = append(rows, tableRow(nonEmpty(l.Party, "-"), l.Description, method, formatMoney(l.Amount)))
	}
	rows = append(rows, tableRow("", "", "Toplam", formatMoney(total)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney formato turco con puntos de miles y coma decimal.
// Ej: 1234.5 → "1.234,50 ₺", -25000 → "-25.000,00 ₺"
func formatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + string(buf) + "," + frac + " ₺"
}
