// Package xlsx exporta el libro diario de personal a Excel.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

const sheetName = "Personel Defteri"

var headers = []string{"Personel", "Durum", "Devir", "Hakediş", "Ödenen", "Bakiye", "İşler", "Açıklama"}

var _ appledger.LedgerWorkbookGenerator = (*ExcelizeGenerator)(nil)

// ExcelizeGenerator implementa ledger.LedgerWorkbookGenerator con excelize.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GeneratePersonnelLedger escribe una fila por personal más la fila de totales.
func (g *ExcelizeGenerator) GeneratePersonnelLedger(pl *ledger.PersonnelLedger) ([]byte, error) {
	if pl == nil {
		return nil, fmt.Errorf("xlsx: libro vacío")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja por defecto: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", "Tarih: "+pl.Date.Format("02.01.2006")); err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A3", "H3", bold); err != nil {
		return nil, err
	}

	rowIndex := 4
	for _, r := range pl.Rows {
		orders := make([]string, 0, len(r.WorkOrders))
		for _, wo := range r.WorkOrders {
			orders = append(orders, wo.CustomerName)
		}
		values := []any{
			r.Personnel.Name, r.Personnel.Status,
			amount(r.Carryover), amount(r.DailyWage), amount(r.PaidAmount), amount(r.BalanceAfter),
			strings.Join(orders, ", "), r.Description,
		}
		if err := setRow(f, rowIndex, values); err != nil {
			return nil, err
		}
		rowIndex++
	}

	t := pl.Totals
	if err := setRow(f, rowIndex, []any{
		"TOPLAM", "", amount(t.Carryover), amount(t.DailyWage), amount(t.PaidAmount), amount(t.BalanceAfter),
	}); err != nil {
		return nil, err
	}
	last := fmt.Sprintf("F%d", rowIndex)
	if err := f.SetCellStyle(sheetName, "C4", last, money); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("B%d", rowIndex), bold); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheetName, "A", "A", 24)
	_ = f.SetColWidth(sheetName, "G", "H", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowIndex int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIndex)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("xlsx: celda %s: %w", cell, err)
		}
	}
	return nil
}

// amount a float64 solo para la celda; los cálculos ya se hicieron en decimal.
func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
