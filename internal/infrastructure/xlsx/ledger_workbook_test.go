package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

func TestGeneratePersonnelLedger_FilasYTotales(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p1 := &entity.Personnel{ID: "p1", Name: "Ayşe", Status: entity.PersonnelStatusActive}
	p2 := &entity.Personnel{ID: "p2", Name: "Zeynep", Status: entity.PersonnelStatusInactive}
	pl := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:      day,
		Personnel: []*entity.Personnel{p1, p2},
		Carryover: map[string]decimal.Decimal{"p1": decimal.NewFromInt(300)},
		DayRecords: []*entity.PayrollRecord{
			{ID: "r1", PersonnelID: "p1", Date: day, DailyWage: decimal.NewFromInt(1000), PaidAmount: decimal.NewFromInt(400)},
		},
	}, ledger.PersonnelLedgerOptions{})

	out, err := NewExcelizeGenerator().GeneratePersonnelLedger(pl)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 6) // fecha, vacía, encabezado, 2 filas, total
	assert.Equal(t, "Tarih: 01.03.2024", rows[0][0])
	assert.Equal(t, headers, rows[2])
	assert.Equal(t, "Ayşe", rows[3][0])
	assert.Equal(t, "TOPLAM", rows[5][0])

	balance, err := f.GetCellValue(sheetName, "F6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "900", balance)
}

func TestGeneratePersonnelLedger_Nil(t *testing.T) {
	_, err := NewExcelizeGenerator().GeneratePersonnelLedger(nil)
	assert.Error(t, err)
}
