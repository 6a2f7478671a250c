package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ratulalahy/med-debt-collector/internal/fixtures"
)

func TestPatientTable(t *testing.T) {
	table := PatientTable(fixtures.Patients())

	require.Len(t, table.Rows, 5)
	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Headers))
	}
	first := table.Rows[0]
	assert.Equal(t, "600999", first[0])
	assert.Equal(t, "John Doe", first[1])
	assert.Equal(t, "1-555-418-1944", first[5])
	assert.Equal(t, 150.75, first[6])
	assert.Equal(t, "05/31/2025", first[7])
	assert.Equal(t, "Active", first[8])
}

func TestCampaignTable(t *testing.T) {
	table := CampaignTable(fixtures.Campaigns())

	require.Len(t, table.Rows, 3)
	assert.Equal(t, "camp-001", table.Rows[0][0])
	assert.Equal(t, "59.33%", table.Rows[0][7])
	assert.Equal(t, "68.5%", table.Rows[0][8])
	assert.Equal(t, "3:05", table.Rows[0][11])
}

func TestQueueTable_PositionOnlyWhileQueued(t *testing.T) {
	table := QueueTable(fixtures.Queue())

	require.Len(t, table.Rows, 4)
	assert.Equal(t, "1", table.Rows[0][6])
	assert.Equal(t, "3/5", table.Rows[0][7])
	assert.Equal(t, "", table.Rows[2][6])
	assert.Equal(t, "", table.Rows[3][6])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf,
		PatientTable(fixtures.Patients()),
		CampaignTable(fixtures.Campaigns()),
		SummaryTable(fixtures.Dashboard(), time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Patients", "Campaigns", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Patient ID", rows[0][0])
	assert.Equal(t, "600999", rows[1][0])

	balance, err := f.GetCellValue("Patients", "G2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "150.75", balance)

	panes, err := f.GetPanes("Patients")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Generated", "01/10/2025 09:00"}, summary[1])
}

func TestWriteXLSX_NoTables(t *testing.T) {
	assert.Error(t, WriteXLSX(&bytes.Buffer{}))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, CallLogTable(fixtures.CallLogs())))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Call ID", records[0][0])
	assert.Equal(t, "call-001", records[1][0])
	assert.Equal(t, "Payment Arranged", records[1][5])
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "12450.75", cellString(12450.75))
	assert.Equal(t, "150", cellString(150))
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "x", cellString("x"))
}
