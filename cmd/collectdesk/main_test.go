package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ratulalahy/med-debt-collector/internal/api"
	"github.com/ratulalahy/med-debt-collector/internal/appstate"
	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/query"
)

// setupEnv points the CLI at the fixture records and a private preference
// file.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATA_SOURCE", "fixtures")
	t.Setenv("PREFS_BACKEND", "file")
	t.Setenv("PREFS_PATH", filepath.Join(dir, "prefs.json"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("MQTT_BROKER", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(args, &out)
	return out.String(), err
}

func TestList_FilterSortPage(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "list", "patients", "--filter", "status=active", "--sort", "balance", "--dir", "desc", "--limit", "2")
	require.NoError(t, err)

	var page api.Paginated[domain.Patient]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.GreaterOrEqual(t, page.Data[0].Balance, page.Data[1].Balance)
	for _, p := range page.Data {
		assert.Equal(t, domain.PatientActive, p.Status)
	}
}

func TestList_ScopedSearch(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "list", "patients", "--q", " JOHN ", "--search-field", "residentFirstName")
	require.NoError(t, err)

	var page api.Paginated[domain.Patient]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "600999", page.Data[0].ID)
}

func TestList_Errors(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "list", "invoices")
	assert.Error(t, err)

	_, err = run(t, "list", "patients", "--filter", "status")
	assert.ErrorContains(t, err, "want field=value")

	_, err = run(t, "list", "patients", "--sort", "shoeSize")
	assert.True(t, errors.Is(err, query.ErrConfiguration), "got %v", err)

	_, err = run(t, "list", "patients", "--range-field", "dueDate", "--from", "yesterday")
	assert.Error(t, err)
}

func TestStats_JSON(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "stats", "--json")
	require.NoError(t, err)

	var sum Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 5, sum.Patients.Total)
	assert.Equal(t, 3, sum.Campaigns.Total)
	assert.Equal(t, sum.Patients.Total, sum.Dashboard.TotalPatients)
}

func TestStats_Text(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Outstanding:")
	assert.Contains(t, out, "$")
	assert.Contains(t, out, "Top campaign:")
}

func TestCampaign_Transitions(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "campaign", "start", "camp-002")
	require.NoError(t, err)

	var resp api.Response[domain.Campaign]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, domain.CampaignActive, resp.Data.Status)

	_, err = run(t, "campaign", "pause", "camp-003")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = run(t, "campaign", "launch", "camp-001")
	assert.Error(t, err)
}

func TestExport_CSV(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "export", "--table", "calls")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "Call ID", records[0][0])
}

func TestExport_XLSX(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "report.xlsx")
	_, err := run(t, "export", "--out", path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Patients", "Campaigns", "Call Queue", "Call Logs"}, f.GetSheetList())
}

func TestExport_UnknownFormat(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "export", "--out", "report.pdf")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestPrefs_PersistAcrossRuns(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "prefs", "set", "--theme", "dark", "--sms")
	require.NoError(t, err)

	out, err := run(t, "prefs", "show")
	require.NoError(t, err)
	var prefs appstate.Preferences
	require.NoError(t, json.Unmarshal([]byte(out), &prefs))
	assert.Equal(t, "dark", prefs.Theme)
	assert.True(t, prefs.Notifications.SMS)
	assert.True(t, prefs.Notifications.Email)
	assert.Equal(t, "USD", prefs.Currency)

	out, err = run(t, "prefs", "reset")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &prefs))
	assert.Equal(t, appstate.DefaultPreferences(), prefs)
}

func TestInvalidConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("DATA_SOURCE", "mainframe")
	_, err := run(t, "stats")
	assert.ErrorContains(t, err, "unknown data source")
}

func TestWatch_StopsWithContext(t *testing.T) {
	setupEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := executeContext(ctx, []string{"watch", "--interval", "50ms", "--metrics-addr", ""}, &out)
	assert.NoError(t, err)
}
