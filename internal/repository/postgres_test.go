package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/fixtures"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Postgres) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger := zap.NewNop()
	repo := NewPostgres(db, logger)

	return db, mock, repo
}

var patientCols = []string{
	"id", "resident_first_name", "resident_last_name", "date_of_birth", "balance", "due_date",
	"facility_name", "facility_code", "payer_desc", "contact_first_name", "contact_last_name",
	"contact_number", "contact_email", "status", "priority", "last_contact", "next_scheduled",
	"total_calls", "successful_contacts", "payment_arrangements", "notes",
}

var campaignCols = []string{
	"id", "name", "description", "status", "start_date", "end_date",
	"total_patients", "calls_completed", "calls_scheduled",
	"success_rate", "collection_rate", "total_recovered", "average_call_duration",
	"priority", "agent_type", "created_by", "created_at",
}

var callLogCols = []string{
	"id", "patient_id", "patient_name", "contact_number", "call_date", "duration", "outcome",
	"status", "agent_type", "campaign_id", "notes", "transcript", "cost", "satisfaction",
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func campaignRow(rows *sqlmock.Rows, id string, status domain.CampaignStatus) *sqlmock.Rows {
	return rows.AddRow(
		id, "January 2025 Collection Drive", "", string(status), day("2025-01-01"), day("2025-01-31"),
		150, 89, 61,
		68.5, 42.3, 12450.75, 185,
		"high", "debt_collection", "admin", day("2025-01-01"),
	)
}

func TestPostgres_ListPatients(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(patientCols).
		AddRow(
			"600999", "John", "Doe", day("1945-03-15"), 250.75, day("2025-01-15"),
			"Highland Care Center", "HCC001", "Medicare", "Jane", "Doe",
			"+15554181944", "jane.doe@email.com", "active", "high", day("2025-01-08"), nil,
			5, 3, 1, "",
		).
		AddRow(
			"601000", "Mary", "Smith", day("1938-07-22"), 180.5, day("2025-01-20"),
			"Highland Care Center", "HCC001", "Medicaid", "Robert", "Smith",
			"+15554181945", "", "pending", "medium", nil, nil,
			0, 0, 0, "",
		)

	mock.ExpectQuery(`SELECT\s+id, resident_first_name`).WillReturnRows(rows)

	patients, err := repo.ListPatients(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "600999", patients[0].ID)
	assert.Equal(t, domain.PatientActive, patients[0].Status)
	assert.Equal(t, 250.75, patients[0].Balance)
	require.NotNil(t, patients[0].LastContact)
	assert.Equal(t, "2025-01-08", patients[0].LastContact.String())
	assert.Nil(t, patients[0].NextScheduled)
	assert.Equal(t, 3, patients[0].SuccessfulContacts)

	assert.Nil(t, patients[1].LastContact)
	assert.Equal(t, domain.PriorityMedium, patients[1].Priority)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListPatients_EmptyResult(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows(patientCols))

	patients, err := repo.ListPatients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Len(t, patients, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListPatients_QueryError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListPatients(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list patients")
}

func TestPostgres_ListCallLogs(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	callDate := time.Date(2025, 1, 9, 10, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(callLogCols).
		AddRow("call-001", "600999", "John Doe", "+15554181944", callDate, 245, "payment_arranged",
			"completed", "debt_collection", "camp-001", "", "", 0.85, 4.5).
		AddRow("call-002", "601000", "Mary Smith", "+15554181945", callDate, 30, "no_answer",
			"completed", "debt_collection", "camp-001", "", "", 0.15, nil)

	mock.ExpectQuery(`FROM call_logs`).WillReturnRows(rows)

	logs, err := repo.ListCallLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, domain.OutcomePaymentArranged, logs[0].Outcome)
	require.NotNil(t, logs[0].Satisfaction)
	assert.Equal(t, 4.5, *logs[0].Satisfaction)
	assert.Nil(t, logs[1].Satisfaction)
	assert.True(t, logs[0].CallDate.Equal(callDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UnstoredCollectionsAreEmpty(t *testing.T) {
	db, _, repo := setupMockDB(t)
	defer db.Close()
	ctx := context.Background()

	queue, err := repo.ListQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPostgres_ApplyCampaignAction(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM campaigns WHERE id = \$1 FOR UPDATE`).
		WithArgs("camp-001").
		WillReturnRows(campaignRow(sqlmock.NewRows(campaignCols), "camp-001", domain.CampaignActive))
	mock.ExpectExec(`UPDATE campaigns SET status = \$1 WHERE id = \$2`).
		WithArgs("paused", "camp-001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, err := repo.ApplyCampaignAction(context.Background(), "camp-001", domain.CampaignPause)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, c.Status)
	assert.Equal(t, 89, c.CallsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ApplyCampaignAction_InvalidTransition(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs("camp-003").
		WillReturnRows(campaignRow(sqlmock.NewRows(campaignCols), "camp-003", domain.CampaignCompleted))
	mock.ExpectRollback()

	_, err := repo.ApplyCampaignAction(context.Background(), "camp-003", domain.CampaignStart)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ApplyCampaignAction_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs("camp-404").
		WillReturnRows(sqlmock.NewRows(campaignCols))
	mock.ExpectRollback()

	_, err := repo.ApplyCampaignAction(context.Background(), "camp-404", domain.CampaignStart)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Import(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	patients := fixtures.Patients()
	campaigns := fixtures.Campaigns()
	logs := fixtures.CallLogs()

	mock.ExpectBegin()
	for range patients {
		mock.ExpectExec(`INSERT INTO patients`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range campaigns {
		mock.ExpectExec(`INSERT INTO campaigns`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range logs {
		mock.ExpectExec(`INSERT INTO call_logs`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.Import(context.Background(), patients, campaigns, logs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Import_RejectsInvalidBeforeWriting(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	patients := fixtures.Patients()
	patients[2].Balance = -1

	err := repo.Import(context.Background(), patients, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Import_RollsBackOnError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO patients`).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.Import(context.Background(), fixtures.Patients()[:1], nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert patient 600999")
	assert.NoError(t, mock.ExpectationsWereMet())
}
