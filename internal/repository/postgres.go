package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

// Postgres reads patients, campaigns and call logs from a Postgres database.
// The queue, calendar and incoming-call collections are not stored there and
// list as empty.
type Postgres struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewPostgres creates a Postgres source over an open connection.
func NewPostgres(db *sql.DB, logger *zap.Logger) *Postgres {
	return &Postgres{db: db, logger: logger, now: time.Now}
}

const patientColumns = `
	id, resident_first_name, resident_last_name, date_of_birth, balance, due_date,
	COALESCE(facility_name, ''), COALESCE(facility_code, ''), COALESCE(payer_desc, ''),
	COALESCE(contact_first_name, ''), COALESCE(contact_last_name, ''),
	COALESCE(contact_number, ''), COALESCE(contact_email, ''),
	status, priority, last_contact, next_scheduled,
	total_calls, successful_contacts, payment_arrangements, COALESCE(notes, '')`

const campaignColumns = `
	id, name, COALESCE(description, ''), status, start_date, end_date,
	total_patients, calls_completed, calls_scheduled,
	success_rate, collection_rate, total_recovered, average_call_duration,
	priority, COALESCE(agent_type, ''), COALESCE(created_by, ''), created_at`

const callLogColumns = `
	id, patient_id, COALESCE(patient_name, ''), COALESCE(contact_number, ''),
	call_date, duration, outcome, COALESCE(status, ''), COALESCE(agent_type, ''),
	COALESCE(campaign_id, ''), COALESCE(notes, ''), COALESCE(transcript, ''),
	cost, satisfaction`

type scanner interface {
	Scan(dest ...any) error
}

func nullableDate(t sql.NullTime) *domain.Date {
	if !t.Valid {
		return nil
	}
	return &domain.Date{Time: t.Time}
}

func scanPatient(row scanner) (domain.Patient, error) {
	var (
		p                      domain.Patient
		dob, due               time.Time
		lastContact, nextSched sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.ResidentFirstName, &p.ResidentLastName, &dob, &p.Balance, &due,
		&p.FacilityName, &p.FacilityCode, &p.PayerDesc,
		&p.ContactFirstName, &p.ContactLastName,
		&p.ContactNumber, &p.ContactEmail,
		&p.Status, &p.Priority, &lastContact, &nextSched,
		&p.TotalCalls, &p.SuccessfulContacts, &p.PaymentArrangements, &p.Notes,
	)
	if err != nil {
		return domain.Patient{}, err
	}
	p.DateOfBirth = domain.Date{Time: dob}
	p.DueDate = domain.Date{Time: due}
	p.LastContact = nullableDate(lastContact)
	p.NextScheduled = nullableDate(nextSched)
	return p, nil
}

func scanCampaign(row scanner) (domain.Campaign, error) {
	var (
		c                   domain.Campaign
		start, end, created time.Time
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Status, &start, &end,
		&c.TotalPatients, &c.CallsCompleted, &c.CallsScheduled,
		&c.SuccessRate, &c.CollectionRate, &c.TotalRecovered, &c.AverageCallDuration,
		&c.Priority, &c.AgentType, &c.CreatedBy, &created,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.StartDate = domain.Date{Time: start}
	c.EndDate = domain.Date{Time: end}
	c.CreatedAt = domain.Date{Time: created}
	return c, nil
}

func scanCallLog(row scanner) (domain.CallLog, error) {
	var (
		l            domain.CallLog
		callDate     time.Time
		satisfaction sql.NullFloat64
	)
	err := row.Scan(
		&l.ID, &l.PatientID, &l.PatientName, &l.ContactNumber,
		&callDate, &l.Duration, &l.Outcome, &l.Status, &l.AgentType,
		&l.CampaignID, &l.Notes, &l.Transcript,
		&l.Cost, &satisfaction,
	)
	if err != nil {
		return domain.CallLog{}, err
	}
	l.CallDate = domain.Date{Time: callDate}
	if satisfaction.Valid {
		v := satisfaction.Float64
		l.Satisfaction = &v
	}
	return l, nil
}

func queryAll[T any](ctx context.Context, db *sql.DB, query string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Postgres) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	query := `SELECT` + patientColumns + ` FROM patients ORDER BY id`
	patients, err := queryAll(ctx, r.db, query, scanPatient)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *Postgres) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `SELECT` + campaignColumns + ` FROM campaigns ORDER BY id`
	campaigns, err := queryAll(ctx, r.db, query, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *Postgres) ListCallLogs(ctx context.Context) ([]domain.CallLog, error) {
	query := `SELECT` + callLogColumns + ` FROM call_logs ORDER BY call_date DESC, id`
	logs, err := queryAll(ctx, r.db, query, scanCallLog)
	if err != nil {
		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}
	return logs, nil
}

func (r *Postgres) ListQueue(context.Context) ([]domain.CallQueueEntry, error) {
	return []domain.CallQueueEntry{}, nil
}

func (r *Postgres) ListEvents(context.Context) ([]domain.CalendarEvent, error) {
	return []domain.CalendarEvent{}, nil
}

func (r *Postgres) ListTasks(context.Context) ([]domain.Task, error) {
	return []domain.Task{}, nil
}

func (r *Postgres) ListIncomingCalls(context.Context) ([]domain.IncomingCall, error) {
	return []domain.IncomingCall{}, nil
}

// DashboardStats derives the summary from the stored collections.
func (r *Postgres) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	patients, err := r.ListPatients(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	campaigns, err := r.ListCampaigns(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	logs, err := r.ListCallLogs(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return stats.Dashboard(patients, campaigns, logs, r.now()), nil
}

// ApplyCampaignAction moves a campaign through its lifecycle inside a
// transaction holding the row lock.
func (r *Postgres) ApplyCampaignAction(ctx context.Context, id string, action domain.CampaignAction) (domain.Campaign, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	current, err := scanCampaign(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("failed to load campaign: %w", err)
	}

	next, err := current.Apply(action)
	if err != nil {
		return domain.Campaign{}, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE campaigns SET status = $1 WHERE id = $2`, next.Status, id); err != nil {
		return domain.Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Campaign{}, fmt.Errorf("failed to commit campaign update: %w", err)
	}

	r.logger.Info("Campaign updated",
		zap.String("campaign_id", id),
		zap.String("action", string(action)),
		zap.String("status", string(next.Status)),
	)
	return next, nil
}

func nullTime(d *domain.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// Import upserts records in one transaction. Each record is validated first
// and nothing is written if any record is invalid.
func (r *Postgres) Import(ctx context.Context, patients []domain.Patient, campaigns []domain.Campaign, logs []domain.CallLog) error {
	for _, p := range patients {
		if err := domain.Validate(p); err != nil {
			return fmt.Errorf("patient %s: %w", p.ID, err)
		}
	}
	for _, c := range campaigns {
		if err := domain.Validate(c); err != nil {
			return fmt.Errorf("campaign %s: %w", c.ID, err)
		}
	}
	for _, l := range logs {
		if err := domain.Validate(l); err != nil {
			return fmt.Errorf("call log %s: %w", l.ID, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range patients {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO patients (
				id, resident_first_name, resident_last_name, date_of_birth, balance, due_date,
				facility_name, facility_code, payer_desc, contact_first_name, contact_last_name,
				contact_number, contact_email, status, priority, last_contact, next_scheduled,
				total_calls, successful_contacts, payment_arrangements, notes
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
			ON CONFLICT (id) DO UPDATE SET
				balance = EXCLUDED.balance,
				status = EXCLUDED.status,
				priority = EXCLUDED.priority,
				last_contact = EXCLUDED.last_contact,
				next_scheduled = EXCLUDED.next_scheduled,
				total_calls = EXCLUDED.total_calls,
				successful_contacts = EXCLUDED.successful_contacts,
				payment_arrangements = EXCLUDED.payment_arrangements,
				notes = EXCLUDED.notes`,
			p.ID, p.ResidentFirstName, p.ResidentLastName, p.DateOfBirth.Time, p.Balance, p.DueDate.Time,
			p.FacilityName, p.FacilityCode, p.PayerDesc, p.ContactFirstName, p.ContactLastName,
			p.ContactNumber, p.ContactEmail, p.Status, p.Priority, nullTime(p.LastContact), nullTime(p.NextScheduled),
			p.TotalCalls, p.SuccessfulContacts, p.PaymentArrangements, p.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert patient %s: %w", p.ID, err)
		}
	}

	for _, c := range campaigns {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO campaigns (
				id, name, description, status, start_date, end_date,
				total_patients, calls_completed, calls_scheduled, success_rate, collection_rate,
				total_recovered, average_call_duration, priority, agent_type, created_by, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				calls_completed = EXCLUDED.calls_completed,
				calls_scheduled = EXCLUDED.calls_scheduled,
				success_rate = EXCLUDED.success_rate,
				collection_rate = EXCLUDED.collection_rate,
				total_recovered = EXCLUDED.total_recovered,
				average_call_duration = EXCLUDED.average_call_duration`,
			c.ID, c.Name, c.Description, c.Status, c.StartDate.Time, c.EndDate.Time,
			c.TotalPatients, c.CallsCompleted, c.CallsScheduled, c.SuccessRate, c.CollectionRate,
			c.TotalRecovered, c.AverageCallDuration, c.Priority, c.AgentType, c.CreatedBy, c.CreatedAt.Time,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert campaign %s: %w", c.ID, err)
		}
	}

	for _, l := range logs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO call_logs (
				id, patient_id, patient_name, contact_number, call_date, duration, outcome,
				status, agent_type, campaign_id, notes, transcript, cost, satisfaction
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
			ON CONFLICT (id) DO NOTHING`,
			l.ID, l.PatientID, l.PatientName, l.ContactNumber, l.CallDate.Time, l.Duration, l.Outcome,
			l.Status, l.AgentType, l.CampaignID, l.Notes, l.Transcript, l.Cost, nullFloat(l.Satisfaction),
		)
		if err != nil {
			return fmt.Errorf("failed to insert call log %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	r.logger.Info("Records imported",
		zap.Int("patients", len(patients)),
		zap.Int("campaigns", len(campaigns)),
		zap.Int("call_logs", len(logs)),
	)
	return nil
}

var (
	_ Source          = (*Postgres)(nil)
	_ CampaignUpdater = (*Postgres)(nil)
)
