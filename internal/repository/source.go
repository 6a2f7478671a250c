// Package repository provides the record sources the dashboard reads from:
// the in-memory fixture set, a Postgres database and a remote REST backend.
package repository

import (
	"context"
	"errors"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// Source lists every record collection. Returned slices are owned by the
// caller.
type Source interface {
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListCallLogs(ctx context.Context) ([]domain.CallLog, error)
	ListQueue(ctx context.Context) ([]domain.CallQueueEntry, error)
	ListEvents(ctx context.Context) ([]domain.CalendarEvent, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListIncomingCalls(ctx context.Context) ([]domain.IncomingCall, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

// CampaignUpdater applies operator transitions to a campaign and returns the
// updated record.
type CampaignUpdater interface {
	ApplyCampaignAction(ctx context.Context, id string, action domain.CampaignAction) (domain.Campaign, error)
}
