package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/fixtures"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

// Memory serves the fixture set from memory. Reads return deep copies and
// records change only through the explicit update methods.
type Memory struct {
	mu        sync.RWMutex
	patients  []domain.Patient
	campaigns []domain.Campaign
	logs      []domain.CallLog
	queue     []domain.CallQueueEntry
	events    []domain.CalendarEvent
	tasks     []domain.Task
	incoming  []domain.IncomingCall
	now       func() time.Time
}

// NewMemory seeds a Memory source from the fixtures.
func NewMemory() *Memory {
	return &Memory{
		patients:  fixtures.Patients(),
		campaigns: fixtures.Campaigns(),
		logs:      fixtures.CallLogs(),
		queue:     fixtures.Queue(),
		events:    fixtures.Events(),
		tasks:     fixtures.Tasks(),
		incoming:  fixtures.IncomingCalls(),
		now:       time.Now,
	}
}

func cloneAll[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func same[T any](v T) T { return v }

func (m *Memory) ListPatients(_ context.Context) ([]domain.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.patients, domain.Patient.Clone), nil
}

func (m *Memory) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.campaigns, same[domain.Campaign]), nil
}

func (m *Memory) ListCallLogs(_ context.Context) ([]domain.CallLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.logs, domain.CallLog.Clone), nil
}

func (m *Memory) ListQueue(_ context.Context) ([]domain.CallQueueEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.queue, domain.CallQueueEntry.Clone), nil
}

func (m *Memory) ListEvents(_ context.Context) ([]domain.CalendarEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.events, domain.CalendarEvent.Clone), nil
}

func (m *Memory) ListTasks(_ context.Context) ([]domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.tasks, domain.Task.Clone), nil
}

func (m *Memory) ListIncomingCalls(_ context.Context) ([]domain.IncomingCall, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.incoming, domain.IncomingCall.Clone), nil
}

// DashboardStats derives the summary from the current collections.
func (m *Memory) DashboardStats(_ context.Context) (domain.DashboardStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return stats.Dashboard(m.patients, m.campaigns, m.logs, m.now()), nil
}

func (m *Memory) PatientByID(_ context.Context, id string) (domain.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.patients {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Patient{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
}

// UpdateCampaign replaces campaign id with the result of fn. The record is
// validated before it is stored.
func (m *Memory) UpdateCampaign(_ context.Context, id string, fn func(domain.Campaign) (domain.Campaign, error)) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.campaigns {
		if c.ID != id {
			continue
		}
		next, err := fn(c)
		if err != nil {
			return domain.Campaign{}, err
		}
		if err := domain.Validate(next); err != nil {
			return domain.Campaign{}, err
		}
		m.campaigns[i] = next
		return next, nil
	}
	return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, ErrNotFound)
}

func (m *Memory) ApplyCampaignAction(ctx context.Context, id string, action domain.CampaignAction) (domain.Campaign, error) {
	return m.UpdateCampaign(ctx, id, func(c domain.Campaign) (domain.Campaign, error) {
		return c.Apply(action)
	})
}

// UpdateQueueEntry replaces queue entry id with the result of fn.
func (m *Memory) UpdateQueueEntry(_ context.Context, id string, fn func(domain.CallQueueEntry) domain.CallQueueEntry) (domain.CallQueueEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.queue {
		if e.ID != id {
			continue
		}
		next := fn(e.Clone())
		if err := domain.Validate(next); err != nil {
			return domain.CallQueueEntry{}, err
		}
		m.queue[i] = next
		return next.Clone(), nil
	}
	return domain.CallQueueEntry{}, fmt.Errorf("queue entry %s: %w", id, ErrNotFound)
}

var (
	_ Source          = (*Memory)(nil)
	_ CampaignUpdater = (*Memory)(nil)
)
