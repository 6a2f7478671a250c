package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

func TestMemory_ListsFixtures(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	patients, err := m.ListPatients(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 5)

	campaigns, err := m.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)

	logs, err := m.ListCallLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 4)

	queue, err := m.ListQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 4)

	events, err := m.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 6)

	tasks, err := m.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	incoming, err := m.ListIncomingCalls(ctx)
	require.NoError(t, err)
	assert.Len(t, incoming, 4)
}

func TestMemory_ReadsAreCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	patients, err := m.ListPatients(ctx)
	require.NoError(t, err)
	patients[0].Balance = 0
	patients[0].LastContact.Time = time.Time{}

	again, err := m.ListPatients(ctx)
	require.NoError(t, err)
	assert.NotZero(t, again[0].Balance)
	require.NotNil(t, again[0].LastContact)
	assert.False(t, again[0].LastContact.IsZero())
}

func TestMemory_PatientByID(t *testing.T) {
	m := NewMemory()

	p, err := m.PatientByID(context.Background(), "600999")
	require.NoError(t, err)
	assert.Equal(t, "John", p.ResidentFirstName)

	_, err = m.PatientByID(context.Background(), "999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ApplyCampaignAction(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	c, err := m.ApplyCampaignAction(ctx, "camp-001", domain.CampaignPause)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, c.Status)

	c, err = m.ApplyCampaignAction(ctx, "camp-001", domain.CampaignStart)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, c.Status)

	_, err = m.ApplyCampaignAction(ctx, "camp-003", domain.CampaignStart)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = m.ApplyCampaignAction(ctx, "camp-404", domain.CampaignStart)
	assert.ErrorIs(t, err, ErrNotFound)

	campaigns, err := m.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, campaigns[0].Status)
	assert.Equal(t, domain.CampaignCompleted, campaigns[2].Status)
}

func TestMemory_UpdateCampaignRejectsInvalid(t *testing.T) {
	m := NewMemory()
	_, err := m.UpdateCampaign(context.Background(), "camp-001", func(c domain.Campaign) (domain.Campaign, error) {
		c.CallsCompleted = c.TotalPatients + 1
		return c, nil
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	c, err := m.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 89, c[0].CallsCompleted)
}

func TestMemory_UpdateQueueEntry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	e, err := m.UpdateQueueEntry(ctx, "CQ002", func(e domain.CallQueueEntry) domain.CallQueueEntry {
		return e.SetStatus(domain.QueueCompleted)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.QueueCompleted, e.Status)
	assert.Nil(t, e.QueuePosition)

	_, err = m.UpdateQueueEntry(ctx, "CQ999", func(e domain.CallQueueEntry) domain.CallQueueEntry { return e })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_DashboardStatsFollowsCollections(t *testing.T) {
	m := NewMemory()
	m.now = func() time.Time { return time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC) }

	s, err := m.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalPatients)
	assert.Equal(t, 4, s.CallsToday)
	assert.Equal(t, "Follow-up Campaign", s.TopPerformingCampaign)

	m.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }
	s, err = m.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.CallsToday)
	assert.Zero(t, s.AverageCallDuration)
}
