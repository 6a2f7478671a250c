package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-09"`), &d))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.January, d.Month())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-09"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`"2025-01-09T10:30:00Z"`), &d))
	out, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-09T10:30:00Z"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"09/01/2025"`), &d))
}

func TestDate_NullablePointer(t *testing.T) {
	var p struct {
		Next *Date `json:"next"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"next":null}`), &p))
	assert.Nil(t, p.Next)

	require.NoError(t, json.Unmarshal([]byte(`{"next":"2025-01-10"}`), &p))
	require.NotNil(t, p.Next)
	assert.Equal(t, 10, p.Next.Day())
}

func TestCampaign_Transitions(t *testing.T) {
	cases := []struct {
		from   CampaignStatus
		action CampaignAction
		to     CampaignStatus
		ok     bool
	}{
		{CampaignScheduled, CampaignStart, CampaignActive, true},
		{CampaignPaused, CampaignStart, CampaignActive, true},
		{CampaignActive, CampaignPause, CampaignPaused, true},
		{CampaignActive, CampaignStop, CampaignCompleted, true},
		{CampaignPaused, CampaignStop, CampaignCompleted, true},
		{CampaignActive, CampaignStart, CampaignActive, false},
		{CampaignScheduled, CampaignPause, CampaignScheduled, false},
		{CampaignCompleted, CampaignStop, CampaignCompleted, false},
		{CampaignCompleted, CampaignStart, CampaignCompleted, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.action), func(t *testing.T) {
			c := Campaign{ID: "camp-x", Status: tc.from}
			next, err := c.Apply(tc.action)
			if !tc.ok {
				assert.True(t, errors.Is(err, ErrInvalidTransition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, next.Status)
			assert.Equal(t, tc.from, c.Status, "receiver must not change")
		})
	}
}

func TestQueueEntry_SetStatusClearsPosition(t *testing.T) {
	pos := 2
	e := CallQueueEntry{ID: "CQ002", Status: QueueQueued, QueuePosition: &pos}

	calling := e.SetStatus(QueueCalling)
	require.NotNil(t, calling.QueuePosition)
	assert.Equal(t, 2, *calling.QueuePosition)

	done := calling.SetStatus(QueueCompleted)
	assert.Nil(t, done.QueuePosition)
	assert.NotNil(t, e.QueuePosition, "original entry keeps its position")

	*calling.QueuePosition = 9
	assert.Equal(t, 2, *e.QueuePosition, "clones do not alias")
}

func TestValidate(t *testing.T) {
	p := Patient{
		ID: "1", ResidentFirstName: "A", ResidentLastName: "B",
		Status: PatientActive, Priority: PriorityHigh,
		TotalCalls: 2, SuccessfulContacts: 3,
	}
	err := Validate(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)

	p.SuccessfulContacts = 2
	assert.NoError(t, Validate(p))

	p.Balance = -1
	assert.Error(t, Validate(p))
}

func TestValidate_CampaignDateRange(t *testing.T) {
	c := Campaign{
		ID: "c", Name: "n", Status: CampaignActive, Priority: PriorityLow,
		StartDate: MustDate("2025-01-31"), EndDate: MustDate("2025-01-01"),
	}
	assert.Error(t, Validate(c))

	c.EndDate = MustDate("2025-02-01")
	assert.NoError(t, Validate(c))
}

func TestTask_Overdue(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	assert.True(t, Task{DueDate: MustDate("2025-01-09"), Status: "pending"}.Overdue(now))
	assert.False(t, Task{DueDate: MustDate("2025-01-09"), Status: "completed"}.Overdue(now))
	assert.False(t, Task{DueDate: MustDate("2025-01-11"), Status: "pending"}.Overdue(now))
}
