package domain

import "fmt"

// CampaignStatus is the run state of a calling campaign.
type CampaignStatus string

const (
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign is a batch of outbound calls over a date range.
type Campaign struct {
	ID                  string         `json:"id" validate:"required"`
	Name                string         `json:"name" validate:"required"`
	Description         string         `json:"description"`
	Status              CampaignStatus `json:"status" validate:"oneof=scheduled active paused completed"`
	StartDate           Date           `json:"startDate"`
	EndDate             Date           `json:"endDate"`
	TotalPatients       int            `json:"totalPatients" validate:"gte=0"`
	CallsCompleted      int            `json:"callsCompleted" validate:"gte=0,ltefield=TotalPatients"`
	CallsScheduled      int            `json:"callsScheduled" validate:"gte=0"`
	SuccessRate         float64        `json:"successRate"`
	CollectionRate      float64        `json:"collectionRate"`
	TotalRecovered      float64        `json:"totalRecovered" validate:"gte=0"`
	AverageCallDuration int            `json:"averageCallDuration" validate:"gte=0"`
	Priority            Priority       `json:"priority" validate:"oneof=high medium low"`
	AgentType           string         `json:"agentType"`
	CreatedBy           string         `json:"createdBy"`
	CreatedAt           Date           `json:"createdAt"`
}

// CampaignAction names an operator-triggered transition.
type CampaignAction string

const (
	CampaignStart CampaignAction = "start"
	CampaignPause CampaignAction = "pause"
	CampaignStop  CampaignAction = "stop"
)

var campaignTransitions = map[CampaignAction]struct {
	from []CampaignStatus
	to   CampaignStatus
}{
	CampaignStart: {from: []CampaignStatus{CampaignScheduled, CampaignPaused}, to: CampaignActive},
	CampaignPause: {from: []CampaignStatus{CampaignActive}, to: CampaignPaused},
	CampaignStop:  {from: []CampaignStatus{CampaignActive, CampaignPaused}, to: CampaignCompleted},
}

// Can reports whether action is allowed from the campaign's current status.
func (c Campaign) Can(action CampaignAction) bool {
	t, ok := campaignTransitions[action]
	if !ok {
		return false
	}
	for _, s := range t.from {
		if s == c.Status {
			return true
		}
	}
	return false
}

// Apply returns the campaign after action. The receiver is not modified.
func (c Campaign) Apply(action CampaignAction) (Campaign, error) {
	if !c.Can(action) {
		return c, fmt.Errorf("%w: cannot %s campaign %s in status %s", ErrInvalidTransition, action, c.ID, c.Status)
	}
	c.Status = campaignTransitions[action].to
	return c, nil
}
