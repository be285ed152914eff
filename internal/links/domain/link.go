package domain

import "time"

// LinkStatus is the lifecycle state of a link. Automation-sourced links enter
// as drafts and become visible only after their owner approves them.
type LinkStatus string

const (
	StatusDraft    LinkStatus = "draft"
	StatusActive   LinkStatus = "active"
	StatusArchived LinkStatus = "archived"
	StatusDeleted  LinkStatus = "deleted"
)

// linkTransitions is the allowed next-status set per current status.
// archived -> active is the admin restore path; deleted is terminal.
var linkTransitions = map[LinkStatus][]LinkStatus{
	StatusDraft:    {StatusActive, StatusDeleted},
	StatusActive:   {StatusArchived},
	StatusArchived: {StatusActive},
	StatusDeleted:  {},
}

// CanTransition reports whether a link may move from to next.
func (s LinkStatus) CanTransition(next LinkStatus) bool {
	for _, allowed := range linkTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s LinkStatus) Valid() bool {
	_, ok := linkTransitions[s]
	return ok
}

type Link struct {
	ID            string
	UserID        string
	ShortCode     string
	Status        LinkStatus
	Title         string
	OGTitle       string
	OGDescription string
	OGImage       string
	AffiliateURL  string
	TemplateID    string // Empty when the link uses no landing template
	StrategyID    string // Set for automation-sourced links
	ClickCount    int64
	LastClickAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
