package domain

import "time"

// StrategySource identifies where an automation strategy pulls links from.
type StrategySource string

const (
	SourcePTT     StrategySource = "ptt"
	SourceETtoday StrategySource = "ettoday"
	SourceSheets  StrategySource = "sheets"
)

// ValidSource reports whether s is a known automation source.
func ValidSource(s StrategySource) bool {
	switch s {
	case SourcePTT, SourceETtoday, SourceSheets:
		return true
	}
	return false
}

// Strategy is an automation configuration. Robots authenticate ingest calls
// with an opaque key; only its fingerprint and last four characters are kept.
type Strategy struct {
	ID        string
	UserID    string
	Name      string
	Source    StrategySource
	KeyHash   string
	KeyTail   string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RobotRun records one automation ingest invocation, counted against the
// owner's daily robot quota.
type RobotRun struct {
	ID         string
	StrategyID string
	UserID     string
	RanAt      time.Time
}
