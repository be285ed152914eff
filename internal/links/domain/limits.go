package domain

// Retention windows and the member robot ceiling. Members keep a bounded
// daily robot quota even though every other resource is unlimited.
const (
	DraftExpireDays       = 30
	LinkArchiveDays       = 90
	MemberRobotDailyLimit = 10
)

// Limit is a resource quota. The unlimited form is a distinct variant rather
// than a large integer so comparison and percentage logic stay exact.
type Limit struct {
	unlimited bool
	n         int
}

// Bounded returns a limit of n resources.
func Bounded(n int) Limit { return Limit{n: n} }

// Unlimited is the no-cap limit.
var Unlimited = Limit{unlimited: true}

// IsUnlimited reports whether the limit has no cap.
func (l Limit) IsUnlimited() bool { return l.unlimited }

// Value returns the numeric cap; it is meaningless for unlimited limits.
func (l Limit) Value() int { return l.n }

// Allows reports whether a resource count of current permits one more.
func (l Limit) Allows(current int) bool {
	if l.unlimited {
		return true
	}
	return current < l.n
}

// Percent returns the integer percentage of the limit consumed by current.
// Unlimited limits always report 0 so the figure never overflows a gauge.
func (l Limit) Percent(current int) int {
	if l.unlimited || l.n <= 0 {
		return 0
	}
	return current * 100 / l.n
}

// Limits holds the per-tier resource quotas.
type Limits struct {
	Links      Limit
	Templates  Limit
	Strategies Limit
	RobotDaily Limit
}

// LimitsFor maps a membership tier to its quotas. Pure; unknown tiers fall
// back to the free quotas.
func LimitsFor(tier Tier) Limits {
	if tier == TierMember {
		return Limits{
			Links:      Unlimited,
			Templates:  Unlimited,
			Strategies: Unlimited,
			RobotDaily: Bounded(MemberRobotDailyLimit),
		}
	}
	return Limits{
		Links:      Bounded(3),
		Templates:  Bounded(1),
		Strategies: Bounded(0),
		RobotDaily: Bounded(0),
	}
}
