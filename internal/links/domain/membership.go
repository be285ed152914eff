package domain

import "time"

// Tier is the membership classification governing quotas.
type Tier string

const (
	TierFree   Tier = "FREE"
	TierMember Tier = "MEMBER"
)

// Membership is the stored membership row for a user. ExpireAt is nil for
// memberships that never expire.
type Membership struct {
	UserID    string
	Tier      Tier
	ExpireAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipStatus is the resolved, effective membership for a request.
// A stored MEMBER whose expiry has passed resolves as not a member.
type MembershipStatus struct {
	Tier     Tier
	IsMember bool
	ExpireAt *time.Time
}
