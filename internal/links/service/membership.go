package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

// MembershipService resolves the effective membership tier for a user.
//
// SelfHosted is the single-tenant escape hatch: every authenticated user is
// treated as a full member and the store is never consulted.
type MembershipService struct {
	Store      store.Store
	SelfHosted bool
}

// Resolve determines the effective tier for userID. Lookup failures fail
// closed: the user is treated as FREE rather than erroring the caller.
func (s *MembershipService) Resolve(ctx context.Context, userID string) domain.MembershipStatus {
	if s.SelfHosted {
		return domain.MembershipStatus{Tier: domain.TierMember, IsMember: true}
	}

	log := slogx.FromContext(ctx)

	m, err := s.Store.Memberships().GetMembership(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("membership lookup failed, treating user as free tier",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
		return domain.MembershipStatus{Tier: domain.TierFree}
	}

	if m.Tier != domain.TierMember {
		return domain.MembershipStatus{Tier: domain.TierFree}
	}

	// A stored MEMBER past its expiry counts as FREE for quota purposes.
	if m.ExpireAt != nil && !m.ExpireAt.After(time.Now()) {
		return domain.MembershipStatus{Tier: domain.TierFree, ExpireAt: m.ExpireAt}
	}

	return domain.MembershipStatus{
		Tier:     domain.TierMember,
		IsMember: true,
		ExpireAt: m.ExpireAt,
	}
}
