package service

import (
	"context"
	"testing"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store/drivers/sqlite"
	"github.com/linkmintapp/linkmint/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestLinkService(t *testing.T, st *sqlite.Store, selfHosted bool) (*LinkService, *MembershipService) {
	t.Helper()

	membership := &MembershipService{Store: st, SelfHosted: selfHosted}
	links, err := NewLinkService(st, membership, "test-salt")
	require.NoError(t, err)
	return links, membership
}

func seedMember(t *testing.T, st *sqlite.Store, userID string, expireAt *time.Time) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, st.Memberships().UpsertMembership(context.Background(), domain.Membership{
		UserID:    userID,
		Tier:      domain.TierMember,
		ExpireAt:  expireAt,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func seedStrategy(t *testing.T, st *sqlite.Store, userID string) domain.Strategy {
	t.Helper()

	now := time.Now().UTC()
	s := domain.Strategy{
		ID:        idx.New().String(),
		UserID:    userID,
		Name:      "ptt watcher",
		Source:    domain.SourcePTT,
		KeyHash:   idx.New().String(),
		KeyTail:   "abcd",
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Strategies().CreateStrategy(context.Background(), s))
	return s
}

func seedLink(
	t *testing.T,
	st *sqlite.Store,
	userID string,
	status domain.LinkStatus,
	createdAt time.Time,
) domain.Link {
	t.Helper()

	link := domain.Link{
		ID:           idx.New().String(),
		UserID:       userID,
		ShortCode:    idx.New().String(),
		Status:       status,
		AffiliateURL: "https://shop.example.com/item",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, st.Links().CreateLink(context.Background(), link))
	return link
}
