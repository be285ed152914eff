package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStrategyService(t *testing.T) (*StrategyService, *sqlite.Store) {
	t.Helper()

	st := newTestStore(t)
	links, membership := newTestLinkService(t, st, false)
	return &StrategyService{Store: st, Membership: membership, Links: links}, st
}

func TestStrategyCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("members receive a one-time robot key", func(t *testing.T) {
		svc, st := newTestStrategyService(t)
		seedMember(t, st, "alice", nil)

		result, err := svc.Create(ctx, "alice", "ptt deals watcher", domain.SourcePTT)
		require.NoError(t, err)
		require.NotEmpty(t, result.RobotKey)
		require.True(t, result.Strategy.Enabled)
		require.Equal(t, result.RobotKey[len(result.RobotKey)-4:], result.Strategy.KeyTail)
		require.NotContains(t, result.Strategy.KeyHash, result.RobotKey)
	})

	t.Run("free users have no strategy quota", func(t *testing.T) {
		svc, _ := newTestStrategyService(t)

		_, err := svc.Create(ctx, "alice", "ptt deals watcher", domain.SourcePTT)
		require.ErrorIs(t, err, ErrStrategyQuotaExceeded)
	})

	t.Run("rejects unknown sources", func(t *testing.T) {
		svc, st := newTestStrategyService(t)
		seedMember(t, st, "alice", nil)

		_, err := svc.Create(ctx, "alice", "watcher", domain.StrategySource("dcard"))
		require.ErrorIs(t, err, ErrInvalidStrategyRequest)

		_, err = svc.Create(ctx, "alice", "", domain.SourcePTT)
		require.ErrorIs(t, err, ErrInvalidStrategyRequest)
	})
}

func TestStrategyIngestLink(t *testing.T) {
	ctx := context.Background()

	newStrategyWithKey := func(t *testing.T, svc *StrategyService, st *sqlite.Store) string {
		t.Helper()
		seedMember(t, st, "alice", nil)
		result, err := svc.Create(ctx, "alice", "ptt deals watcher", domain.SourcePTT)
		require.NoError(t, err)
		return result.RobotKey
	}

	t.Run("queues a draft for the strategy owner", func(t *testing.T) {
		svc, st := newTestStrategyService(t)
		key := newStrategyWithKey(t, svc, st)

		link, err := svc.IngestLink(ctx, key, CreateLinkParams{
			OGTitle:      "New Gadget",
			AffiliateURL: "https://shop.example.com/gadget?aff=42",
		})
		require.NoError(t, err)
		require.Equal(t, domain.StatusDraft, link.Status)
		require.Equal(t, "alice", link.UserID)
		require.NotEmpty(t, link.ShortCode)
		require.NotEmpty(t, link.StrategyID)

		drafts, err := st.Links().ListLinksByStatus(ctx, "alice", domain.StatusDraft)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
	})

	t.Run("unknown robot keys are rejected", func(t *testing.T) {
		svc, _ := newTestStrategyService(t)

		_, err := svc.IngestLink(ctx, "bogus-key", CreateLinkParams{
			AffiliateURL: "https://shop.example.com/item",
		})
		require.ErrorIs(t, err, ErrStrategyNotFound)
	})

	t.Run("stops at the daily robot quota", func(t *testing.T) {
		svc, st := newTestStrategyService(t)
		key := newStrategyWithKey(t, svc, st)

		for i := 0; i < 10; i++ {
			_, err := svc.IngestLink(ctx, key, CreateLinkParams{
				AffiliateURL: fmt.Sprintf("https://shop.example.com/item/%d", i),
			})
			require.NoError(t, err)
		}

		_, err := svc.IngestLink(ctx, key, CreateLinkParams{
			AffiliateURL: "https://shop.example.com/one-too-many",
		})
		require.ErrorIs(t, err, ErrRobotQuotaExceeded)

		// The blocked run wrote nothing.
		drafts, err := st.Links().ListLinksByStatus(ctx, "alice", domain.StatusDraft)
		require.NoError(t, err)
		require.Len(t, drafts, 10)
	})
}
