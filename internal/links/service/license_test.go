package service

import (
	"context"
	"testing"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func seedLicenseKey(t *testing.T, st *sqlite.Store, key string, tier domain.LicenseTier) {
	t.Helper()
	require.NoError(t, st.Licenses().CreateLicenseKey(context.Background(), domain.LicenseKey{
		Key:       key,
		Tier:      tier,
		CreatedAt: time.Now().UTC(),
	}))
}

func TestLicenseActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes case and whitespace before matching", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}
		seedLicenseKey(t, st, "PRO-AB12-CD34", domain.LicensePro)

		result, err := svc.Activate(ctx, "alice", "  pro-ab12-cd34 ")
		require.NoError(t, err)
		require.Equal(t, domain.TierMember, result.Membership.Tier)
	})

	t.Run("pro keys grant a year of membership", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}
		seedLicenseKey(t, st, "PRO-AB12-CD34", domain.LicensePro)

		result, err := svc.Activate(ctx, "alice", "PRO-AB12-CD34")
		require.NoError(t, err)
		require.NotNil(t, result.Membership.ExpireAt)

		expected := time.Now().UTC().AddDate(1, 0, 0)
		require.WithinDuration(t, expected, *result.Membership.ExpireAt, time.Minute)
	})

	t.Run("vip keys grant membership without expiry", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}
		seedLicenseKey(t, st, "VIP-WXYZ-9876", domain.LicenseVIP)

		result, err := svc.Activate(ctx, "alice", "VIP-WXYZ-9876")
		require.NoError(t, err)
		require.Equal(t, domain.TierMember, result.Membership.Tier)
		require.Nil(t, result.Membership.ExpireAt)
	})

	t.Run("malformed keys are rejected before touching the store", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}

		for _, raw := range []string{"", "XYZ-1234-5678", "PRO-12-34", "PRO-AB12-CD34-EXTRA"} {
			_, err := svc.Activate(ctx, "alice", raw)
			require.ErrorIs(t, err, ErrInvalidKeyFormat, "key %q", raw)
		}
	})

	t.Run("unknown keys fail activation", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}

		_, err := svc.Activate(ctx, "alice", "PRO-ZZZZ-ZZZZ")
		require.ErrorIs(t, err, ErrActivationFailed)
	})

	t.Run("keys are single use", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}
		seedLicenseKey(t, st, "PRO-AB12-CD34", domain.LicensePro)

		_, err := svc.Activate(ctx, "alice", "PRO-AB12-CD34")
		require.NoError(t, err)

		// A second redemption fails identically for the owner and anyone else.
		_, err = svc.Activate(ctx, "bob", "PRO-AB12-CD34")
		require.ErrorIs(t, err, ErrActivationFailed)

		_, err = svc.Activate(ctx, "alice", "PRO-AB12-CD34")
		require.ErrorIs(t, err, ErrActivationFailed)
	})

	t.Run("redeemed key upgrades the membership row", func(t *testing.T) {
		st := newTestStore(t)
		svc := &LicenseService{Store: st}
		membership := &MembershipService{Store: st}
		seedLicenseKey(t, st, "VIP-WXYZ-9876", domain.LicenseVIP)

		require.False(t, membership.Resolve(ctx, "alice").IsMember)

		_, err := svc.Activate(ctx, "alice", "VIP-WXYZ-9876")
		require.NoError(t, err)

		status := membership.Resolve(ctx, "alice")
		require.True(t, status.IsMember)
		require.Equal(t, domain.TierMember, status.Tier)
	})
}
