package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	t.Run("bounded limits allow up to n", func(t *testing.T) {
		l := Bounded(3)
		require.True(t, l.Allows(0))
		require.True(t, l.Allows(2))
		require.False(t, l.Allows(3))
		require.False(t, l.Allows(10))
	})

	t.Run("zero bound allows nothing", func(t *testing.T) {
		require.False(t, Bounded(0).Allows(0))
	})

	t.Run("unlimited allows everything", func(t *testing.T) {
		require.True(t, Unlimited.Allows(0))
		require.True(t, Unlimited.Allows(1_000_000))
		require.True(t, Unlimited.IsUnlimited())
	})

	t.Run("percent saturates against the bound", func(t *testing.T) {
		require.Equal(t, 0, Bounded(3).Percent(0))
		require.Equal(t, 33, Bounded(3).Percent(1))
		require.Equal(t, 100, Bounded(3).Percent(3))
	})

	t.Run("percent of unlimited is always zero", func(t *testing.T) {
		require.Equal(t, 0, Unlimited.Percent(0))
		require.Equal(t, 0, Unlimited.Percent(99))
	})
}

func TestLimitsFor(t *testing.T) {
	t.Run("free tier", func(t *testing.T) {
		l := LimitsFor(TierFree)
		require.Equal(t, Bounded(3), l.Links)
		require.Equal(t, Bounded(1), l.Templates)
		require.Equal(t, Bounded(0), l.Strategies)
		require.Equal(t, Bounded(0), l.RobotDaily)
	})

	t.Run("member tier caps only the robot", func(t *testing.T) {
		l := LimitsFor(TierMember)
		require.True(t, l.Links.IsUnlimited())
		require.True(t, l.Templates.IsUnlimited())
		require.True(t, l.Strategies.IsUnlimited())
		require.Equal(t, Bounded(10), l.RobotDaily)
	})

	t.Run("unknown tiers fall back to free", func(t *testing.T) {
		require.Equal(t, LimitsFor(TierFree), LimitsFor(Tier("GOLD")))
	})
}

func TestNewGauge(t *testing.T) {
	t.Run("bounded gauge carries the bound", func(t *testing.T) {
		g := NewGauge(2, Bounded(3))
		require.Equal(t, 2, g.Current)
		require.Equal(t, 3, g.LimitValue)
		require.False(t, g.Unlimited)
		require.Equal(t, 66, g.Percentage)
	})

	t.Run("unlimited gauge reports -1", func(t *testing.T) {
		g := NewGauge(42, Unlimited)
		require.Equal(t, -1, g.LimitValue)
		require.True(t, g.Unlimited)
		require.Equal(t, 0, g.Percentage)
	})
}
