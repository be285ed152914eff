package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkStatusTransitions(t *testing.T) {
	t.Run("draft approves to active or expires to deleted", func(t *testing.T) {
		require.True(t, StatusDraft.CanTransition(StatusActive))
		require.True(t, StatusDraft.CanTransition(StatusDeleted))
		require.False(t, StatusDraft.CanTransition(StatusArchived))
	})

	t.Run("active only archives", func(t *testing.T) {
		require.True(t, StatusActive.CanTransition(StatusArchived))
		require.False(t, StatusActive.CanTransition(StatusDraft))
		require.False(t, StatusActive.CanTransition(StatusDeleted))
	})

	t.Run("archived restores to active", func(t *testing.T) {
		require.True(t, StatusArchived.CanTransition(StatusActive))
		require.False(t, StatusArchived.CanTransition(StatusDeleted))
	})

	t.Run("deleted is terminal", func(t *testing.T) {
		for _, next := range []LinkStatus{StatusDraft, StatusActive, StatusArchived, StatusDeleted} {
			require.False(t, StatusDeleted.CanTransition(next))
		}
	})

	t.Run("no status transitions to itself", func(t *testing.T) {
		for _, s := range []LinkStatus{StatusDraft, StatusActive, StatusArchived, StatusDeleted} {
			require.False(t, s.CanTransition(s))
		}
	})
}

func TestLinkStatusValid(t *testing.T) {
	require.True(t, StatusDraft.Valid())
	require.True(t, StatusActive.Valid())
	require.True(t, StatusArchived.Valid())
	require.True(t, StatusDeleted.Valid())
	require.False(t, LinkStatus("pending").Valid())
	require.False(t, LinkStatus("").Valid())
}
