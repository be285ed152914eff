package service

import (
	"context"
	"testing"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestDraftApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes a draft to active", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DraftService{Store: st}

		draft := seedLink(t, st, "alice", domain.StatusDraft, time.Now().UTC())

		approved, err := svc.Approve(ctx, draft.ID, "alice")
		require.NoError(t, err)
		require.Equal(t, domain.StatusActive, approved.Status)

		got, err := st.Links().GetLinkByID(ctx, draft.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusActive, got.Status)
	})

	t.Run("synthesizes a title from og_title when empty", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DraftService{Store: st}

		now := time.Now().UTC()
		draft := domain.Link{
			ID:           idx.New().String(),
			UserID:       "alice",
			ShortCode:    idx.New().String(),
			Status:       domain.StatusDraft,
			OGTitle:      "New Gadget",
			AffiliateURL: "https://shop.example.com/gadget",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		require.NoError(t, st.Links().CreateLink(ctx, draft))

		approved, err := svc.Approve(ctx, draft.ID, "alice")
		require.NoError(t, err)
		require.Equal(t, "[automation]New Gadget", approved.Title)
	})

	t.Run("keeps an existing title", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DraftService{Store: st}

		now := time.Now().UTC()
		draft := domain.Link{
			ID:           idx.New().String(),
			UserID:       "alice",
			ShortCode:    idx.New().String(),
			Status:       domain.StatusDraft,
			Title:        "Hand-written",
			OGTitle:      "Scraped",
			AffiliateURL: "https://shop.example.com/gadget",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		require.NoError(t, st.Links().CreateLink(ctx, draft))

		approved, err := svc.Approve(ctx, draft.ID, "alice")
		require.NoError(t, err)
		require.Equal(t, "Hand-written", approved.Title)
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DraftService{Store: st}

		_, err := svc.Approve(ctx, idx.New().String(), "alice")
		require.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("another user's draft is indistinguishable from a missing one", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DraftService{Store: st}

		draft := seedLink(t, st, "bob", domain.StatusDraft, time.Now().UTC())

		_, err := svc.Approve(ctx, draft.ID, "alice")
		require.ErrorIs(t, err, ErrLinkNotFound)

		// The draft itself is untouched.
		got, err := st.Links().GetLinkByID(ctx, draft.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusDraft, got.Status)
	})

	t.Run("approving twice fails the second time", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DraftService{Store: st}

		draft := seedLink(t, st, "alice", domain.StatusDraft, time.Now().UTC())

		_, err := svc.Approve(ctx, draft.ID, "alice")
		require.NoError(t, err)

		_, err = svc.Approve(ctx, draft.ID, "alice")
		require.ErrorIs(t, err, ErrLinkNotFound)
	})
}

func TestDraftList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DraftService{Store: st}

	now := time.Now().UTC()
	seedLink(t, st, "alice", domain.StatusDraft, now.Add(-2*time.Hour))
	newest := seedLink(t, st, "alice", domain.StatusDraft, now)
	seedLink(t, st, "alice", domain.StatusActive, now)
	seedLink(t, st, "bob", domain.StatusDraft, now)

	drafts, err := svc.ListDrafts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	require.Equal(t, newest.ID, drafts[0].ID)
}
