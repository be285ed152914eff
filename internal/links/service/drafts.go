package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

// DraftService owns the draft side of the link lifecycle: listing a user's
// pending automation drafts and approving them into active links.
type DraftService struct {
	Store store.Store
}

// ListDrafts returns every draft owned by userID, newest-created first.
func (s *DraftService) ListDrafts(ctx context.Context, userID string) ([]domain.Link, error) {
	return s.Store.Links().ListLinksByStatus(ctx, userID, domain.StatusDraft)
}

// Approve transitions a draft to active. Every precondition failure (missing
// link, wrong owner, no longer a draft) surfaces as ErrLinkNotFound. When the
// draft has an og_title but no title yet, the title is synthesized as
// "[automation]{og_title}".
func (s *DraftService) Approve(ctx context.Context, linkID, userID string) (domain.Link, error) {
	log := slogx.FromContext(ctx)

	link, err := s.Store.Links().GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Link{}, ErrLinkNotFound
		}
		log.Error("failed to fetch link for approval", slog.Any("error", err))
		return domain.Link{}, err
	}

	if link.UserID != userID || link.Status != domain.StatusDraft {
		return domain.Link{}, ErrLinkNotFound
	}

	title := link.Title
	if title == "" && link.OGTitle != "" {
		title = "[automation]" + link.OGTitle
	}

	// The status precondition in the update serializes a concurrent expiry
	// sweep against this approval: whichever lands second matches no row.
	err = s.Store.Links().UpdateLinkStatus(
		ctx, linkID, userID,
		domain.StatusDraft, domain.StatusActive,
		title,
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Link{}, ErrLinkNotFound
		}
		log.Error("failed to approve draft",
			slog.String("link_id", linkID),
			slog.Any("error", err),
		)
		return domain.Link{}, err
	}

	link.Status = domain.StatusActive
	link.Title = title

	log.Info("draft approved",
		slog.String("link_id", linkID),
		slog.String("user_id", userID),
	)
	return link, nil
}
