package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/speps/go-hashids/v2"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/idx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

var (
	ErrInvalidLinkRequest = errors.New("invalid link request")
	ErrQuotaExceeded      = errors.New("link quota exceeded")

	// ErrLinkNotFound deliberately covers "does not exist", "not owned by
	// the requester" and "wrong status" so link ids of other users cannot be
	// probed. Do not split it into finer kinds.
	ErrLinkNotFound = errors.New("link not found")
)

const shortCodeMinLength = 5

// LinkService creates, lists and resolves short links.
type LinkService struct {
	Store      store.Store
	Membership *MembershipService

	hashID *hashids.HashID
}

// CreateLinkParams carries the caller-supplied fields for a new link.
type CreateLinkParams struct {
	Title         string
	OGTitle       string
	OGDescription string
	OGImage       string
	AffiliateURL  string
	TemplateID    string
}

// NewLinkService wires a link service. salt seeds the short-code generator
// and must stay stable across restarts so existing codes keep decoding.
func NewLinkService(st store.Store, membership *MembershipService, salt string) (*LinkService, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = shortCodeMinLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &LinkService{
		Store:      st,
		Membership: membership,
		hashID:     hashID,
	}, nil
}

// Create validates the affiliate URL, enforces the tier's link quota, and
// stores a new active link with a generated short code.
func (s *LinkService) Create(ctx context.Context, userID string, p CreateLinkParams) (domain.Link, error) {
	log := slogx.FromContext(ctx)

	if _, err := url.ParseRequestURI(p.AffiliateURL); err != nil {
		return domain.Link{}, ErrInvalidLinkRequest
	}

	status := s.Membership.Resolve(ctx, userID)
	limits := domain.LimitsFor(status.Tier)

	current, err := s.Store.Links().CountActiveLinks(ctx, userID)
	if err != nil {
		log.Error("failed to count active links", slog.Any("error", err))
		return domain.Link{}, err
	}
	if !limits.Links.Allows(current) {
		log.Warn("link creation blocked by quota",
			slog.String("user_id", userID),
			slog.Int("current", current),
		)
		return domain.Link{}, ErrQuotaExceeded
	}

	if p.TemplateID != "" {
		if err := s.checkTemplate(ctx, userID, p.TemplateID, limits); err != nil {
			return domain.Link{}, err
		}
	}

	code, err := s.generateShortCode()
	if err != nil {
		log.Error("failed to generate short code", slog.Any("error", err))
		return domain.Link{}, err
	}

	now := time.Now().UTC()
	link := domain.Link{
		ID:            idx.New().String(),
		UserID:        userID,
		ShortCode:     code,
		Status:        domain.StatusActive,
		Title:         p.Title,
		OGTitle:       p.OGTitle,
		OGDescription: p.OGDescription,
		OGImage:       p.OGImage,
		AffiliateURL:  p.AffiliateURL,
		TemplateID:    p.TemplateID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Links().CreateLink(ctx, link); err != nil {
		log.Error("failed to create link", slog.Any("error", err))
		return domain.Link{}, err
	}

	log.Info("link created",
		slog.String("link_id", link.ID),
		slog.String("short_code", link.ShortCode),
		slog.String("user_id", userID),
	)
	return link, nil
}

// ListActive returns the user's active links, newest first.
func (s *LinkService) ListActive(ctx context.Context, userID string) ([]domain.Link, error) {
	return s.Store.Links().ListLinksByStatus(ctx, userID, domain.StatusActive)
}

// Resolve looks up an active link by short code and records the click.
// Draft, archived and deleted codes resolve the same as unknown ones.
func (s *LinkService) Resolve(ctx context.Context, shortCode string) (domain.Link, error) {
	log := slogx.FromContext(ctx)

	link, err := s.Store.Links().GetActiveLinkByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Link{}, ErrLinkNotFound
		}
		log.Error("short code lookup failed", slog.Any("error", err))
		return domain.Link{}, err
	}

	// Click recording keeps the archival sweep honest but must not block the
	// redirect; a failed write is logged and the visitor moves on.
	if err := s.Store.Links().RecordClick(ctx, link.ID); err != nil {
		log.Error("failed to record click",
			slog.String("link_id", link.ID),
			slog.Any("error", err),
		)
	}

	return link, nil
}

// checkTemplate verifies the template exists, belongs to the user, and that
// adopting it stays inside the tier's templates-in-use quota. Reusing a
// template an active link already references never consumes quota.
func (s *LinkService) checkTemplate(
	ctx context.Context,
	userID, templateID string,
	limits domain.Limits,
) error {
	t, err := s.Store.Templates().GetTemplateByID(ctx, templateID)
	if err != nil || t.UserID != userID {
		return ErrInvalidLinkRequest
	}

	alreadyInUse, err := s.Store.Links().TemplateInUse(ctx, userID, templateID)
	if err != nil {
		return err
	}
	if alreadyInUse {
		return nil
	}

	inUse, err := s.Store.Links().CountTemplatesInUse(ctx, userID)
	if err != nil {
		return err
	}
	if !limits.Templates.Allows(inUse) {
		return ErrTemplateQuotaExceeded
	}
	return nil
}

func (s *LinkService) generateShortCode() (string, error) {
	now := time.Now().UnixNano()
	return s.hashID.Encode([]int{int(now)})
}
