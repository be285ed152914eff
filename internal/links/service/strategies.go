package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/cryptox"
	"github.com/linkmintapp/linkmint/pkg/idx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

var (
	ErrInvalidStrategyRequest = errors.New("invalid strategy request")
	ErrStrategyQuotaExceeded  = errors.New("strategy quota exceeded")
	ErrStrategyNotFound       = errors.New("strategy not found or disabled")
	ErrRobotQuotaExceeded     = errors.New("daily robot quota exceeded")
)

// StrategyService manages automation strategies and the robot ingest path
// that feeds draft links into the approval queue.
type StrategyService struct {
	Store      store.Store
	Membership *MembershipService
	Links      *LinkService
}

// CreateStrategyResult carries the new strategy plus the raw robot key, which
// is shown exactly once; only its fingerprint is stored.
type CreateStrategyResult struct {
	Strategy domain.Strategy
	RobotKey string
}

// Create registers an automation strategy. Free users have a strategy quota
// of zero, so this is effectively member-only.
func (s *StrategyService) Create(
	ctx context.Context,
	userID, name string,
	source domain.StrategySource,
) (CreateStrategyResult, error) {
	log := slogx.FromContext(ctx)

	if name == "" || !domain.ValidSource(source) {
		return CreateStrategyResult{}, ErrInvalidStrategyRequest
	}

	status := s.Membership.Resolve(ctx, userID)
	limits := domain.LimitsFor(status.Tier)

	current, err := s.Store.Strategies().CountStrategies(ctx, userID)
	if err != nil {
		log.Error("failed to count strategies", slog.Any("error", err))
		return CreateStrategyResult{}, err
	}
	if !limits.Strategies.Allows(current) {
		return CreateStrategyResult{}, ErrStrategyQuotaExceeded
	}

	key, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate robot key", slog.Any("error", err))
		return CreateStrategyResult{}, err
	}

	now := time.Now().UTC()
	strategy := domain.Strategy{
		ID:        idx.New().String(),
		UserID:    userID,
		Name:      name,
		Source:    source,
		KeyHash:   cryptox.FingerprintToken(key),
		KeyTail:   key[len(key)-4:],
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Strategies().CreateStrategy(ctx, strategy); err != nil {
		log.Error("failed to create strategy", slog.Any("error", err))
		return CreateStrategyResult{}, err
	}

	log.Info("strategy created",
		slog.String("strategy_id", strategy.ID),
		slog.String("user_id", userID),
		slog.String("source", string(source)),
	)
	return CreateStrategyResult{Strategy: strategy, RobotKey: key}, nil
}

// List returns the user's strategies, newest first.
func (s *StrategyService) List(ctx context.Context, userID string) ([]domain.Strategy, error) {
	return s.Store.Strategies().ListStrategies(ctx, userID)
}

// IngestLink is the robot entry point: a scraper posts a found link with its
// strategy key and a draft is queued for the owner's review. The owner's
// daily robot quota is enforced before anything is written.
func (s *StrategyService) IngestLink(
	ctx context.Context,
	rawKey string,
	p CreateLinkParams,
) (domain.Link, error) {
	log := slogx.FromContext(ctx)

	if rawKey == "" || p.AffiliateURL == "" {
		return domain.Link{}, ErrInvalidStrategyRequest
	}

	strategy, err := s.Store.Strategies().GetEnabledStrategyByKeyHash(
		ctx, cryptox.FingerprintToken(rawKey),
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("ingest attempted with unknown or disabled robot key")
			return domain.Link{}, ErrStrategyNotFound
		}
		log.Error("failed to look up strategy", slog.Any("error", err))
		return domain.Link{}, err
	}

	status := s.Membership.Resolve(ctx, strategy.UserID)
	limits := domain.LimitsFor(status.Tier)

	runsToday, err := s.Store.RobotRuns().CountRobotRunsSince(
		ctx, strategy.UserID, startOfDayUTC(time.Now()),
	)
	if err != nil {
		log.Error("failed to count robot runs", slog.Any("error", err))
		return domain.Link{}, err
	}
	if !limits.RobotDaily.Allows(runsToday) {
		log.Warn("ingest blocked by daily robot quota",
			slog.String("strategy_id", strategy.ID),
			slog.Int("runs_today", runsToday),
		)
		return domain.Link{}, ErrRobotQuotaExceeded
	}

	code, err := s.Links.generateShortCode()
	if err != nil {
		log.Error("failed to generate short code", slog.Any("error", err))
		return domain.Link{}, err
	}

	now := time.Now().UTC()
	link := domain.Link{
		ID:            idx.New().String(),
		UserID:        strategy.UserID,
		ShortCode:     code,
		Status:        domain.StatusDraft,
		Title:         p.Title,
		OGTitle:       p.OGTitle,
		OGDescription: p.OGDescription,
		OGImage:       p.OGImage,
		AffiliateURL:  p.AffiliateURL,
		TemplateID:    p.TemplateID,
		StrategyID:    strategy.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	run := domain.RobotRun{
		ID:         idx.New().String(),
		StrategyID: strategy.ID,
		UserID:     strategy.UserID,
		RanAt:      now,
	}

	// Draft and run land atomically so the quota cannot drift from the
	// drafts actually queued.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Links().CreateLink(ctx, link); err != nil {
			return err
		}
		return tx.RobotRuns().CreateRobotRun(ctx, run)
	})
	if err != nil {
		log.Error("failed to ingest automation link", slog.Any("error", err))
		return domain.Link{}, err
	}

	log.Info("automation draft queued",
		slog.String("link_id", link.ID),
		slog.String("strategy_id", strategy.ID),
		slog.String("user_id", strategy.UserID),
	)
	return link, nil
}
