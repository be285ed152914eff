package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

// UsageService assembles the per-user usage report: four independent counts
// combined with the tier's quotas. It never mutates data.
type UsageService struct {
	Store      store.Store
	Membership *MembershipService
}

// Report computes the usage report for userID. The four counts are read
// independently and are not a consistent snapshot; a failed count logs the
// fault and contributes zero so the rest of the report still comes back.
func (s *UsageService) Report(ctx context.Context, userID string) domain.UsageReport {
	log := slogx.FromContext(ctx)

	status := s.Membership.Resolve(ctx, userID)
	limits := domain.LimitsFor(status.Tier)

	count := func(name string, fn func(context.Context) (int, error)) int {
		n, err := fn(ctx)
		if err != nil {
			log.Error("usage count failed, defaulting to zero",
				slog.String("count", name),
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			return 0
		}
		return n
	}

	links := count("active_links", func(ctx context.Context) (int, error) {
		return s.Store.Links().CountActiveLinks(ctx, userID)
	})
	templates := count("templates_in_use", func(ctx context.Context) (int, error) {
		return s.Store.Links().CountTemplatesInUse(ctx, userID)
	})
	strategies := count("strategies", func(ctx context.Context) (int, error) {
		return s.Store.Strategies().CountStrategies(ctx, userID)
	})
	robotToday := count("robot_runs_today", func(ctx context.Context) (int, error) {
		return s.Store.RobotRuns().CountRobotRunsSince(ctx, userID, startOfDayUTC(time.Now()))
	})

	return domain.UsageReport{
		Links:      domain.NewGauge(links, limits.Links),
		Templates:  domain.NewGauge(templates, limits.Templates),
		Strategies: domain.NewGauge(strategies, limits.Strategies),
		RobotToday: domain.NewGauge(robotToday, limits.RobotDaily),
	}
}

// startOfDayUTC returns UTC midnight of t's day. The daily robot quota uses
// the UTC calendar day as its boundary.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
