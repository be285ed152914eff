package sqlite

import (
	"context"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
)

type robotRunsRepo struct {
	q dbtx
}

func (r *robotRunsRepo) CreateRobotRun(ctx context.Context, run domain.RobotRun) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO robot_runs (id, strategy_id, user_id, ran_at)
		VALUES (?, ?, ?, ?)`,
		run.ID, run.StrategyID, run.UserID, run.RanAt,
	)
	return err
}

func (r *robotRunsRepo) CountRobotRunsSince(
	ctx context.Context,
	userID string,
	since time.Time,
) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM robot_runs WHERE user_id = ? AND ran_at >= ?`,
		userID, since,
	).Scan(&count)
	return count, err
}
