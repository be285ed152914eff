package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
)

type membershipsRepo struct {
	q dbtx
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID string) (domain.Membership, error) {
	var (
		m        domain.Membership
		tier     string
		expireAt sql.NullTime
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT user_id, tier, expire_at, created_at, updated_at
		FROM memberships WHERE user_id = ?`, userID,
	).Scan(&m.UserID, &tier, &expireAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.Tier = domain.Tier(tier)
	m.ExpireAt = mapNullTimePtr(expireAt)
	return m, nil
}

func (r *membershipsRepo) UpsertMembership(ctx context.Context, m domain.Membership) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO memberships (user_id, tier, expire_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			tier = excluded.tier,
			expire_at = excluded.expire_at,
			updated_at = excluded.updated_at`,
		m.UserID, string(m.Tier), mapOptionalTime(m.ExpireAt), now, now,
	)
	return err
}
