package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
)

type licensesRepo struct {
	q dbtx
	// root is set on the non-transactional store so Redeem can open its own
	// transaction. Repos handed out by a txStore leave it nil and redeem
	// inside the already-open transaction.
	root *Store
}

func (r *licensesRepo) CreateLicenseKey(ctx context.Context, k domain.LicenseKey) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO license_keys (key, tier, used_by, used_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		k.Key, string(k.Tier), mapStringNull(k.UsedBy), mapOptionalTime(k.UsedAt), k.CreatedAt,
	)
	return err
}

func (r *licensesRepo) GetLicenseKey(ctx context.Context, key string) (domain.LicenseKey, error) {
	var (
		k      domain.LicenseKey
		tier   string
		usedBy sql.NullString
		usedAt sql.NullTime
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT key, tier, used_by, used_at, created_at
		FROM license_keys WHERE key = ?`, key,
	).Scan(&k.Key, &tier, &usedBy, &usedAt, &k.CreatedAt)
	if err != nil {
		return domain.LicenseKey{}, mapNotFound(err)
	}
	k.Tier = domain.LicenseTier(tier)
	k.UsedBy = mapNullString(usedBy)
	k.UsedAt = mapNullTimePtr(usedAt)
	return k, nil
}

// Redeem consumes the key and upserts the membership in one transaction.
// PRO keys grant a year of membership, VIP keys never expire.
func (r *licensesRepo) Redeem(ctx context.Context, key, userID string) (domain.Membership, error) {
	if r.root != nil {
		var m domain.Membership
		err := r.root.WithTx(ctx, func(tx store.Tx) error {
			var err error
			m, err = tx.Licenses().Redeem(ctx, key, userID)
			return err
		})
		return m, err
	}

	k, err := r.GetLicenseKey(ctx, key)
	if err != nil {
		return domain.Membership{}, err
	}
	if k.UsedBy != "" {
		return domain.Membership{}, store.ErrLicenseUsed
	}

	now := time.Now().UTC()

	// Conditional update keyed on used_by being unset; a concurrent redeem
	// of the same key loses here rather than double-granting.
	res, err := r.q.ExecContext(ctx, `
		UPDATE license_keys SET used_by = ?, used_at = ?
		WHERE key = ? AND used_by IS NULL`,
		userID, now, key,
	)
	if err != nil {
		return domain.Membership{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Membership{}, err
	}
	if affected == 0 {
		return domain.Membership{}, store.ErrLicenseUsed
	}

	m := domain.Membership{
		UserID: userID,
		Tier:   domain.TierMember,
	}
	if k.Tier == domain.LicensePro {
		expire := now.AddDate(1, 0, 0)
		m.ExpireAt = &expire
	}

	repo := &membershipsRepo{q: r.q}
	if err := repo.UpsertMembership(ctx, m); err != nil {
		return domain.Membership{}, err
	}
	return m, nil
}
