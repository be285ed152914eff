package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
)

type linksRepo struct {
	q dbtx
}

const linkColumns = `id, user_id, short_code, status, title, og_title, og_description,
	og_image, affiliate_url, template_id, strategy_id, click_count, last_click_at,
	created_at, updated_at`

func (r *linksRepo) CreateLink(ctx context.Context, l domain.Link) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO links (`+linkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.ShortCode, string(l.Status), l.Title, l.OGTitle,
		l.OGDescription, l.OGImage, l.AffiliateURL, mapStringNull(l.TemplateID),
		mapStringNull(l.StrategyID), l.ClickCount, mapOptionalTime(l.LastClickAt),
		l.CreatedAt, l.UpdatedAt,
	)
	return err
}

func (r *linksRepo) GetLinkByID(ctx context.Context, id string) (domain.Link, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ?`, id)
	return scanLink(row)
}

func (r *linksRepo) GetActiveLinkByShortCode(ctx context.Context, code string) (domain.Link, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+linkColumns+` FROM links
		WHERE short_code = ? AND status = 'active'`, code)
	return scanLink(row)
}

func (r *linksRepo) ListLinksByStatus(
	ctx context.Context,
	userID string,
	status domain.LinkStatus,
) ([]domain.Link, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+linkColumns+` FROM links
		WHERE user_id = ? AND status = ?
		ORDER BY created_at DESC`, userID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// UpdateLinkStatus is the compare-and-set transition used by approvals and
// admin restores. The lifecycle's transition table gates which from -> to
// pairs are accepted, and the status precondition in the WHERE clause is
// what keeps concurrent transitions on the same row from clobbering each
// other.
func (r *linksRepo) UpdateLinkStatus(
	ctx context.Context,
	id, userID string,
	from, to domain.LinkStatus,
	title string,
) error {
	if !from.CanTransition(to) {
		return store.ErrInvalidTransition
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE links SET status = ?, title = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND status = ?`,
		string(to), title, time.Now().UTC(), id, userID, string(from),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *linksRepo) RecordClick(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE links SET click_count = click_count + 1, last_click_at = ?
		WHERE id = ? AND status = 'active'`,
		time.Now().UTC(), id,
	)
	return err
}

func (r *linksRepo) ExpireDrafts(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE links SET status = 'deleted', updated_at = ?
		WHERE status = 'draft' AND created_at < ?`,
		time.Now().UTC(), cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *linksRepo) ArchiveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	// Never-clicked links fall back to created_at for the staleness check.
	res, err := r.q.ExecContext(ctx, `
		UPDATE links SET status = 'archived', updated_at = ?
		WHERE status = 'active' AND COALESCE(last_click_at, created_at) < ?`,
		time.Now().UTC(), cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *linksRepo) CountActiveLinks(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM links WHERE user_id = ? AND status = 'active'`,
		userID,
	).Scan(&count)
	return count, err
}

func (r *linksRepo) CountTemplatesInUse(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT template_id) FROM links
		WHERE user_id = ? AND status = 'active' AND template_id IS NOT NULL`,
		userID,
	).Scan(&count)
	return count, err
}

func (r *linksRepo) TemplateInUse(ctx context.Context, userID, templateID string) (bool, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM links
		WHERE user_id = ? AND status = 'active' AND template_id = ?`,
		userID, templateID,
	).Scan(&count)
	return count > 0, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (domain.Link, error) {
	var (
		l           domain.Link
		status      string
		templateID  sql.NullString
		strategyID  sql.NullString
		lastClickAt sql.NullTime
	)
	err := s.Scan(
		&l.ID, &l.UserID, &l.ShortCode, &status, &l.Title, &l.OGTitle,
		&l.OGDescription, &l.OGImage, &l.AffiliateURL, &templateID, &strategyID,
		&l.ClickCount, &lastClickAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.Link{}, mapNotFound(err)
	}
	l.Status = domain.LinkStatus(status)
	l.TemplateID = mapNullString(templateID)
	l.StrategyID = mapNullString(strategyID)
	l.LastClickAt = mapNullTimePtr(lastClickAt)
	return l, nil
}
