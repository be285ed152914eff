package sqlite

import (
	"context"

	"github.com/linkmintapp/linkmint/internal/links/domain"
)

type strategiesRepo struct {
	q dbtx
}

func (r *strategiesRepo) CreateStrategy(ctx context.Context, s domain.Strategy) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO strategies (id, user_id, name, source, key_hash, key_tail, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Name, string(s.Source), s.KeyHash, s.KeyTail,
		s.Enabled, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *strategiesRepo) GetEnabledStrategyByKeyHash(
	ctx context.Context,
	keyHash string,
) (domain.Strategy, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, name, source, key_hash, key_tail, enabled, created_at, updated_at
		FROM strategies WHERE key_hash = ? AND enabled = 1`, keyHash)
	return scanStrategy(row)
}

func (r *strategiesRepo) ListStrategies(ctx context.Context, userID string) ([]domain.Strategy, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, name, source, key_hash, key_tail, enabled, created_at, updated_at
		FROM strategies WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var strategies []domain.Strategy
	for rows.Next() {
		s, err := scanStrategy(rows)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, rows.Err()
}

func (r *strategiesRepo) CountStrategies(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM strategies WHERE user_id = ?`, userID,
	).Scan(&count)
	return count, err
}

func scanStrategy(s scanner) (domain.Strategy, error) {
	var (
		out    domain.Strategy
		source string
	)
	err := s.Scan(
		&out.ID, &out.UserID, &out.Name, &source, &out.KeyHash, &out.KeyTail,
		&out.Enabled, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return domain.Strategy{}, mapNotFound(err)
	}
	out.Source = domain.StrategySource(source)
	return out, nil
}
