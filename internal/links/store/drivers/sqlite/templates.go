package sqlite

import (
	"context"

	"github.com/linkmintapp/linkmint/internal/links/domain"
)

type templatesRepo struct {
	q dbtx
}

func (r *templatesRepo) CreateTemplate(ctx context.Context, t domain.Template) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO templates (id, user_id, name, config, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Name, t.Config, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *templatesRepo) GetTemplateByID(ctx context.Context, id string) (domain.Template, error) {
	var t domain.Template
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, name, config, created_at, updated_at
		FROM templates WHERE id = ?`, id,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.Config, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Template{}, mapNotFound(err)
	}
	return t, nil
}

func (r *templatesRepo) ListTemplates(ctx context.Context, userID string) ([]domain.Template, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, name, config, created_at, updated_at
		FROM templates WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Config, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
