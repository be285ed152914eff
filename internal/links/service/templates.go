package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/idx"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

var (
	ErrInvalidTemplateRequest = errors.New("invalid template request")
	ErrTemplateQuotaExceeded  = errors.New("template quota exceeded")
)

// TemplateService manages landing-page templates. The template quota counts
// templates referenced by active links, so it is enforced when a link adopts
// a template (see LinkService.Create), not here: owning spare templates is
// always allowed.
type TemplateService struct {
	Store store.Store
}

// Create stores a new template after validating the config is JSON.
func (s *TemplateService) Create(ctx context.Context, userID, name, config string) (domain.Template, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Template{}, ErrInvalidTemplateRequest
	}
	if config == "" {
		config = "{}"
	}
	if !json.Valid([]byte(config)) {
		return domain.Template{}, ErrInvalidTemplateRequest
	}

	now := time.Now().UTC()
	t := domain.Template{
		ID:        idx.New().String(),
		UserID:    userID,
		Name:      name,
		Config:    config,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Templates().CreateTemplate(ctx, t); err != nil {
		log.Error("failed to create template", slog.Any("error", err))
		return domain.Template{}, err
	}

	log.Info("template created",
		slog.String("template_id", t.ID),
		slog.String("user_id", userID),
	)
	return t, nil
}

// List returns the user's templates, newest first.
func (s *TemplateService) List(ctx context.Context, userID string) ([]domain.Template, error) {
	return s.Store.Templates().ListTemplates(ctx, userID)
}
