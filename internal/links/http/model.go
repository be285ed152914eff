package http

import (
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
)

// LinkResponse is the wire representation of a link.
type LinkResponse struct {
	ID            string     `json:"id"`
	ShortCode     string     `json:"short_code"`
	Status        string     `json:"status"`
	Title         string     `json:"title"`
	OGTitle       string     `json:"og_title,omitempty"`
	OGDescription string     `json:"og_description,omitempty"`
	OGImage       string     `json:"og_image,omitempty"`
	AffiliateURL  string     `json:"affiliate_url"`
	TemplateID    string     `json:"template_id,omitempty"`
	StrategyID    string     `json:"strategy_id,omitempty"`
	ClickCount    int64      `json:"click_count"`
	LastClickAt   *time.Time `json:"last_click_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newLinkResponse(l domain.Link) LinkResponse {
	return LinkResponse{
		ID:            l.ID,
		ShortCode:     l.ShortCode,
		Status:        string(l.Status),
		Title:         l.Title,
		OGTitle:       l.OGTitle,
		OGDescription: l.OGDescription,
		OGImage:       l.OGImage,
		AffiliateURL:  l.AffiliateURL,
		TemplateID:    l.TemplateID,
		StrategyID:    l.StrategyID,
		ClickCount:    l.ClickCount,
		LastClickAt:   l.LastClickAt,
		CreatedAt:     l.CreatedAt,
	}
}

func newLinkListResponse(links []domain.Link) ListLinksResponse {
	out := ListLinksResponse{Links: make([]LinkResponse, 0, len(links))}
	for _, l := range links {
		out.Links = append(out.Links, newLinkResponse(l))
	}
	return out
}

type ListLinksResponse struct {
	Links []LinkResponse `json:"links"`
}

// MembershipResponse is the resolved membership for the requesting user.
type MembershipResponse struct {
	Tier     string     `json:"tier"`
	IsMember bool       `json:"is_member"`
	ExpireAt *time.Time `json:"expire_at,omitempty"`
}

// ActivateLicenseResponse is returned after a successful key redemption.
type ActivateLicenseResponse struct {
	Tier     string     `json:"tier"`
	ExpireAt *time.Time `json:"expire_at,omitempty"`
}

type TemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Config    string    `json:"config"`
	CreatedAt time.Time `json:"created_at"`
}

func newTemplateResponse(t domain.Template) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Config:    t.Config,
		CreatedAt: t.CreatedAt,
	}
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// StrategyResponse never carries the robot key; only its tail survives
// creation for display purposes.
type StrategyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	KeyTail   string    `json:"key_tail"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

func newStrategyResponse(s domain.Strategy) StrategyResponse {
	return StrategyResponse{
		ID:        s.ID,
		Name:      s.Name,
		Source:    string(s.Source),
		KeyTail:   s.KeyTail,
		Enabled:   s.Enabled,
		CreatedAt: s.CreatedAt,
	}
}

// CreateStrategyResponse includes the one-time robot key. It is shown once
// and cannot be recovered afterwards.
type CreateStrategyResponse struct {
	StrategyResponse
	RobotKey string `json:"robot_key"`
}

type ListStrategiesResponse struct {
	Strategies []StrategyResponse `json:"strategies"`
}

// IngestLinkResponse acknowledges a robot submission.
type IngestLinkResponse struct {
	LinkID    string `json:"link_id"`
	ShortCode string `json:"short_code"`
	Status    string `json:"status"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is shared by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
