package store

import (
	"context"
	"errors"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidTransition is returned by UpdateLinkStatus when the requested
	// status change is not in the link lifecycle's transition table.
	ErrInvalidTransition = errors.New("store: invalid link status transition")

	// ErrLicenseUsed is returned by Redeem when the key was already consumed.
	ErrLicenseUsed = errors.New("store: license key already used")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and every lifecycle mutation is expressed as a conditional update
// keyed on the current status so concurrent transitions cannot clobber each
// other.
type Store interface {
	Links() Links
	Memberships() Memberships
	Templates() Templates
	Strategies() Strategies
	RobotRuns() RobotRuns
	Licenses() Licenses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn errors
	// and committing otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Links interface {
	// CreateLink inserts a new link (id and short code provided by the app).
	CreateLink(ctx context.Context, l domain.Link) error

	// GetLinkByID returns a link regardless of status.
	GetLinkByID(ctx context.Context, id string) (domain.Link, error)

	// GetActiveLinkByShortCode resolves a short code to its active link.
	GetActiveLinkByShortCode(ctx context.Context, code string) (domain.Link, error)

	// ListLinksByStatus returns a user's links in one status, newest first.
	ListLinksByStatus(ctx context.Context, userID string, status domain.LinkStatus) ([]domain.Link, error)

	// UpdateLinkStatus transitions a link from one status to another,
	// optionally rewriting the title, as a single conditional update.
	// Returns ErrInvalidTransition when the lifecycle does not allow
	// from -> to, and ErrNotFound when no row matched (missing, wrong
	// owner, or the link is no longer in the expected status).
	UpdateLinkStatus(ctx context.Context, id, userID string, from, to domain.LinkStatus, title string) error

	// RecordClick bumps click_count and last_click_at for an active link.
	RecordClick(ctx context.Context, id string) error

	// ExpireDrafts soft-deletes drafts created before cutoff and returns the
	// number of rows transitioned. Idempotent.
	ExpireDrafts(ctx context.Context, cutoff time.Time) (int64, error)

	// ArchiveStale archives active links with no click since cutoff, falling
	// back to created_at for never-clicked links. Idempotent.
	ArchiveStale(ctx context.Context, cutoff time.Time) (int64, error)

	// CountActiveLinks counts a user's active (non-archived, non-deleted,
	// non-draft) links.
	CountActiveLinks(ctx context.Context, userID string) (int, error)

	// CountTemplatesInUse counts the distinct templates referenced by a
	// user's active links.
	CountTemplatesInUse(ctx context.Context, userID string) (int, error)

	// TemplateInUse reports whether any of the user's active links already
	// reference the template.
	TemplateInUse(ctx context.Context, userID, templateID string) (bool, error)
}

type Memberships interface {
	// GetMembership returns the membership row for a user.
	GetMembership(ctx context.Context, userID string) (domain.Membership, error)

	// UpsertMembership inserts or replaces a user's membership row.
	UpsertMembership(ctx context.Context, m domain.Membership) error
}

type Templates interface {
	CreateTemplate(ctx context.Context, t domain.Template) error
	GetTemplateByID(ctx context.Context, id string) (domain.Template, error)
	ListTemplates(ctx context.Context, userID string) ([]domain.Template, error)
}

type Strategies interface {
	CreateStrategy(ctx context.Context, s domain.Strategy) error

	// GetEnabledStrategyByKeyHash looks up an enabled strategy by the
	// fingerprint of its robot key.
	GetEnabledStrategyByKeyHash(ctx context.Context, keyHash string) (domain.Strategy, error)

	ListStrategies(ctx context.Context, userID string) ([]domain.Strategy, error)

	// CountStrategies counts a user's strategies, enabled or not.
	CountStrategies(ctx context.Context, userID string) (int, error)
}

type RobotRuns interface {
	CreateRobotRun(ctx context.Context, r domain.RobotRun) error

	// CountRobotRunsSince counts a user's runs at or after the given instant
	// (the UTC day boundary in practice).
	CountRobotRunsSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type Licenses interface {
	// CreateLicenseKey inserts a fresh, unredeemed key (admin tooling).
	CreateLicenseKey(ctx context.Context, k domain.LicenseKey) error

	// GetLicenseKey returns a key row by its normalized value.
	GetLicenseKey(ctx context.Context, key string) (domain.LicenseKey, error)

	// Redeem atomically marks the key used by userID and upserts the user's
	// membership to the tier the key grants. ErrNotFound for unknown keys,
	// ErrLicenseUsed for keys already consumed.
	Redeem(ctx context.Context, key, userID string) (domain.Membership, error)
}
