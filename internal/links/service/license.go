package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
	"github.com/linkmintapp/linkmint/pkg/slogx"
)

var (
	ErrInvalidKeyFormat = errors.New("license key format is invalid")
	ErrActivationFailed = errors.New("license activation failed")
)

// licenseKeyPattern matches normalized keys only; validation always runs on
// the normalized form and the caller's input is never mutated.
var licenseKeyPattern = regexp.MustCompile(`^(PRO|VIP)-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// LicenseService validates license keys and hands redemption to the store's
// atomic procedure. It never upgrades a membership itself.
type LicenseService struct {
	Store store.Store
}

// ActivationResult is the structured outcome returned to the caller.
type ActivationResult struct {
	Tier       domain.Tier
	Membership domain.Membership
}

// Activate normalizes and validates rawKey, then redeems it for userID.
// Format rejections never reach the store.
func (s *LicenseService) Activate(ctx context.Context, userID, rawKey string) (ActivationResult, error) {
	log := slogx.FromContext(ctx)

	key := strings.ToUpper(strings.TrimSpace(rawKey))
	if !licenseKeyPattern.MatchString(key) {
		return ActivationResult{}, ErrInvalidKeyFormat
	}

	m, err := s.Store.Licenses().Redeem(ctx, key, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrLicenseUsed) {
			log.Warn("license redemption rejected",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			return ActivationResult{}, ErrActivationFailed
		}
		log.Error("license redemption failed", slog.Any("error", err))
		return ActivationResult{}, err
	}

	log.Info("license activated",
		slog.String("user_id", userID),
		slog.String("tier", string(m.Tier)),
	)

	return ActivationResult{Tier: m.Tier, Membership: m}, nil
}
