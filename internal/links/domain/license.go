package domain

import "time"

// LicenseTier is the tier a license key grants on redemption.
type LicenseTier string

const (
	LicensePro LicenseTier = "PRO"
	LicenseVIP LicenseTier = "VIP"
)

// LicenseKey is a redeemable key row. Keys are stored normalized (upper case,
// trimmed) and redeemed at most once.
type LicenseKey struct {
	Key       string
	Tier      LicenseTier
	UsedBy    string // Empty until redeemed
	UsedAt    *time.Time
	CreatedAt time.Time
}
