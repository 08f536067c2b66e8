// Package models defines the storefront entities as they travel over the
// wire. Every entity is server-authoritative; local copies are disposable
// snapshots refreshed from responses, never merged or mutated in place.
package models

// User is the cached profile of the authenticated account.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	SubscriptionTier string `json:"subscription_tier,omitempty"`
}

// Subscription tiers. FREE is the lowest tier and gates feed posting.
const (
	TierFree     = "FREE"
	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

// CanPost reports whether the user's cached tier allows publishing to the
// social feed. This is a UX gate only; the server enforces the real rule.
func (u *User) CanPost() bool {
	if u == nil {
		return false
	}
	return u.SubscriptionTier != "" && u.SubscriptionTier != TierFree
}
