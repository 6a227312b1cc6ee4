package inventory

import "time"

// Derive recomputes the item's status and attention fields from its stock
// quantities and expiry date. Rules are evaluated in precedence order:
//
//  1. negative quantity forces depleted with a low-stock reason
//  2. quantity at or below minimum raises attention but leaves status alone
//  3. quantity at or above a set maximum raises attention
//  4. a past expiry date forces expired; its near-expiry reason is set only
//     when rules 1-3 did not already set one
//
// A non-negative quantity below minimum deliberately leaves the status
// untouched; only rule 1 forces depleted. Manually deactivated items stay
// inactive unless rule 1 or 4 forces a status.
func Derive(item *Item, now time.Time) {
	if item.Status == "" || item.Status == StatusDepleted || item.Status == StatusExpired {
		item.Status = StatusActive
	}
	item.NeedsAttention = false
	item.AttentionReason = ""

	switch {
	case item.CurrentQty < 0:
		item.Status = StatusDepleted
		item.NeedsAttention = true
		item.AttentionReason = ReasonLowStock
	case item.CurrentQty <= item.MinQty:
		item.NeedsAttention = true
		item.AttentionReason = ReasonLowStock
	case item.MaxQty != nil && item.CurrentQty >= *item.MaxQty:
		item.NeedsAttention = true
		item.AttentionReason = ReasonHighStock
	}

	if item.ExpiryDate != nil && item.ExpiryDate.Before(now) {
		item.Status = StatusExpired
		item.NeedsAttention = true
		if item.AttentionReason == "" {
			item.AttentionReason = ReasonNearExpiry
		}
	}
}
