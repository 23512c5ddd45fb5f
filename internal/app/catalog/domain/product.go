package domain

import "time"

// TimestampLayout is the ISO-8601 layout used wherever a timestamp leaves the repository.
const TimestampLayout = time.RFC3339

// Product is the canonical, protocol-independent catalog record.
type Product struct {
	ID          string
	SKU         string
	Title       string
	Description *string
	Price       Price
	ImageURL    *string
	Tags        []string
	// Stock is nil when inventory is not tracked for the product. Zero means out of stock.
	Stock *int64
	// UpdatedAt is an ISO-8601 string, nil when the store has no timestamp.
	UpdatedAt *string
}

// FormatTimestamp normalizes a store timestamp to the exposed ISO-8601 form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
