package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents an advertising customer with running aggregate
// counters maintained incrementally by the ledger (never recomputed by
// full aggregation on read).
type Customer struct {
	ID    int64
	Name  string
	Phone *string
	Email *string

	TotalBookings int64           // count of non-deleted bookings
	TotalSpent    decimal.Decimal // sum of amountPaid across non-deleted bookings

	Deleted   bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
