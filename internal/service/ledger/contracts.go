package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// CustomerRepository aggregate counter maintenance
type CustomerRepository interface {
	ApplyBookingDelta(ctx context.Context, customerID int64, bookingsDelta int64, spentDelta decimal.Decimal) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
