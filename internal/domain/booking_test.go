package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	start := date(2024, time.January, 10)
	end := date(2024, time.January, 20)

	tests := []struct {
		name    string
		current BookingStatus
		today   time.Time
		want    BookingStatus
	}{
		{"before start is upcoming", StatusUpcoming, date(2024, time.January, 5), StatusUpcoming},
		{"on start is active", StatusUpcoming, start, StatusActive},
		{"inside range is active", StatusUpcoming, date(2024, time.January, 15), StatusActive},
		{"on end is active", StatusActive, end, StatusActive},
		{"after end is completed", StatusActive, date(2024, time.January, 21), StatusCompleted},
		{"cancelled is sticky before start", StatusCancelled, date(2024, time.January, 5), StatusCancelled},
		{"cancelled is sticky inside range", StatusCancelled, date(2024, time.January, 15), StatusCancelled},
		{"cancelled is sticky after end", StatusCancelled, date(2024, time.February, 1), StatusCancelled},
		{"time of day is ignored", StatusUpcoming, time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC), StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.current, tt.today, start, end)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatus_Idempotent(t *testing.T) {
	today := date(2024, time.January, 15)
	start := date(2024, time.January, 10)
	end := date(2024, time.January, 20)

	first := DeriveStatus(StatusUpcoming, today, start, end)
	second := DeriveStatus(first, today, start, end)

	assert.Equal(t, first, second)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			"disjoint ranges do not overlap",
			date(2024, time.January, 1), date(2024, time.January, 5),
			date(2024, time.January, 10), date(2024, time.January, 15),
			false,
		},
		{
			"contained range overlaps",
			date(2024, time.January, 10), date(2024, time.January, 20),
			date(2024, time.January, 12), date(2024, time.January, 14),
			true,
		},
		{
			"partial overlap",
			date(2024, time.January, 10), date(2024, time.January, 20),
			date(2024, time.January, 15), date(2024, time.January, 25),
			true,
		},
		{
			"touching endpoints count as overlap",
			date(2024, time.January, 1), date(2024, time.January, 10),
			date(2024, time.January, 10), date(2024, time.January, 15),
			true,
		},
		{
			"adjacent days do not overlap",
			date(2024, time.January, 1), date(2024, time.January, 10),
			date(2024, time.January, 11), date(2024, time.January, 15),
			false,
		},
		{
			"identical ranges overlap",
			date(2024, time.January, 1), date(2024, time.January, 10),
			date(2024, time.January, 1), date(2024, time.January, 10),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	amount := decimal.NewFromInt(10000)

	tests := []struct {
		name       string
		status     BookingStatus
		amountPaid decimal.Decimal
		want       PaymentStatus
	}{
		{"nothing paid is pending", StatusActive, decimal.Zero, PaymentPending},
		{"partial payment", StatusActive, decimal.NewFromInt(4000), PaymentPartiallyPaid},
		{"full payment", StatusActive, decimal.NewFromInt(10000), PaymentPaid},
		{"overpayment is paid", StatusActive, decimal.NewFromInt(12000), PaymentPaid},
		{"cancelled overrides amounts", StatusCancelled, decimal.NewFromInt(10000), PaymentCancelled},
		{"cancelled with no payment", StatusCancelled, decimal.Zero, PaymentCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(tt.status, amount, tt.amountPaid))
		})
	}
}

func TestBlocksMedia(t *testing.T) {
	active := &Booking{Status: StatusActive}
	cancelled := &Booking{Status: StatusCancelled}
	deleted := &Booking{Status: StatusActive, Deleted: true}

	assert.True(t, active.BlocksMedia())
	assert.False(t, cancelled.BlocksMedia())
	assert.False(t, deleted.BlocksMedia())
}
