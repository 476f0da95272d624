package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialYearCode(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2024, time.April, 1), "2425"},
		{date(2024, time.December, 31), "2425"},
		{date(2025, time.March, 31), "2425"},
		{date(2025, time.April, 1), "2526"},
		{date(2024, time.January, 10), "2324"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FinancialYearCode(tt.date), "for %s", tt.date.Format(DateFormat))
	}
}

func TestAssignReferenceIDs(t *testing.T) {
	bookings := []*Booking{
		{ID: 3, StartDate: date(2024, time.June, 1)},
		{ID: 1, StartDate: date(2024, time.April, 10)},
		{ID: 2, StartDate: date(2025, time.January, 5)},
	}

	ids := AssignReferenceIDs(bookings)

	require.Len(t, ids, 3)
	assert.Equal(t, "SRA/2425/1001", ids[1])
	assert.Equal(t, "SRA/2425/1002", ids[3])
	assert.Equal(t, "SRA/2425/1003", ids[2])
}

func TestAssignReferenceIDs_CreationDateFallback(t *testing.T) {
	created := time.Date(2024, time.May, 2, 13, 45, 0, 0, time.UTC)
	bookings := []*Booking{
		{ID: 1, CreatedAt: created}, // no start date recorded
		{ID: 2, StartDate: date(2024, time.March, 1)},
	}

	ids := AssignReferenceIDs(bookings)

	assert.Equal(t, "SRA/2324/1001", ids[2])
	assert.Equal(t, "SRA/2425/1002", ids[1])
}

func TestAssignReferenceIDs_StableAcrossInputOrder(t *testing.T) {
	a := []*Booking{
		{ID: 1, StartDate: date(2024, time.April, 10)},
		{ID: 2, StartDate: date(2024, time.April, 10)},
	}
	b := []*Booking{a[1], a[0]}

	idsA := AssignReferenceIDs(a)
	idsB := AssignReferenceIDs(b)

	assert.Equal(t, idsA, idsB)
}
