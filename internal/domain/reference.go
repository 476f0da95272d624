package domain

import (
	"fmt"
	"sort"
	"time"
)

// FinancialYearCode returns the two-digit start + two-digit end year code
// of the Indian financial year (April-March) containing t, e.g. "2425"
// for any date from 2024-04-01 through 2025-03-31.
func FinancialYearCode(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%02d%02d", startYear%100, (startYear+1)%100)
}

// ReferenceID renders the human-readable booking identifier
// SRA/{FY}/{SEQ} for a booking ranked at positionalIndex (0-based) in the
// global booking order. The ID is computed on read, never stored.
func ReferenceID(refDate time.Time, positionalIndex int) string {
	return fmt.Sprintf("%s/%s/%d", ReferenceSeriesCode, FinancialYearCode(refDate), ReferenceSeqBase+positionalIndex+1)
}

// AssignReferenceIDs computes the reference ID of every booking in the
// set. The set must be the full booking population (not a page), since
// sequence numbers are positional over all bookings sorted ascending by
// start date (creation date fallback), with id as the final tie-break to
// keep the ordering stable.
func AssignReferenceIDs(bookings []*Booking) map[int64]string {
	sorted := make([]*Booking, len(bookings))
	copy(sorted, bookings)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].ReferenceDate(), sorted[j].ReferenceDate()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].ID < sorted[j].ID
	})

	ids := make(map[int64]string, len(sorted))
	for i, b := range sorted {
		ids[b.ID] = ReferenceID(b.ReferenceDate(), i)
	}
	return ids
}
