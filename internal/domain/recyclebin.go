package domain

import "time"

// EntityType the recycle bin can hold
type EntityType string

const (
	EntityMediaUnit   EntityType = "media_unit"
	EntityBooking     EntityType = "booking"
	EntityCustomer    EntityType = "customer"
	EntityAgreement   EntityType = "tender_agreement"
	EntityInstallment EntityType = "tax_installment"
)

// ValidEntityType reports whether t is a known recycle bin entity type.
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityMediaUnit, EntityBooking, EntityCustomer, EntityAgreement, EntityInstallment:
		return true
	}
	return false
}

// RecycleBinEntry is a projection over one soft-deleted record of any
// entity type. It is never stored, only assembled at read time.
type RecycleBinEntry struct {
	EntityType EntityType
	EntityID   int64
	Label      string // computed display label
	Detail     string // human-readable secondary line
	DeletedAt  time.Time
}

// DaysRemaining returns how many whole days are left before the entry
// becomes purge-eligible, floored at 0.
func (e *RecycleBinEntry) DaysRemaining(now time.Time) int {
	elapsed := int(now.Sub(e.DeletedAt).Hours() / 24)
	remaining := RecycleBinRetentionDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PurgeEligible reports whether the entry is past the retention window.
func (e *RecycleBinEntry) PurgeEligible(now time.Time) bool {
	return !e.DeletedAt.After(now.AddDate(0, 0, -RecycleBinRetentionDays))
}
