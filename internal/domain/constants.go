package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RecycleBinRetentionDays retention window for soft-deleted records.
// Records older than this are eligible for permanent purge.
const RecycleBinRetentionDays = 30

// ExpiringSoonWindowDays window before an agreement's end date during
// which its derived status becomes ExpiringSoon.
const ExpiringSoonWindowDays = 30

// Business validation constants
const (
	MaxNotesLength     = 500
	MaxMediaCodeLength = 50
	MaxNameLength      = 200
)

// Booking reference identifier constants (see reference.go)
const (
	ReferenceSeriesCode = "SRA"
	ReferenceSeqBase    = 1000
)
