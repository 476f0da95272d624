package domain

import "time"

// MediaStatus represents the availability status of a media unit
type MediaStatus string

const (
	MediaAvailable   MediaStatus = "available"
	MediaBooked      MediaStatus = "booked"
	MediaComingSoon  MediaStatus = "coming_soon"
	MediaMaintenance MediaStatus = "maintenance"
)

// MediaUnit represents a physical outdoor-advertising asset
// (billboard, unipole, kiosk, ...).
type MediaUnit struct {
	ID   int64
	Code string // human-readable unit code, unique
	Name string

	State    string
	District string
	City     string

	MediaType string
	WidthFt   float64
	HeightFt  float64

	Status MediaStatus

	Deleted   bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarEntry one occupied interval on a media unit's calendar
type CalendarEntry struct {
	MediaID   int64
	BookingID int64
	StartDate time.Time
	EndDate   time.Time
}

// NextMediaStatus decides the media status after a booking mutation.
// Only the booked<->available transition is automatic: maintenance and
// coming_soon are operator-set and never overwritten by synchronization.
// The second return value reports whether a write is needed.
func NextMediaStatus(current MediaStatus, hasActiveBooking bool) (MediaStatus, bool) {
	if hasActiveBooking {
		if current != MediaBooked {
			return MediaBooked, true
		}
		return current, false
	}

	if current == MediaBooked {
		return MediaAvailable, true
	}
	return current, false
}

// ValidMediaStatus reports whether s is a known media status.
func ValidMediaStatus(s MediaStatus) bool {
	switch s {
	case MediaAvailable, MediaBooked, MediaComingSoon, MediaMaintenance:
		return true
	}
	return false
}
