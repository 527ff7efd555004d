package domain

// Default schedule values
const (
	DefaultOpeningHour         = 9
	DefaultClosingHour         = 18
	DefaultSlotDurationMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultStorageKey is the key under which the appointment collection
// is persisted in the key/value store.
const DefaultStorageKey = "veterinariaHuellasTurnos"
