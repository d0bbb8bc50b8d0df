package domain

// Default schedule values
const (
	DefaultStartHour        = 9
	DefaultEndHour          = 18
	DefaultIntervalMinutes  = 60
	DefaultSlotCapacity     = 4
	DefaultLimitedThreshold = 0.8
)

// Technician dispatch ETA range (minutes)
const (
	MinTechnicianETAMinutes = 15
	MaxTechnicianETAMinutes = 59
)

// Business validation constants
const (
	MaxNotesLength = 500
	MaxItemsCount  = 20
)

// Format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	LabelSeparator = " - "
)
