package constants

const (
	AppName           = "gymtasks"
	DefaultConfigPath = "~/.config/gymtasks/gymtasks.db"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultOccurrenceTime is the clock time assigned to projected occurrences
	// when a routine carries no usable creation time.
	DefaultOccurrenceTime = "09:00"

	// DefaultHorizonDays is the forward window used when generating task rows
	// from recurring task definitions. Backfill runs may request a longer one.
	DefaultHorizonDays = 7
)
