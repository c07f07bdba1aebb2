package constants

const (
	AppName = "ritual"

	// DateFormat is the standard date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultConfigPath is the default SQLite database location
	DefaultConfigPath = "~/.config/ritual/ritual.db"

	// DefaultMissWindowDays is the trailing window used by the missed report
	DefaultMissWindowDays = 30

	// DefaultHistoryDays is the number of days shown by the habit history grid
	DefaultHistoryDays = 14

	// DefaultTargetValue is the target for habits that don't specify one
	DefaultTargetValue = 1

	// DefaultTargetUnit labels the target value
	DefaultTargetUnit = "times"

	// DefaultLogStatus is the status recorded for a normal completion
	DefaultLogStatus = "completed"
)

// EnvDBConnection supplies a PostgreSQL connection string without
// embedding credentials in the --config flag.
const EnvDBConnection = "RITUAL_DB_CONNECTION"
