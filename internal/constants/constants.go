// Package constants provides centralized constant values used throughout githooks.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Default values for the redmine-ref hook.
const (
	// DefaultMaxIDCount is the maximum number of reference IDs taken from a branch name.
	DefaultMaxIDCount = 5

	// DefaultMinIDLength is the shortest digit run accepted as a reference ID.
	DefaultMinIDLength = 3

	// DefaultMaxIDLength is the longest digit run accepted as a reference ID.
	// Longer runs are usually hashes or timestamps.
	DefaultMaxIDLength = 10
)

// Environment variables consulted by the redmine-ref hook when the matching
// flag is not given. Boolean variables count as set when non-empty.
const (
	EnvMaxIDCount      = "MAX_ID_COUNT"
	EnvMinIDLength     = "MIN_ID_LENGTH"
	EnvMaxIDLength     = "MAX_ID_LENGTH"
	EnvOneLiner        = "ONE_LINER"
	EnvDefaultRefValue = "DEFAULT_REF_VALUE"
	EnvFailIfNoIDs     = "FAIL_IF_NO_IDS"
	EnvKeepGoing       = "KEEP_GOING"
)

// EnvReadOnlyPatterns holds shell-quoted glob patterns for the readonly hook.
const EnvReadOnlyPatterns = "READONLY_PATTERNS"

// EnvPrefix is the prefix for environment variables bound to global flags
// (e.g., GITHOOKS_VERBOSE).
const EnvPrefix = "GITHOOKS"

// Log file settings, used only when GITHOOKS_LOG_FILE is set.
const (
	// EnvLogFile names the rotating log file written in addition to stderr.
	EnvLogFile = "GITHOOKS_LOG_FILE"

	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 5

	// LogMaxBackups is the number of rotated files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of rotated files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
