package config

// Default values shared by flags, environment parsing and validation.
const (
	// DefaultAlgorithm is used when neither flag nor environment names one.
	DefaultAlgorithm = "caesar"

	// DefaultTopShifts is how many candidate shifts the shifts command prints.
	DefaultTopShifts = 5

	// EnvPrefix is the prefix of every environment variable scytale reads.
	EnvPrefix = "SCYTALE_"
)
