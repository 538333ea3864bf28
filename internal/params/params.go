package params

const (
	// AppName is the human-readable name used in help output.
	AppName = "ristretto255 ElGamal"

	// BinaryName is the name of the CLI binary produced by this module.
	BinaryName = "elgamal"

	// EnvPrefix is the environment variable prefix used by the CLI/config system.
	// Example: ELGAMAL_HASH, ELGAMAL_LOG_LEVEL.
	EnvPrefix = "ELGAMAL"

	// SeedDomain separates seeded CLI derivations from any other use of the
	// same seed.
	SeedDomain = "elgamal/v1/cli-seed"

	DefaultHash      = "sha512"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "plain"
)
