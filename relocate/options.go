package relocate

// Config holds the relocator configuration.
type Config struct {
	// Logger is used for reporting during the passes (optional)
	Logger Logger
}

// Option is a functional option for configuring the Relocator.
type Option func(*Config)

// WithLogger sets a logger for the relocation passes.
//
// Example:
//
//	rel := relocate.New(relocate.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
