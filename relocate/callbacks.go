package relocate

// Stats summarizes one relocation run. Returned by value; a Relocator
// keeps no state between calls.
type Stats struct {
	// Packets is the number of input packets visited
	Packets int

	// RelocatedRows is the number of address packets whose row field was
	// rewritten
	RelocatedRows int

	// Passthrough is the number of address packets left untouched
	// because their block type is not row-addressable
	Passthrough int

	// DroppedBursts is the number of multi-word address packets dropped
	// from the output (see the package documentation for why these are
	// dropped rather than copied)
	DroppedBursts int

	// RewrittenCRCs is the number of checksum packets whose payload was
	// replaced with a freshly computed accumulator value
	RewrittenCRCs int
}

// Logger is an optional logging interface the relocator reports through.
// This allows integration with any logging framework; the bitreloc CLI
// wires log/slog into it.
//
// Example with the standard log package:
//
//	type StdLogger struct{}
//	func (l StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l StdLogger) Warn(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning with optional key-value pairs
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
