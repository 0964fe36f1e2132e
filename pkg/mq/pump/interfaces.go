package pump

// Consumer is the interface that must be implemented by users of the Pump.
// It is responsible for processing a batch of items.
type Consumer[T any] interface {
	// Consume processes a batch of items.
	// Returns an error if processing fails.
	Consume(batch []T) error
}

// Config holds configuration for the Pump.
type Config struct {
	// BatchSize is the maximum number of items delivered to the Consumer
	// in a single Consume call.
	BatchSize int `mapstructure:"batch_size"`

	// Workers is the number of concurrent drain goroutines.
	Workers int `mapstructure:"workers"`
}
