package block

// DefaultAlignment is the buffer alignment used when no option
// overrides it.
const DefaultAlignment = 64

// MaxScalarAlignment is the strictest alignment any scalar value
// requires on supported platforms. Alloc substitutes it for a zero
// alignment argument.
const MaxScalarAlignment = 16

type config struct {
	alignment int64
}

// Option configures an Allocator at construction.
type Option func(*config)

// WithAlignment sets the buffer alignment. It must be a power of two
// and bounds the strictest alignment Alloc can honor.
func WithAlignment(alignment int64) Option {
	return func(c *config) {
		c.alignment = alignment
	}
}
