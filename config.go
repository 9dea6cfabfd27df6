package nbtfix

import "math"

// Default limits. NBT length prefixes are signed 32-bit, so MaxInt32 is the
// format ceiling; MaxDepth is a practical bound for nested lists/compounds.
const (
	DefaultMaxStringLen   = math.MaxUint16 // NBT strings carry a uint16 length
	DefaultMaxArrayLen    = math.MaxInt32
	DefaultMaxListLen     = math.MaxInt32
	DefaultMaxCompoundLen = math.MaxInt32
	DefaultMaxDepth       = 512
)

// Config controls decoder security limits
type Config struct {
	// MaxStringLen is the maximum allowed string length in bytes
	MaxStringLen int

	// MaxArrayLen is the maximum allowed byte/int/long array length
	MaxArrayLen int

	// MaxListLen is the maximum allowed list length (number of elements)
	MaxListLen int

	// MaxCompoundLen is the maximum allowed number of compound entries
	MaxCompoundLen int

	// MaxDepth is the maximum allowed nesting depth for lists and compounds
	MaxDepth int
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxStringLen:   DefaultMaxStringLen,
		MaxArrayLen:    DefaultMaxArrayLen,
		MaxListLen:     DefaultMaxListLen,
		MaxCompoundLen: DefaultMaxCompoundLen,
		MaxDepth:       DefaultMaxDepth,
	}
}

// WithMaxStringLen returns a new Config with the specified MaxStringLen
func (c Config) WithMaxStringLen(n int) Config {
	c.MaxStringLen = n
	return c
}

// WithMaxArrayLen returns a new Config with the specified MaxArrayLen
func (c Config) WithMaxArrayLen(n int) Config {
	c.MaxArrayLen = n
	return c
}

// WithMaxListLen returns a new Config with the specified MaxListLen
func (c Config) WithMaxListLen(n int) Config {
	c.MaxListLen = n
	return c
}

// WithMaxCompoundLen returns a new Config with the specified MaxCompoundLen
func (c Config) WithMaxCompoundLen(n int) Config {
	c.MaxCompoundLen = n
	return c
}

// WithMaxDepth returns a new Config with the specified MaxDepth
func (c Config) WithMaxDepth(n int) Config {
	c.MaxDepth = n
	return c
}
