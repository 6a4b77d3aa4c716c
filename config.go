package bitinfo

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

const (
	DefaultBase      = 2
	DefaultChunkSize = 1 << 16
)

// The Config type carries configuration options for the bit counting and
// information functions.
//
// Config implements the Option interface so it can be used directly as
// argument to the functions of this package when needed, for example:
//
//	info, err := bitinfo.BitInformation(a, 0, &bitinfo.Config{
//		ChunkSize:   1 << 20,
//		Concurrency: 8,
//	})
type Config struct {
	// Base of the logarithm used to compute information; 2 measures
	// information in bits.
	Base float64
	// Number of elements counted at a time. Counting is done on chunks of
	// the broadcast arrays, which bounds the memory used regardless of the
	// size of the input.
	ChunkSize int
	// Maximum number of chunks counted concurrently.
	Concurrency int
	// Confidence level of the significance filter; when non-zero,
	// information indistinguishable from chance at this level is set to 0.
	Confidence float64
}

// DefaultConfig returns a new Config value initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Base:        DefaultBase,
		ChunkSize:   DefaultChunkSize,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// NewConfig constructs a configuration from the default values and the list
// of options, and validates it.
func NewConfig(options ...Option) (*Config, error) {
	config := DefaultConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Configure applies configuration options from c to config.
func (c *Config) Configure(config *Config) {
	*config = Config{
		Base:        coalesceFloat64(c.Base, config.Base),
		ChunkSize:   coalesceInt(c.ChunkSize, config.ChunkSize),
		Concurrency: coalesceInt(c.Concurrency, config.Concurrency),
		Confidence:  coalesceFloat64(c.Confidence, config.Confidence),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *Config) Validate() error {
	const baseName = "bitinfo.(*Config)."
	return errorInvalidConfiguration(
		validateLogBase(baseName+"Base", c.Base),
		validatePositiveInt(baseName+"ChunkSize", c.ChunkSize),
		validatePositiveInt(baseName+"Concurrency", c.Concurrency),
		validateUnitInterval(baseName+"Confidence", c.Confidence),
	)
}

// Option is an interface implemented by types that carry configuration
// options for the functions of this package.
type Option interface {
	Configure(*Config)
}

// Base configures the base of the logarithm that information is measured
// with, which must be greater than 1. Use math.E to measure information in
// nats.
//
// Defaults to 2 (bits).
func Base(base float64) Option {
	return option(func(config *Config) { config.Base = base })
}

// ChunkSize configures the number of elements counted at a time.
//
// Defaults to 65536.
func ChunkSize(size int) Option {
	return option(func(config *Config) { config.ChunkSize = size })
}

// Concurrency configures the maximum number of chunks counted in parallel.
//
// Defaults to GOMAXPROCS.
func Concurrency(n int) Option {
	return option(func(config *Config) { config.Concurrency = n })
}

// Confidence enables the significance filter at the given confidence level,
// which must be in (0, 1). See FreeEntropy.
//
// By default, the filter is disabled.
func Confidence(c float64) Option {
	return option(func(config *Config) { config.Confidence = c })
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

func coalesceInt(i1, i2 int) int {
	if i1 != 0 {
		return i1
	}
	return i2
}

func coalesceFloat64(f1, f2 float64) float64 {
	if f1 != 0 {
		return f1
	}
	return f2
}

func validatePositiveInt(optionName string, optionValue int) error {
	if optionValue > 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func validateLogBase(optionName string, optionValue float64) error {
	if optionValue > 1 && !math.IsInf(optionValue, 0) {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

// A zero value disables the option it validates.
func validateUnitInterval(optionName string, optionValue float64) error {
	if optionValue == 0 || (optionValue > 0 && optionValue < 1) {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return fmt.Errorf("invalid option value: %s: %v", optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}
