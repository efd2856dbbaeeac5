package builder

import (
	"go.uber.org/zap"

	"github.com/arloliu/mime2ext/internal/options"
)

// Config holds the build settings.
type Config struct {
	logger    *zap.Logger
	overrides map[string]string
	types     map[string]struct{}
}

func newConfig() *Config {
	return &Config{logger: zap.NewNop()}
}

// Option configures Build.
type Option = options.Option[*Config]

// WithLogger sets the logger used to report dropped entries and build statistics.
// A nil logger disables logging, which is the default.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithOverrides pins the canonical extension of the given MIME types, replacing
// the first extension listed by mime-db. Every key must exist in the source.
func WithOverrides(overrides map[string]string) Option {
	return options.NoError(func(c *Config) {
		if c.overrides == nil {
			c.overrides = make(map[string]string, len(overrides))
		}
		for mimetype, ext := range overrides {
			c.overrides[mimetype] = ext
		}
	})
}

// WithTypes restricts the table to the listed top-level types, such as "image"
// or "video". Without it every type is kept.
func WithTypes(types ...string) Option {
	return options.NoError(func(c *Config) {
		if c.types == nil {
			c.types = make(map[string]struct{}, len(types))
		}
		for _, typ := range types {
			c.types[typ] = struct{}{}
		}
	})
}

func (c *Config) keepType(typ string) bool {
	if c.types == nil {
		return true
	}
	_, ok := c.types[typ]

	return ok
}
