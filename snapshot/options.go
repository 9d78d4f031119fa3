package snapshot

import (
	"fmt"

	"github.com/arloliu/corrstat/format"
	"github.com/arloliu/corrstat/internal/options"
)

type config struct {
	Compression format.CompressionType
}

func defaultConfig() config {
	return config{Compression: format.CompressionNone}
}

// Option is a functional option for Encode.
type Option = options.Option[*config]

func applyOptions(cfg *config, opts ...Option) error {
	return options.Apply(cfg, opts...)
}

// WithCompression selects the payload compression codec.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !c.Valid() {
			return fmt.Errorf("snapshot: invalid compression type: %s", c)
		}
		cfg.Compression = c

		return nil
	})
}
