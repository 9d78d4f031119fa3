package corr

import "github.com/arloliu/corrstat/internal/options"

// Option is a functional option for configuring a Correlation engine.
type Option = options.Option[*Correlation]

func applyOptions(c *Correlation, opts ...Option) error {
	return options.Apply(c, opts...)
}

// WithRunningCorrelation sets the initial full-window ingestion policy:
// true for circular overwrite (sliding window), false for reject.
func WithRunningCorrelation(rc bool) Option {
	return options.NoError(func(c *Correlation) {
		c.store.running = rc
	})
}

// WithR2Calculation sets whether Calculate keeps the correlation
// coefficient current. Disable to save cycles when only the fitted
// line is needed.
func WithR2Calculation(doR2 bool) Option {
	return options.NoError(func(c *Correlation) {
		c.doR2 = doR2
	})
}

// WithE2Calculation sets whether Calculate keeps the residual sum of
// squares current.
func WithE2Calculation(doE2 bool) Option {
	return options.NoError(func(c *Correlation) {
		c.doE2 = doE2
	})
}
