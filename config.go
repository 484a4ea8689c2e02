package offerscan

// Config holds all configuration for the offer analysis engine.
type Config struct {
	// MaxDocuments caps how many documents one batch may contain.
	// Defaults to 6.
	MaxDocuments int `json:"max_documents" yaml:"max_documents"`

	// OutlierRatio is the overprice threshold: a pivot cell is flagged when
	// its price is strictly greater than OutlierRatio × the row minimum.
	// Defaults to 1.3.
	OutlierRatio float64 `json:"outlier_ratio" yaml:"outlier_ratio"`
}

// DefaultConfig returns a Config matching the observed vendor documents:
// batches of up to 6 offers, 30% overprice threshold.
func DefaultConfig() Config {
	return Config{
		MaxDocuments: 6,
		OutlierRatio: 1.3,
	}
}

func (c *Config) validate() error {
	if c.MaxDocuments <= 0 {
		return ErrInvalidConfig
	}
	if c.OutlierRatio <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
