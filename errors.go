package offerscan

import "errors"

var (
	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("offerscan: invalid configuration")

	// ErrNoInput is returned when an analysis batch contains no documents
	// and no pasted text.
	ErrNoInput = errors.New("offerscan: no input documents")

	// ErrTooManyDocuments is returned when a batch exceeds the configured
	// document limit.
	ErrTooManyDocuments = errors.New("offerscan: too many documents in batch")

	// ErrNoData is returned when no document in the batch yields a single
	// structured line item. Per-document failures are absorbed; this is the
	// only extraction condition that escalates to the caller.
	ErrNoData = errors.New("offerscan: no structured data found")
)
