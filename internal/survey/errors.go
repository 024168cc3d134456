package survey

import "errors"

var (
	// ErrInsufficientPopulation indicates a requested sample size exceeds
	// the available population or stratum size.
	ErrInsufficientPopulation = errors.New("requested sample size exceeds available population")

	// ErrInvalidAllocation indicates an allocation plan that cannot be
	// balanced to the target total (e.g. negative per-stratum counts).
	ErrInvalidAllocation = errors.New("allocation plan cannot be balanced")

	// ErrConfiguration indicates invalid caller input such as an unknown
	// stratum label, an empty seed list, or an unknown design type.
	ErrConfiguration = errors.New("invalid survey configuration")
)
