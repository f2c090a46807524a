package offers

import "errors"

// Domain errors for offer reconciliation. All of them collapse to fallback
// substitution in the adapter; none reach the visitor.
var (
	ErrInvalid     = errors.New("invalid offer response")
	ErrInvalidTier = errors.New("unknown offer tier")
)
