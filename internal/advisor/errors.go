package advisor

import "errors"

// ErrUnavailable is returned when the remote generation capability cannot
// be attempted at all (no endpoint configured). Every other failure mode is
// absorbed by fallback substitution and never surfaces to the caller.
var ErrUnavailable = errors.New("generation capability unavailable")
