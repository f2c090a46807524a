package outreach

import "errors"

// ErrUnknownAudience is returned when an audience tag is neither "agent"
// nor "companion".
var ErrUnknownAudience = errors.New("unknown outreach audience")
