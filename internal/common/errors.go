package common

import "errors"

// ErrInvalidConfiguration marks contradictory, missing or out-of-range settings.
// It is always reported before any network activity takes place.
var ErrInvalidConfiguration = errors.New("invalid configuration")
