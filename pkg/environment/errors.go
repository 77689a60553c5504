package environment

import "errors"

// ErrUnknown is returned by Parse for values that name no known environment.
var ErrUnknown = errors.New("unknown environment")
