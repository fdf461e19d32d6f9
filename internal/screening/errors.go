package screening

import "errors"

// ErrOutOfRange indicates a screening value outside its allowed range or
// enumerated label set.
var ErrOutOfRange = errors.New("screening value out of range")
