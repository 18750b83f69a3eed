package life

import "errors"

// ErrInvalidDimension indicates a grid width or height that is not a positive integer.
var ErrInvalidDimension = errors.New("life: invalid dimension")
