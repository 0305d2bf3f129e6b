package yacht

import "errors"

var ErrNotFound = errors.New("yacht not found")
