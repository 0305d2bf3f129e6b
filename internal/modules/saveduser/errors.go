package saveduser

import "errors"

var (
	ErrNotFound   = errors.New("saved user not found")
	ErrValidation = errors.New("validation error")
)
