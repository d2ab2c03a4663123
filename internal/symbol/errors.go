package symbol

import "errors"

// ErrInvalidToken reports a token or event that cannot be converted.
var ErrInvalidToken = errors.New("invalid token")
