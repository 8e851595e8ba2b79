package ips

import (
	"errors"
	"fmt"
)

// ErrNoPayload is wrapped by every reason Encode has for not producing a payload.
var ErrNoPayload = errors.New("no payload")

var (
	ErrIncomplete       = fmt.Errorf("%w: required field missing", ErrNoPayload)
	ErrMalformedAccount = fmt.Errorf("%w: malformed account", ErrNoPayload)
	ErrMalformedAmount  = fmt.Errorf("%w: malformed amount", ErrNoPayload)
)
