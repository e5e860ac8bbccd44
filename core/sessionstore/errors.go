package sessionstore

import "errors"

var (
	// ErrDurableTierUnavailable is returned by Initialize when the durable
	// tier cannot be reached. Fatal: no further fallback exists.
	ErrDurableTierUnavailable = errors.New("durable storage tier unavailable")
)
