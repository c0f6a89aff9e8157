package service

import "time"

// Clock abstracts time.Now so request timestamps are deterministic in tests.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}
