package service

import "time"

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
