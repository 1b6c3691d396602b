// SPDX-License-Identifier: ice License 1.0

package interval

import (
	"github.com/pkg/errors"
)

// Public API.

const (
	MillisecondsPerSecond = int64(1000)
	MillisecondsPerMinute = 60 * MillisecondsPerSecond
	MillisecondsPerHour   = 60 * MillisecondsPerMinute
	MillisecondsPerDay    = 24 * MillisecondsPerHour
)

var (
	ErrOverflow = errors.New("interval overflows the representable range")
)

type (
	// Interval is a signed span of time with millisecond resolution, decomposable
	// into whole days plus an hour/minute/second/millisecond remainder. It is a
	// trivially copyable value, the zero value is the empty span.
	Interval struct {
		totalMsec int64
	}
)
