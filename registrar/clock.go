package registrar

import (
	"errors"
	"time"

	"go.uber.org/atomic"
)

var ErrClockBeforeEpoch = errors.New("system clock is set before the unix epoch")

// SystemClock reads the wall clock in Unix seconds. The values it returns
// never decrease, even if the wall clock is stepped back.
type SystemClock struct {
	last atomic.Uint64
	now  func() time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{now: time.Now}
}

func (c *SystemClock) Now() (uint64, error) {
	nowFn := c.now
	if nowFn == nil {
		nowFn = time.Now
	}

	secs := nowFn().Unix()
	if secs < 0 {
		return 0, ErrClockBeforeEpoch
	}

	current := uint64(secs)
	for {
		last := c.last.Load()
		if current <= last {
			return last, nil
		}
		if c.last.CompareAndSwap(last, current) {
			return current, nil
		}
	}
}

// FixedClock always returns the same timestamp.
type FixedClock uint64

func (c FixedClock) Now() (uint64, error) {
	return uint64(c), nil
}
