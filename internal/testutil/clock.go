package testutil

import (
	"time"

	"github.com/light-bringer/catalog-service/internal/pkg/clock"
)

// FixedTime is the instant used by fixed clocks in tests.
var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at FixedTime.
func NewFixedClock() *clock.MockClock {
	return clock.NewMockClock(FixedTime)
}
