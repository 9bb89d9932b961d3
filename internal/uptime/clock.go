// Package uptime derives process uptime and local-time fields from a start
// instant captured once at startup.
package uptime

import (
	"fmt"
	"time"

	"devops-info/infoservice/internal/models/dtos/responses"
)

const (
	// CurrentTimeLayout renders local time with millisecond precision and a
	// numeric offset, e.g. 2026-01-26T15:56:22.043+03:00.
	CurrentTimeLayout = "2006-01-02T15:04:05.000-07:00"

	// TimestampLayout renders UTC instants with a +00:00 designator.
	TimestampLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Clock holds the process start time. It is never mutated after NewClock
// returns, so it can be shared across request goroutines freely.
type Clock struct {
	startedAt time.Time
	now       func() time.Time
	location  *time.Location
}

type Option func(*Clock)

// WithNowFunc overrides the source of the current time.
func WithNowFunc(fn func() time.Time) Option {
	return func(c *Clock) {
		c.now = fn
	}
}

// WithLocation sets the zone used for current_time and timezone.
func WithLocation(loc *time.Location) Option {
	return func(c *Clock) {
		c.location = loc
	}
}

// NewClock captures startedAt (converted to UTC) as the process start.
func NewClock(startedAt time.Time, opts ...Option) *Clock {
	c := &Clock{
		startedAt: startedAt.UTC(),
		now:       time.Now,
		location:  time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clock) StartedAt() time.Time {
	return c.startedAt
}

// Now returns the current instant in UTC.
func (c *Clock) Now() time.Time {
	return c.now().UTC()
}

// Seconds returns whole seconds elapsed between the start time and now,
// truncated. A clock that steps backwards yields 0, never a negative value.
func (c *Clock) Seconds(now time.Time) int64 {
	elapsed := now.Sub(c.startedAt)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// UptimeSeconds is Seconds evaluated at the current instant.
func (c *Clock) UptimeSeconds() int64 {
	return c.Seconds(c.Now())
}

// Runtime builds the runtime section of the info response.
func (c *Clock) Runtime() responses.RuntimeInfo {
	now := c.Now()
	seconds := c.Seconds(now)

	local := now
	if c.location != nil {
		local = now.In(c.location)
	}

	return responses.RuntimeInfo{
		UptimeSeconds: seconds,
		UptimeHuman:   HumanDuration(seconds),
		CurrentTime:   local.Format(CurrentTimeLayout),
		Timezone:      zoneName(local, c.location),
	}
}

// Timestamp formats now in UTC for the health response.
func (c *Clock) Timestamp(now time.Time) string {
	return now.UTC().Format(TimestampLayout)
}

// HumanDuration renders seconds as "H hours, M minutes". The suffix is
// dropped only for a count of exactly one, so zero stays plural.
func HumanDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%d hour%s, %d minute%s", hours, plural(hours), minutes, plural(minutes))
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func zoneName(t time.Time, loc *time.Location) *string {
	if loc == nil {
		return nil
	}
	name, _ := t.Zone()
	if name == "" {
		return nil
	}
	return &name
}
