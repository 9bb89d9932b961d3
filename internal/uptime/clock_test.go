package uptime

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var currentTimePattern = regexp.MustCompile(`^\d{4}-\d\d-\d\dT\d\d:\d\d:\d\d\.\d{3}([+-]\d\d:\d\d)?$`)

func fixedClock(start time.Time, elapsed time.Duration, opts ...Option) *Clock {
	opts = append([]Option{WithNowFunc(func() time.Time { return start.Add(elapsed) })}, opts...)
	return NewClock(start, opts...)
}

func TestHumanDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "0 hours, 0 minutes"},
		{59, "0 hours, 0 minutes"},
		{60, "0 hours, 1 minute"},
		{160, "0 hours, 2 minutes"},
		{3600, "1 hour, 0 minutes"},
		{3660, "1 hour, 1 minute"},
		{7320, "2 hours, 2 minutes"},
		{90061, "25 hours, 1 minute"},
		{-5, "0 hours, 0 minutes"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HumanDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestClock_SecondsTruncates(t *testing.T) {
	start := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	c := NewClock(start)

	assert.Equal(t, int64(0), c.Seconds(start))
	assert.Equal(t, int64(1), c.Seconds(start.Add(1999*time.Millisecond)))
	assert.Equal(t, int64(160), c.Seconds(start.Add(160*time.Second+900*time.Millisecond)))
}

func TestClock_SecondsNeverNegative(t *testing.T) {
	start := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	c := NewClock(start)

	assert.Equal(t, int64(0), c.Seconds(start.Add(-time.Hour)))
}

func TestClock_StartedAtIsUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	start := time.Date(2026, 1, 26, 15, 0, 0, 0, msk)
	c := NewClock(start)

	assert.Equal(t, time.UTC, c.StartedAt().Location())
	assert.True(t, c.StartedAt().Equal(start))
}

func TestClock_Runtime(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	start := time.Date(2026, 1, 26, 12, 53, 42, 0, time.UTC)
	c := fixedClock(start, 160*time.Second+43*time.Millisecond, WithLocation(msk))

	rt := c.Runtime()

	assert.Equal(t, int64(160), rt.UptimeSeconds)
	assert.Equal(t, "0 hours, 2 minutes", rt.UptimeHuman)
	assert.Equal(t, "2026-01-26T15:56:22.043+03:00", rt.CurrentTime)
	require.NotNil(t, rt.Timezone)
	assert.Equal(t, "MSK", *rt.Timezone)
}

func TestClock_RuntimeUTCOffset(t *testing.T) {
	start := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	c := fixedClock(start, 5*time.Second, WithLocation(time.UTC))

	rt := c.Runtime()

	assert.Equal(t, "2026-01-26T12:00:05.000+00:00", rt.CurrentTime)
	assert.Regexp(t, currentTimePattern, rt.CurrentTime)
}

func TestClock_RuntimeUnknownZone(t *testing.T) {
	start := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	c := fixedClock(start, 3661*time.Second, WithLocation(time.FixedZone("", -5*3600)))

	rt := c.Runtime()

	assert.Nil(t, rt.Timezone)
	assert.Equal(t, int64(3661), rt.UptimeSeconds)
	assert.Equal(t, "1 hour, 1 minute", rt.UptimeHuman)
	assert.Equal(t, "2026-01-26T08:01:01.000-05:00", rt.CurrentTime)
}

func TestClock_RuntimeNilLocation(t *testing.T) {
	start := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	c := fixedClock(start, time.Minute, WithLocation(nil))

	rt := c.Runtime()

	assert.Nil(t, rt.Timezone)
	assert.Equal(t, "0 hours, 1 minute", rt.UptimeHuman)
	assert.Regexp(t, currentTimePattern, rt.CurrentTime)
}

func TestClock_Timestamp(t *testing.T) {
	start := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	c := fixedClock(start, 1500*time.Microsecond)

	assert.Equal(t, "2026-01-26T12:00:00.001500+00:00", c.Timestamp(c.Now()))

	msk := time.FixedZone("MSK", 3*3600)
	assert.Equal(t, "2026-01-26T12:00:00.001500+00:00", c.Timestamp(c.Now().In(msk)))

	parsed, err := time.Parse(time.RFC3339Nano, c.Timestamp(c.Now()))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(start.Add(1500*time.Microsecond)))
}

func TestClock_RealTimeNonDecreasing(t *testing.T) {
	c := NewClock(time.Now())

	prev := c.UptimeSeconds()
	for i := 0; i < 50; i++ {
		cur := c.UptimeSeconds()
		assert.GreaterOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, int64(0))
		prev = cur
	}
}
