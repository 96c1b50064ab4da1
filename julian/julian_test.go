package julian

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayNumber(t *testing.T) {
	cases := []struct {
		y, d int
		m    time.Month
		want int
	}{
		{2006, 2, time.January, 2453738},
		{2023, 5, time.July, 2460131},
		{1970, 1, time.January, 2440588},
		{1999, 31, time.December, 2451544},
		{2000, 1, time.January, 2451545},
		{2099, 28, time.February, 2487763},
	}
	for _, c := range cases {
		have := DayNumber(c.y, c.m, c.d)
		if have != c.want {
			t.Errorf("%04d-%02d-%02d: want %d, have %d", c.y, c.m, c.d, c.want, have)
		}
	}
}

func TestFromTime(t *testing.T) {
	assert.Equal(t, J2000, FromTime(Epoch))
	assert.Equal(t, 2451544.5, FromTime(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2440587.5, FromTime(time.Unix(0, 0)))

	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2000, 1, 1, 17, 30, 0, 0, ist)
	assert.Equal(t, J2000, FromTime(local), "non-UTC times are converted first")
}

func TestCenturies(t *testing.T) {
	assert.Equal(t, 0.0, Centuries(Epoch))
	assert.Equal(t, 1.0, Centuries(time.Date(2100, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.InDelta(t, -36524.0/36525.0, Centuries(time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC)), 1e-15)

	before := Centuries(time.Date(1999, 12, 31, 23, 0, 0, 0, time.UTC))
	after := Centuries(time.Date(2000, 1, 2, 1, 0, 0, 0, time.UTC))
	assert.Less(t, before, 0.0)
	assert.Greater(t, after, 0.0)
}

func TestCenturiesSubDay(t *testing.T) {
	morning := Centuries(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	evening := Centuries(time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC))
	assert.Less(t, evening-morning, 1/DaysPerCentury)
	assert.Greater(t, evening, morning)
}

func TestCenturiesAtMidnight(t *testing.T) {
	assert.InDelta(t, 9504.5/36525.0, CenturiesAtMidnight(2026, time.January, 9), 1e-15)
	assert.InDelta(t, -0.1, CenturiesAtMidnight(1990, time.January, 1), 1e-15)
	assert.Equal(t,
		Centuries(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)),
		CenturiesAtMidnight(1990, time.January, 1))
}

func TestToTime(t *testing.T) {
	cases := []time.Time{
		Epoch,
		time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC),
		time.Date(1900, 1, 1, 6, 30, 15, 0, time.UTC),
		time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2099, 2, 28, 18, 45, 0, 0, time.UTC),
	}
	for _, want := range cases {
		have := ToTime(FromTime(want))
		assert.WithinDuration(t, want, have, time.Millisecond, "round trip of %s", want)
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(2000))
	assert.True(t, InRange(MinYear))
	assert.True(t, InRange(MaxYear))
	assert.False(t, InRange(MinYear-1))
	assert.False(t, InRange(MaxYear+1))
}
