// Package timeutil resolves match start instants into the display values the
// canonical record carries: a relative date bucket and a tri-zone time string.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OffsetMinutes parses a venue UTC offset of the form "+05:30" / "-08:00"
// into signed minutes. The minute component is taken literally, never
// rounded. Returns false for anything that does not match the form.
func OffsetMinutes(tz string) (int, bool) {
	if len(tz) < 2 {
		return 0, false
	}
	sign := 1
	if tz[0] == '-' {
		sign = -1
	}
	parts := strings.Split(tz[1:], ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return sign * (hours*60 + minutes), true
}

// Localize turns an epoch-milliseconds start instant into the display pair
// (dateBucket, timeString).
//
// The bucket compares the instant's calendar date in now's location against
// now and now+1d: "Today", "Tomorrow" or zero-padded DD/MM/YYYY. The time
// string concatenates three independently formatted 12-hour clocks:
// viewer-local, reference (UTC), and venue-local. venueOffset is the venue
// UTC offset in minutes; when nil the venue clock falls back to the
// reference clock. Best effort only, never fails.
func Localize(epochMs int64, venueOffset *int, now time.Time) (string, string) {
	loc := now.Location()
	dt := time.UnixMilli(epochMs).In(loc)

	bucket := fmt.Sprintf("%02d/%02d/%04d", dt.Day(), int(dt.Month()), dt.Year())
	if sameDay(dt, now) {
		bucket = "Today"
	} else if sameDay(dt, now.AddDate(0, 0, 1)) {
		bucket = "Tomorrow"
	}

	viewer := formatClock(dt)
	ref := formatClock(dt.UTC())
	venue := ref
	if venueOffset != nil {
		venue = formatClock(dt.UTC().Add(time.Duration(*venueOffset) * time.Minute))
	}
	return bucket, fmt.Sprintf("%s / %s (GMT) / %s (LOCAL)", viewer, ref, venue)
}

// MatchesDay reports whether the instant falls on the requested calendar day
// (YYYY-MM-DD), evaluated in loc. Unparseable days never match.
func MatchesDay(epochMs int64, day string, loc *time.Location) bool {
	want, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return false
	}
	return sameDay(time.UnixMilli(epochMs).In(loc), want)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// formatClock renders a 12-hour clock with AM/PM; hour 0 wraps to 12.
func formatClock(t time.Time) string {
	hh := t.Hour() % 12
	if hh == 0 {
		hh = 12
	}
	ap := "AM"
	if t.Hour() >= 12 {
		ap = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hh, t.Minute(), ap)
}
