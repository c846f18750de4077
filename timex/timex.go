// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: timex/timex.go
// Summary: Calendar helpers: month boundaries, day comparisons, component access.

// Package timex adds calendar-day helpers on top of time.Time.
package timex

import "time"

// FirstDay returns midnight of the first day of month in year, in loc.
// A nil loc means time.Local. Out-of-range months normalize like time.Date.
func FirstDay(month time.Month, year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// LastDay returns midnight of the last day of month in year, in loc.
func LastDay(month time.Month, year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same calendar day in a's
// location.
func IsSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current local day.
func IsToday(t time.Time) bool {
	return IsSameDay(time.Now(), t)
}

// Component names one field of a calendar date.
type Component int

const (
	Year Component = iota
	Month
	Day
	Hour
	Minute
	Second
	Nanosecond
)

// Get returns component c of t in t's location. Unknown components yield 0.
func Get(t time.Time, c Component) int {
	switch c {
	case Year:
		return t.Year()
	case Month:
		return int(t.Month())
	case Day:
		return t.Day()
	case Hour:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Nanosecond:
		return t.Nanosecond()
	}
	return 0
}

// With returns t with component c set to v, keeping t's location. Values
// outside the usual range normalize like time.Date (Month 13 is January of
// the next year). Unknown components return t unchanged.
func With(t time.Time, c Component, v int) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()
	switch c {
	case Year:
		y = v
	case Month:
		mo = time.Month(v)
	case Day:
		d = v
	case Hour:
		h = v
	case Minute:
		mi = v
	case Second:
		s = v
	case Nanosecond:
		ns = v
	default:
		return t
	}
	return time.Date(y, mo, d, h, mi, s, ns, t.Location())
}
