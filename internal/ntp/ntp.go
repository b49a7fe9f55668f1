// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ntp converts between time.Time and NTP timestamps.
package ntp

import "time"

// Seconds between the NTP epoch (1900) and the Unix epoch (1970).
const unixOffset = 2208988800

const nanosPerSecond = uint64(time.Second)

// ToNTP converts t to a 64 bit NTP timestamp: 32 bits of seconds since 1900
// followed by 32 bits of fraction, rounded to the nearest fraction step.
func ToNTP(t time.Time) uint64 {
	seconds := uint64(t.Unix() + unixOffset)                                     //nolint:gosec
	fraction := (uint64(t.Nanosecond())<<32 + nanosPerSecond/2) / nanosPerSecond //nolint:gosec

	return seconds<<32 + fraction
}

// ToNTP32 returns the middle 32 bits of the NTP timestamp of t, the short
// format used by RFC 8888 report timestamps.
func ToNTP32(t time.Time) uint32 {
	return uint32(ToNTP(t) >> 16) //nolint:gosec
}

// ToTime converts a 64 bit NTP timestamp to a time.Time.
func ToTime(ts uint64) time.Time {
	seconds := int64(ts >> 32)                                      //nolint:gosec
	nanos := int64(((ts&0xFFFFFFFF)*nanosPerSecond + 1<<31) >> 32) //nolint:gosec

	return time.Unix(seconds-unixOffset, nanos)
}

// ToTime32 expands a short NTP timestamp using reference for the missing high
// bits, choosing the candidate closest to reference.
func ToTime32(ts uint32, reference time.Time) time.Time {
	const era = uint64(1) << 48

	ref := ToNTP(reference)
	full := ref&^(era-1) | uint64(ts)<<16
	switch {
	case full > ref && full-ref > era/2 && full >= era:
		full -= era
	case full < ref && ref-full > era/2:
		full += era
	}

	return ToTime(full)
}
