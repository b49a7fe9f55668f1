// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rfc8888

// unwrapper extends 16 bit RTP sequence numbers to a monotonic int64 space.
// Reordered packets map back below the highest number seen, but never below
// zero.
type unwrapper struct {
	init          bool
	lastUnwrapped int64
}

// isNewer reports whether value follows previous in sequence number order.
// Exactly half the space apart is broken by numeric order.
func isNewer(value, previous uint16) bool {
	if value-previous == 0x8000 {
		return value > previous
	}

	return value != previous && value-previous < 0x8000
}

func (u *unwrapper) unwrap(seq uint16) int64 {
	if !u.init {
		u.init = true
		u.lastUnwrapped = int64(seq)

		return u.lastUnwrapped
	}

	last := uint16(u.lastUnwrapped) //nolint:gosec
	delta := int64(seq - last)
	if !isNewer(seq, last) && delta > 0 && u.lastUnwrapped+delta-(1<<16) >= 0 {
		delta -= 1 << 16
	}
	u.lastUnwrapped += delta

	return u.lastUnwrapped
}
