// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

// Counts tallies received datagrams per codepoint. It is not safe for
// concurrent use.
type Counts struct {
	NotECT  uint64
	ECT1    uint64
	ECT0    uint64
	CE      uint64
	Invalid uint64
}

// Add counts one datagram.
func (c *Counts) Add(r Result) {
	if !r.Valid() {
		c.Invalid++

		return
	}

	switch r.Codepoint() {
	case NotECT:
		c.NotECT++
	case ECT1:
		c.ECT1++
	case ECT0:
		c.ECT0++
	case CE:
		c.CE++
	}
}

// Total returns the number of datagrams counted, invalid ones included.
func (c Counts) Total() uint64 {
	return c.NotECT + c.ECT1 + c.ECT0 + c.CE + c.Invalid
}
