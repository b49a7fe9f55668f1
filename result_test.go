// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultValidity(t *testing.T) {
	var zero Result
	for _, r := range []Result{zero, Invalid, 0x0300, 0x01B8} {
		assert.False(t, r.Valid(), "%#04x", uint16(r))
		assert.Equal(t, "??ECN?", r.String())
		assert.Equal(t, "??", r.Octet())
		assert.Equal(t, TrafficClass(0), r.TrafficClass())
		assert.Equal(t, uint8(0), r.DSCP())
	}

	for i := 0; i < 256; i++ {
		tc := TrafficClass(i)
		r := NewResult(tc)
		assert.True(t, r.Valid())
		assert.Equal(t, tc, r.TrafficClass())
		assert.Equal(t, tc.Codepoint(), r.Codepoint())
		assert.Equal(t, tc.DSCP(), r.DSCP())
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "no ECN", NewResult(0).String())
	assert.Equal(t, "00", NewResult(0).Octet())
	assert.Equal(t, "ECT(0)", NewResult(0xBA).String())
	assert.Equal(t, "BA", NewResult(0xBA).Octet())
	assert.Equal(t, "ECN CE", NewResult(0x03).String())
	assert.Equal(t, Result(0x0201), NewResult(1))
}

func TestCounts(t *testing.T) {
	var c Counts
	for _, r := range []Result{Invalid, NewResult(0), NewResult(1), NewResult(2), NewResult(0xBA), NewResult(3), 0} {
		c.Add(r)
	}

	assert.Equal(t, Counts{NotECT: 1, ECT1: 1, ECT0: 2, CE: 1, Invalid: 2}, c)
	assert.Equal(t, uint64(7), c.Total())
}
