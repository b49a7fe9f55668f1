// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import "fmt"

const (
	resultInvalidBit = 0x0100
	resultValidBit   = 0x0200
)

// Result is the outcome of decoding the control data of one datagram. The
// validity flag is kept apart from the octet so that Not-ECT can be told
// apart from "nothing received". The zero value is invalid.
type Result uint16

// Invalid is the Result of a datagram without a usable traffic class.
const Invalid Result = resultInvalidBit

// NewResult returns a valid Result carrying tc.
func NewResult(tc TrafficClass) Result {
	return Result(resultValidBit | uint16(tc))
}

// Valid reports whether the traffic class octet was received.
func (r Result) Valid() bool {
	return r>>8 == resultValidBit>>8
}

// TrafficClass returns the received octet, or zero if r is invalid.
func (r Result) TrafficClass() TrafficClass {
	if !r.Valid() {
		return 0
	}

	return TrafficClass(r & 0xFF)
}

// Codepoint returns the ECN bits, or NotECT if r is invalid.
func (r Result) Codepoint() Codepoint {
	return r.TrafficClass().Codepoint()
}

// DSCP returns the DSCP bits, or zero if r is invalid.
func (r Result) DSCP() uint8 {
	return r.TrafficClass().DSCP()
}

// String returns the short codepoint tag, or "??ECN?" for invalid results.
func (r Result) String() string {
	if !r.Valid() {
		return "??ECN?"
	}

	return r.Codepoint().String()
}

// Octet formats the traffic class as two hex digits, "??" if invalid.
func (r Result) Octet() string {
	if !r.Valid() {
		return "??"
	}

	return fmt.Sprintf("%02X", uint8(r))
}
