// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/rtcp"
)

// Codepoint is the two bit ECN field of the traffic class octet.
type Codepoint uint8

// ECN codepoints as defined by RFC 3168.
const (
	// NotECT marks a transport that is not ECN capable.
	NotECT Codepoint = 0
	// ECT1 is ECN-capable transport (1); L4S-aware transports use it.
	ECT1 Codepoint = 1
	// ECT0 is ECN-capable transport (0); classic transports use it.
	ECT0 Codepoint = 2
	// CE means congestion experienced.
	CE Codepoint = 3
)

const codepointMask = 0x03

var (
	errUnknownTrafficClass = errors.New("unknown traffic class")

	codepointNames = [4]string{
		"no ECN",
		"ECT(1)",
		"ECT(0)",
		"ECN CE",
	}
	codepointMeanings = [4]string{
		"non-ECN-capable transport",
		"ECN-capable; L4S: L4S-aware transport",
		"ECN-capable; L4S: legacy transport",
		"congestion experienced",
	}
)

// String returns the short diagnostic tag of the codepoint.
func (c Codepoint) String() string {
	return codepointNames[c&codepointMask]
}

// Meaning returns a longer human readable description.
func (c Codepoint) Meaning() string {
	return codepointMeanings[c&codepointMask]
}

// RTCP converts the codepoint to its RFC 8888 representation.
func (c Codepoint) RTCP() rtcp.ECN {
	switch c & codepointMask {
	case ECT1:
		return rtcp.ECNECT1
	case ECT0:
		return rtcp.ECNECT0
	case CE:
		return rtcp.ECNCE
	default:
		return rtcp.ECNNonECT
	}
}

// CodepointFromRTCP converts an RFC 8888 ECN value to a Codepoint.
func CodepointFromRTCP(e rtcp.ECN) Codepoint {
	switch e {
	case rtcp.ECNECT1:
		return ECT1
	case rtcp.ECNECT0:
		return ECT0
	case rtcp.ECNCE:
		return CE
	default:
		return NotECT
	}
}

// TrafficClass is the full IPv4 TOS / IPv6 Traffic Class octet: six bits of
// DSCP followed by the two ECN bits.
type TrafficClass uint8

// NewTrafficClass combines a six bit DSCP value and a codepoint.
func NewTrafficClass(dscp uint8, c Codepoint) TrafficClass {
	return TrafficClass(dscp<<2 | uint8(c&codepointMask))
}

// Codepoint returns the ECN bits.
func (t TrafficClass) Codepoint() Codepoint {
	return Codepoint(t & codepointMask)
}

// DSCP returns the Differentiated Services Code Point, already shifted down.
func (t TrafficClass) DSCP() uint8 {
	return uint8(t) >> 2
}

func (t TrafficClass) String() string {
	return fmt.Sprintf("%02X", uint8(t))
}

// ParseTrafficClass accepts a codepoint name (NO, ECT0, ECT1, CE), which
// yields DSCP zero, or an integer 0..255 in Go syntax.
func ParseTrafficClass(s string) (TrafficClass, error) {
	switch strings.ToUpper(s) {
	case "NO":
		return TrafficClass(NotECT), nil
	case "ECT0":
		return TrafficClass(ECT0), nil
	case "ECT1":
		return TrafficClass(ECT1), nil
	case "CE":
		return TrafficClass(CE), nil
	}

	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUnknownTrafficClass, s)
	}

	return TrafficClass(v), nil
}
