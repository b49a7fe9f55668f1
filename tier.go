// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import "fmt"

// Tier grades the outcome of a socket option change.
type Tier int

const (
	// TierOK means every option was applied.
	TierOK Tier = iota
	// TierPartial means the native family option was applied but the IPv4
	// option needed for v4-mapped peers on an IPv6 socket was not.
	TierPartial
	// TierFailed means the native family option failed or the family is unknown.
	TierFailed
)

func (t Tier) String() string {
	switch t {
	case TierOK:
		return "ok"
	case TierPartial:
		return "partial"
	case TierFailed:
		return "failed"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// PrepareFatal reports whether a Prepare tier leaves the socket unusable on
// this platform.
func PrepareFatal(t Tier) bool {
	return DefaultPolicy().PrepareFatal(t)
}

// TrafficClassFatal reports whether a SetTrafficClass tier leaves the socket
// unusable on this platform.
func TrafficClassFatal(t Tier) bool {
	return DefaultPolicy().TrafficClassFatal(t)
}
