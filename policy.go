// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

// Policy captures what differs between operating systems: how outgoing
// control data is laid out and which option failures leave a socket
// unusable.
type Policy interface {
	// HeaderCount is the number of control message headers Marshal writes.
	HeaderCount(f Family) int
	// PayloadWidth is the size in bytes of the first header's payload.
	PayloadWidth(f Family) int
	// PrepareFatal reports whether a Prepare tier is fatal.
	PrepareFatal(t Tier) bool
	// TrafficClassFatal reports whether a SetTrafficClass tier is fatal.
	TrafficClassFatal(t Tier) bool
}

const intWidth = 4

// linuxPolicy mirrors the traffic class into an IP_TOS header for IPv6
// sockets, so v4-mapped peers are marked too.
type linuxPolicy struct {
	checkQuirks bool
	quirks      interface{ Quirk() Quirk }
}

func (linuxPolicy) HeaderCount(f Family) int {
	if f == FamilyIPv6 {
		return 2
	}

	return 1
}

func (linuxPolicy) PayloadWidth(Family) int { return intWidth }

func (linuxPolicy) PrepareFatal(t Tier) bool { return t >= TierPartial }

func (p linuxPolicy) TrafficClassFatal(t Tier) bool {
	if !p.checkQuirks {
		return t >= TierFailed
	}
	if p.quirks != nil && p.quirks.Quirk() == QuirkWSL {
		return false
	}

	return t >= TierPartial
}

type darwinPolicy struct{}

func (darwinPolicy) HeaderCount(Family) int { return 1 }

func (darwinPolicy) PayloadWidth(Family) int { return intWidth }

func (darwinPolicy) PrepareFatal(t Tier) bool { return t >= TierFailed }

func (darwinPolicy) TrafficClassFatal(t Tier) bool { return t >= TierFailed }

// bsdPolicy passes IP_TOS as a single byte.
type bsdPolicy struct{}

func (bsdPolicy) HeaderCount(Family) int { return 1 }

func (bsdPolicy) PayloadWidth(f Family) int {
	if f == FamilyIPv4 {
		return 1
	}

	return intWidth
}

func (bsdPolicy) PrepareFatal(t Tier) bool { return t >= TierFailed }

func (bsdPolicy) TrafficClassFatal(t Tier) bool { return t >= TierFailed }

// DefaultPolicy returns the policy of the running operating system.
func DefaultPolicy() Policy {
	return defaultPolicy
}

// winsockPolicy sends the ECN bits under IP_ECN / IPV6_ECN with an int
// payload. Winsock may refuse to set the traffic class at all, which is
// never fatal there.
type winsockPolicy struct{}

func (winsockPolicy) HeaderCount(Family) int { return 1 }

func (winsockPolicy) PayloadWidth(Family) int { return intWidth }

func (winsockPolicy) PrepareFatal(t Tier) bool { return t >= TierFailed }

func (winsockPolicy) TrafficClassFatal(Tier) bool { return false }
