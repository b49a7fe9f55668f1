// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import "fmt"

// Family is the address family of a socket.
type Family int

const (
	// FamilyUnknown is any family other than IPv4 and IPv6.
	FamilyUnknown Family = iota
	// FamilyIPv4 is AF_INET.
	FamilyIPv4
	// FamilyIPv6 is AF_INET6, dual-stack or not.
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	case FamilyUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}
