// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package ecn

// Control message levels and types, with Winsock values. Winsock reports the
// ECN bits under IP_ECN and IPV6_ECN, both 50.
const (
	LevelIP        = 0
	LevelIPv6      = 41
	TypeIPTOS      = 3
	TypeIPRecvTOS  = 50
	TypeIPv6TClass = 50
)

// Winsock takes outgoing ECN bits under IP_ECN and IPV6_ECN only.
const (
	sendTypeIP   = 50
	sendTypeIPv6 = 50
)
