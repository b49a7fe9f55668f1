// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import "golang.org/x/sys/unix"

// Control message levels and types, as the kernel delivers them.
const (
	LevelIP        = unix.IPPROTO_IP
	LevelIPv6      = unix.IPPROTO_IPV6
	TypeIPTOS      = unix.IP_TOS
	TypeIPRecvTOS  = unix.IP_RECVTOS
	TypeIPv6TClass = unix.IPV6_TCLASS
)

// Types used for outgoing control data.
const (
	sendTypeIP   = unix.IP_TOS
	sendTypeIPv6 = unix.IPV6_TCLASS
)
