// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package ecn

import "net/netip"

// ReadMsgFlags is not available on this platform.
func (c *Conn) ReadMsgFlags([]byte, int) (int, RecvFlags, Result, netip.AddrPort, error) {
	return 0, RecvFlags{}, Invalid, netip.AddrPort{}, ErrUnsupportedPlatform
}

// WriteMsg is not available on this platform.
func (c *Conn) WriteMsg([]byte, TrafficClass, netip.AddrPort) (int, error) {
	return 0, ErrUnsupportedPlatform
}
