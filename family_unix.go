// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// FamilyOf classifies the socket behind c by asking the kernel for its local
// address. A socket that is neither IPv4 nor IPv6 yields FamilyUnknown and
// no error.
func FamilyOf(c syscall.Conn) (Family, error) {
	rc, err := c.SyscallConn()
	if err != nil {
		return FamilyUnknown, err
	}

	var (
		sa     unix.Sockaddr
		sysErr error
	)
	if err = rc.Control(func(fd uintptr) {
		sa, sysErr = unix.Getsockname(int(fd))
	}); err != nil {
		return FamilyUnknown, err
	}
	if sysErr != nil {
		return FamilyUnknown, &OptionError{Op: "getsockname", Family: FamilyUnknown, Tier: TierFailed, Err: sysErr}
	}

	switch sa.(type) {
	case *unix.SockaddrInet4:
		return FamilyIPv4, nil
	case *unix.SockaddrInet6:
		return FamilyIPv6, nil
	default:
		return FamilyUnknown, nil
	}
}
