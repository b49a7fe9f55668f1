// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import (
	"os"
	"syscall"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
	"golang.org/x/sys/unix"
)

// rawSockopts reaches the descriptor through x/net where it has an API for
// the option and through x/sys/unix where it does not. The x/net wrappers
// only check the address family of the value they are handed, so both
// wrappers operate on the same descriptor regardless of its family.
type rawSockopts struct {
	raw syscall.RawConn
	v4  *ipv4.PacketConn
	v6  *ipv6.PacketConn
}

func newSockopts(c PacketConn) (sockopts, error) {
	raw, err := c.SyscallConn()
	if err != nil {
		return nil, err
	}

	return &rawSockopts{
		raw: raw,
		v4:  ipv4.NewPacketConn(c),
		v6:  ipv6.NewPacketConn(c),
	}, nil
}

func (s *rawSockopts) setInt(level, name, value int) error {
	var sysErr error
	if err := s.raw.Control(func(fd uintptr) {
		sysErr = unix.SetsockoptInt(int(fd), level, name, value)
	}); err != nil {
		return err
	}
	if sysErr != nil {
		return os.NewSyscallError("setsockopt", sysErr)
	}

	return nil
}

// x/net has no accessor for IP_RECVTOS.
func (s *rawSockopts) enableRecvTOS() error {
	return s.setInt(unix.IPPROTO_IP, unix.IP_RECVTOS, 1)
}

func (s *rawSockopts) enableRecvTClass() error {
	return s.v6.SetControlMessage(ipv6.FlagTrafficClass, true)
}

func (s *rawSockopts) setTOS(tos int) error {
	return s.v4.SetTOS(tos)
}

func (s *rawSockopts) setTClass(tclass int) error {
	return s.v6.SetTrafficClass(tclass)
}
