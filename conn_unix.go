// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import (
	"net"
	"net/netip"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// ReadMsgFlags is ReadMsg that also reports truncation. Truncated control
// data is logged and otherwise ignored. The read honours the deadlines set
// on the underlying socket.
func (c *Conn) ReadMsgFlags(b []byte, flags int) (int, RecvFlags, Result, netip.AddrPort, error) {
	raw, err := c.UDPConn.SyscallConn()
	if err != nil {
		return 0, RecvFlags{}, Invalid, netip.AddrPort{}, err
	}

	oobp := c.getOOB()
	defer c.oobPool.Put(oobp)
	oob := *oobp

	var (
		n, oobn, rflags int
		from            unix.Sockaddr
		sysErr          error
	)
	err = raw.Read(func(fd uintptr) bool {
		for {
			n, oobn, rflags, from, sysErr = unix.Recvmsg(int(fd), b, oob, flags)
			if sysErr != unix.EINTR {
				break
			}
		}

		return sysErr != unix.EAGAIN
	})
	if err != nil {
		return 0, RecvFlags{}, Invalid, netip.AddrPort{}, err
	}
	if sysErr != nil {
		return 0, RecvFlags{}, Invalid, netip.AddrPort{}, os.NewSyscallError("recvmsg", sysErr)
	}

	rf := RecvFlags{
		Truncated:        rflags&unix.MSG_TRUNC != 0,
		ControlTruncated: rflags&unix.MSG_CTRUNC != 0,
	}
	if rf.ControlTruncated {
		c.log.Warnf("control data truncated at %d bytes", oobn)
	}

	return n, rf, c.decoder.DecodeBytes(oob[:oobn]), sockaddrToAddrPort(from), nil
}

// WriteMsg sends b with traffic class tc. For a connected socket to must be
// the zero AddrPort.
func (c *Conn) WriteMsg(b []byte, tc TrafficClass, to netip.AddrPort) (int, error) {
	oobp := c.getOOB()
	defer c.oobPool.Put(oobp)

	oob, err := c.encoder.Marshal(*oobp, c.family, tc)
	if err != nil {
		return 0, err
	}

	n, _, err := c.UDPConn.WriteMsgUDPAddrPort(b, oob, to)

	return n, err
}

func sockaddrToAddrPort(sa unix.Sockaddr) netip.AddrPort {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return netip.AddrPortFrom(netip.AddrFrom4(sa.Addr), uint16(sa.Port)) //nolint:gosec
	case *unix.SockaddrInet6:
		addr := netip.AddrFrom16(sa.Addr)
		if sa.ZoneId != 0 {
			addr = addr.WithZone(zoneName(sa.ZoneId))
		}

		return netip.AddrPortFrom(addr, uint16(sa.Port)) //nolint:gosec
	default:
		return netip.AddrPort{}
	}
}

func zoneName(index uint32) string {
	if ifi, err := net.InterfaceByIndex(int(index)); err == nil {
		return ifi.Name
	}

	return strconv.FormatUint(uint64(index), 10)
}
