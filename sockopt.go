// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import (
	"net"
	"syscall"
)

// PacketConn is a datagram socket whose descriptor can be reached.
// *net.UDPConn satisfies it.
type PacketConn interface {
	net.Conn
	net.PacketConn
	SyscallConn() (syscall.RawConn, error)
}

// sockopts are the four socket options the tiering logic needs.
type sockopts interface {
	enableRecvTOS() error
	enableRecvTClass() error
	setTOS(tos int) error
	setTClass(tclass int) error
}

// Prepare asks the kernel to deliver the traffic class of every received
// datagram on c. IPv6 sockets also get the IPv4 option so that v4-mapped
// peers are covered; if only that step fails the tier is TierPartial.
// Calling Prepare again yields the same tier.
func Prepare(c PacketConn, f Family) (Tier, error) {
	o, err := newSockopts(c)
	if err != nil {
		return TierFailed, &OptionError{Op: "prepare", Family: f, Tier: TierFailed, Err: err}
	}

	return prepare(o, f)
}

// SetTrafficClass sets the socket default traffic class used for datagrams
// sent without per-packet control data. Tiers follow Prepare.
func SetTrafficClass(c PacketConn, f Family, tc TrafficClass) (Tier, error) {
	o, err := newSockopts(c)
	if err != nil {
		return TierFailed, &OptionError{Op: "set traffic class", Family: f, Tier: TierFailed, Err: err}
	}

	return setTrafficClass(o, f, tc)
}

// Setup runs Prepare and SetTrafficClass and returns the errors the default
// policy considers fatal, or nil if the socket is usable.
func Setup(c PacketConn, f Family, tc TrafficClass) error {
	return setupWithPolicy(c, f, tc, DefaultPolicy())
}

func setupWithPolicy(c PacketConn, f Family, tc TrafficClass, p Policy) error {
	o, err := newSockopts(c)
	if err != nil {
		return &OptionError{Op: "setup", Family: f, Tier: TierFailed, Err: err}
	}

	return setup(o, f, tc, p)
}

func setup(o sockopts, f Family, tc TrafficClass, p Policy) error {
	var errs []error
	if t, err := prepare(o, f); p.PrepareFatal(t) {
		errs = append(errs, err)
	}
	if t, err := setTrafficClass(o, f, tc); p.TrafficClassFatal(t) {
		errs = append(errs, err)
	}

	return flattenErrs(errs)
}

func prepare(o sockopts, f Family) (Tier, error) {
	const op = "prepare"
	switch f {
	case FamilyIPv4:
		if err := o.enableRecvTOS(); err != nil {
			return TierFailed, &OptionError{Op: op, Family: f, Tier: TierFailed, Err: err}
		}
	case FamilyIPv6:
		if err := o.enableRecvTClass(); err != nil {
			return TierFailed, &OptionError{Op: op, Family: f, Tier: TierFailed, Err: err}
		}
		if err := o.enableRecvTOS(); err != nil {
			return TierPartial, &OptionError{Op: op, Family: f, Tier: TierPartial, Err: err}
		}
	default:
		return TierFailed, &OptionError{Op: op, Family: f, Tier: TierFailed, Err: ErrInvalidAddressFamily}
	}

	return TierOK, nil
}

func setTrafficClass(o sockopts, f Family, tc TrafficClass) (Tier, error) {
	const op = "set traffic class"
	switch f {
	case FamilyIPv4:
		if err := o.setTOS(int(tc)); err != nil {
			return TierFailed, &OptionError{Op: op, Family: f, Tier: TierFailed, Err: err}
		}
	case FamilyIPv6:
		if err := o.setTClass(int(tc)); err != nil {
			return TierFailed, &OptionError{Op: op, Family: f, Tier: TierFailed, Err: err}
		}
		if err := o.setTOS(int(tc)); err != nil {
			return TierPartial, &OptionError{Op: op, Family: f, Tier: TierPartial, Err: err}
		}
	default:
		return TierFailed, &OptionError{Op: op, Family: f, Tier: TierFailed, Err: ErrInvalidAddressFamily}
	}

	return TierOK, nil
}
