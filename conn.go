// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ecn

import (
	"net"
	"net/netip"
	"sync"

	"github.com/pion/logging"
)

// oobSize is large enough for every control message the kernel attaches
// once Prepare has run, and for every layout Encoder produces.
const oobSize = 256

// RecvFlags reports truncation of a received datagram.
type RecvFlags struct {
	// Truncated is set when the datagram was longer than the buffer.
	Truncated bool
	// ControlTruncated is set when control data was discarded.
	ControlTruncated bool
}

// Conn wraps a UDP socket and reads and writes datagrams together with
// their traffic class. The address family is classified once, when the Conn
// is created. ReadMsg and WriteMsg may be called concurrently.
type Conn struct {
	*net.UDPConn

	family  Family
	policy  Policy
	decoder *Decoder
	encoder *Encoder
	log     logging.LeveledLogger

	oobPool sync.Pool
}

// NewConn classifies c and wraps it. Sockets of an unknown family are
// rejected with ErrInvalidAddressFamily.
func NewConn(c *net.UDPConn, opts ...Option) (*Conn, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	family, err := FamilyOf(c)
	if err != nil {
		return nil, err
	}
	if family == FamilyUnknown {
		return nil, ErrInvalidAddressFamily
	}

	conn := &Conn{
		UDPConn: c,
		family:  family,
		policy:  cfg.policy,
		decoder: &Decoder{log: cfg.loggerFactory.NewLogger("ecn")},
		encoder: &Encoder{policy: cfg.policy},
		log:     cfg.loggerFactory.NewLogger("ecn-conn"),
		oobPool: sync.Pool{
			New: func() any {
				b := make([]byte, oobSize)

				return &b
			},
		},
	}

	return conn, nil
}

// Family returns the address family found at construction.
func (c *Conn) Family() Family {
	return c.family
}

// Prepare enables traffic class reception, see Prepare.
func (c *Conn) Prepare() (Tier, error) {
	return Prepare(c.UDPConn, c.family)
}

// SetTrafficClass sets the socket default traffic class, see SetTrafficClass.
func (c *Conn) SetTrafficClass(tc TrafficClass) (Tier, error) {
	return SetTrafficClass(c.UDPConn, c.family, tc)
}

// Setup runs Prepare and SetTrafficClass and returns the errors the Conn's
// policy considers fatal.
func (c *Conn) Setup(tc TrafficClass) error {
	return setupWithPolicy(c.UDPConn, c.family, tc, c.policy)
}

// ReadMsg reads one datagram into b and decodes its traffic class.
func (c *Conn) ReadMsg(b []byte, flags int) (int, Result, netip.AddrPort, error) {
	n, _, res, from, err := c.ReadMsgFlags(b, flags)

	return n, res, from, err
}

func (c *Conn) getOOB() *[]byte {
	return c.oobPool.Get().(*[]byte) //nolint:forcetypeassert
}
