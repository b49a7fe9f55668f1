// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux

package ecn

import (
	"net"
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/pion/logging"
	"github.com/pion/transport/v3/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenConn(t *testing.T, network, address string) *Conn {
	t.Helper()

	udp, err := net.ListenUDP(network, net.UDPAddrFromAddrPort(netip.MustParseAddrPort(address)))
	if err != nil {
		t.Skipf("cannot listen on %s %s: %v", network, address, err)
	}
	t.Cleanup(func() { _ = udp.Close() })

	conn, err := NewConn(udp, WithLoggerFactory(logging.NewDefaultLoggerFactory()))
	require.NoError(t, err)

	return conn
}

func localAddrPort(t *testing.T, c *Conn, host string) netip.AddrPort {
	t.Helper()

	port := c.LocalAddr().(*net.UDPAddr).Port //nolint:forcetypeassert

	return netip.AddrPortFrom(netip.MustParseAddr(host), uint16(port)) //nolint:gosec
}

func readOne(t *testing.T, c *Conn) (int, Result, netip.AddrPort) {
	t.Helper()

	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1500)
	n, res, from, err := c.ReadMsg(buf, 0)
	require.NoError(t, err)

	return n, res, from
}

func TestConnFamily(t *testing.T) {
	assert.Equal(t, FamilyIPv4, listenConn(t, "udp4", "127.0.0.1:0").Family())
	assert.Equal(t, FamilyIPv6, listenConn(t, "udp6", "[::1]:0").Family())
}

func TestConnIPv6Loopback(t *testing.T) {
	lim := test.TimeOut(10 * time.Second)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	a := listenConn(t, "udp6", "[::1]:0")
	b := listenConn(t, "udp6", "[::1]:0")

	for _, c := range []*Conn{a, b} {
		tier, err := c.Prepare()
		require.NoError(t, err)
		require.Equal(t, TierOK, tier)
	}

	tier, err := b.SetTrafficClass(TrafficClass(ECT0))
	require.NoError(t, err)
	require.Equal(t, TierOK, tier)

	_, err = b.WriteToUDPAddrPort([]byte("abc"), localAddrPort(t, a, "::1"))
	require.NoError(t, err)

	n, res, from := readOne(t, a)
	assert.Equal(t, 3, n)
	assert.True(t, res.Valid())
	assert.Equal(t, ECT0, res.Codepoint())
	assert.Equal(t, localAddrPort(t, b, "::1"), from)
}

func TestConnV4MappedPeer(t *testing.T) {
	lim := test.TimeOut(10 * time.Second)
	defer lim.Stop()

	a := listenConn(t, "udp", "[::]:0")
	require.Equal(t, FamilyIPv6, a.Family())

	tier, err := a.Prepare()
	require.NoError(t, err)
	require.Equal(t, TierOK, tier)

	b := listenConn(t, "udp4", "127.0.0.1:0")
	require.NoError(t, b.Setup(TrafficClass(ECT1)))

	_, err = b.WriteToUDPAddrPort([]byte("hi!"), localAddrPort(t, a, "127.0.0.1"))
	require.NoError(t, err)

	n, res, from := readOne(t, a)
	assert.Equal(t, 3, n)
	assert.True(t, res.Valid())
	assert.Equal(t, ECT1, res.Codepoint())
	assert.True(t, from.Addr().Is4In6())
}

func TestConnRoundTrip(t *testing.T) {
	lim := test.TimeOut(30 * time.Second)
	defer lim.Stop()

	for _, loopback := range []struct {
		network, address, host string
	}{
		{"udp4", "127.0.0.1:0", "127.0.0.1"},
		{"udp6", "[::1]:0", "::1"},
	} {
		t.Run(loopback.network, func(t *testing.T) {
			rx := listenConn(t, loopback.network, loopback.address)
			tx := listenConn(t, loopback.network, loopback.address)

			tier, err := rx.Prepare()
			require.NoError(t, err)
			require.Equal(t, TierOK, tier)

			again, err := rx.Prepare()
			require.NoError(t, err)
			assert.Equal(t, tier, again)

			to := localAddrPort(t, rx, loopback.host)
			for i := 0; i < 256; i++ {
				tc := TrafficClass(i)
				_, err := tx.WriteMsg([]byte{byte(i)}, tc, to)
				require.NoError(t, err)

				n, res, _ := readOne(t, rx)
				require.Equal(t, 1, n)
				require.True(t, res.Valid(), "traffic class %s", tc)
				assert.Equal(t, tc, res.TrafficClass())
			}
		})
	}
}

func TestConnReadTruncation(t *testing.T) {
	rx := listenConn(t, "udp4", "127.0.0.1:0")
	tx := listenConn(t, "udp4", "127.0.0.1:0")

	_, err := rx.Prepare()
	require.NoError(t, err)

	_, err = tx.WriteMsg([]byte("0123456789"), TrafficClass(CE), localAddrPort(t, rx, "127.0.0.1"))
	require.NoError(t, err)

	require.NoError(t, rx.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 4)
	n, flags, res, _, err := rx.ReadMsgFlags(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, flags.Truncated)
	assert.False(t, flags.ControlTruncated)
	assert.Equal(t, CE, res.Codepoint())
}

func TestConnReadDeadline(t *testing.T) {
	rx := listenConn(t, "udp4", "127.0.0.1:0")

	require.NoError(t, rx.SetReadDeadline(time.Now().Add(50*time.Millisecond)))
	_, res, _, err := rx.ReadMsg(make([]byte, 16), 0)
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
	assert.False(t, res.Valid())
}
