// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDecodeBytesTruncatedChain(t *testing.T) {
	e, err := NewEncoder(WithPolicy(linuxPolicy{}))
	require.NoError(t, err)
	d := newTestDecoder(t)

	full, err := e.Marshal(nil, FamilyIPv6, TrafficClass(CE))
	require.NoError(t, err)
	first := unix.CmsgSpace(intWidth)
	require.Len(t, full, 2*first)

	for _, test := range []struct {
		name string
		size int
		want Result
	}{
		{"complete", len(full), NewResult(TrafficClass(CE))},
		{"second payload cut", first + unix.CmsgLen(0) + 2, NewResult(TrafficClass(CE))},
		{"second header cut", first + 3, NewResult(TrafficClass(CE))},
		{"first entry only", first, NewResult(TrafficClass(CE))},
		{"first payload cut", unix.CmsgLen(0) + 1, Invalid},
	} {
		t.Run(test.name, func(t *testing.T) {
			buf := append([]byte(nil), full[:test.size]...)
			assert.Equal(t, test.want, d.DecodeBytes(buf))
		})
	}
}

func TestDecodeBytesKeepsEntriesBeforeBadHeader(t *testing.T) {
	d := newTestDecoder(t)

	buf := make([]byte, 2*unix.CmsgSpace(intWidth))
	putCmsg(buf, cmsgLayout{level: LevelIP, typ: TypeIPTOS, width: intWidth}, TrafficClass(ECT1))

	// The second header claims far more data than the buffer holds.
	second := buf[unix.CmsgSpace(intWidth):]
	h := (*unix.Cmsghdr)(unsafe.Pointer(&second[0])) //nolint:gosec
	h.Level = LevelIPv6
	h.Type = TypeIPv6TClass
	h.SetLen(4096)
	binary.NativeEndian.PutUint32(second[unix.CmsgLen(0):], uint32(CE))

	assert.Equal(t, NewResult(TrafficClass(ECT1)), d.DecodeBytes(buf))

	_, err := unix.ParseSocketControlMessage(buf)
	assert.Error(t, err)
}
