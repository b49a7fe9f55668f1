// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

func cmsgSpace(width int) int {
	return unix.CmsgSpace(width)
}

// putCmsg writes one header and its payload into b, zeroing the alignment
// padding, and returns the number of bytes consumed.
func putCmsg(b []byte, l cmsgLayout, tc TrafficClass) int {
	space := unix.CmsgSpace(l.width)
	clear(b[:space])

	h := (*unix.Cmsghdr)(unsafe.Pointer(&b[0])) //nolint:gosec
	h.Level = l.level
	h.Type = l.typ
	h.SetLen(unix.CmsgLen(l.width))

	data := b[unix.CmsgLen(0):unix.CmsgLen(l.width)]
	if l.width == 1 {
		data[0] = byte(tc)
	} else {
		binary.NativeEndian.PutUint32(data, uint32(tc))
	}

	return space
}
