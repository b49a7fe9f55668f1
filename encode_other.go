// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package ecn

import "encoding/binary"

// Header layout of WSACMSGHDR: a pointer sized length followed by two int32.
const (
	cmsgAlign  = int(unsafeSizeofUintptr)
	cmsgHdrLen = (int(unsafeSizeofUintptr) + 8 + cmsgAlign - 1) &^ (cmsgAlign - 1)
)

const unsafeSizeofUintptr = 4 << (^uintptr(0) >> 63)

func cmsgAlignUp(n int) int {
	return (n + cmsgAlign - 1) &^ (cmsgAlign - 1)
}

func cmsgSpace(width int) int {
	return cmsgHdrLen + cmsgAlignUp(width)
}

func putCmsg(b []byte, l cmsgLayout, tc TrafficClass) int {
	space := cmsgSpace(l.width)
	clear(b[:space])

	length := cmsgHdrLen + l.width
	if cmsgAlign == 8 {
		binary.NativeEndian.PutUint64(b, uint64(length))
	} else {
		binary.NativeEndian.PutUint32(b, uint32(length))
	}
	binary.NativeEndian.PutUint32(b[cmsgAlign:], uint32(l.level))
	binary.NativeEndian.PutUint32(b[cmsgAlign+4:], uint32(l.typ))

	data := b[cmsgHdrLen : cmsgHdrLen+l.width]
	if l.width == 1 {
		data[0] = byte(tc)
	} else {
		binary.NativeEndian.PutUint32(data, uint32(tc))
	}

	return space
}
