// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package ecn

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// DecodeBytes walks a raw control buffer as filled in by recvmsg and decodes
// it. The walk stops at the first header whose length does not fit, which is
// what a kernel leaves behind when it truncates control data; the entries
// before it are still decoded.
func (d *Decoder) DecodeBytes(oob []byte) Result {
	hdrLen := unix.CmsgLen(0)
	msgs := make([]ControlMessage, 0, 2)
	for len(oob) >= hdrLen {
		h := (*unix.Cmsghdr)(unsafe.Pointer(&oob[0])) //nolint:gosec
		msgLen := int(h.Len)
		if msgLen < hdrLen || msgLen > len(oob) {
			d.log.Warnf("stopping at malformed control message (level %d, type %d, length %d, %d bytes left)",
				h.Level, h.Type, msgLen, len(oob))

			break
		}

		msgs = append(msgs, ControlMessage{
			Level: h.Level,
			Type:  h.Type,
			Data:  oob[hdrLen:msgLen],
		})

		next := unix.CmsgSpace(msgLen - hdrLen)
		if next >= len(oob) {
			break
		}
		oob = oob[next:]
	}

	return d.Decode(msgs)
}

// Decode decodes a raw control buffer with a default Decoder.
func Decode(oob []byte) Result {
	return defaultDecoder.DecodeBytes(oob)
}
