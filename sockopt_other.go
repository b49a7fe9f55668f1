// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package ecn

func newSockopts(PacketConn) (sockopts, error) {
	return nil, ErrUnsupportedPlatform
}
