// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package ecn

import "syscall"

// FamilyOf is not available on this platform.
func FamilyOf(syscall.Conn) (Family, error) {
	return FamilyUnknown, ErrUnsupportedPlatform
}
